package store

import "time"

type Player struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Balance      float64   `json:"balance"`
	IsBanned     bool      `json:"is_banned"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Transaction is one settled play. Rows are append-only.
type Transaction struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	Game          string    `json:"game"`
	AmountWagered float64   `json:"amount_wagered"`
	OutcomeAmount float64   `json:"outcome_amount"`
	CreatedAt     time.Time `json:"timestamp"`
}

type Session struct {
	TokenHash string
	PlayerID  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

type AdminAction struct {
	ID             string    `json:"id"`
	AdminID        string    `json:"admin_id"`
	AdminUsername  string    `json:"admin_username"`
	Action         string    `json:"action"`
	TargetUsername string    `json:"target_player_username"`
	CreatedAt      time.Time `json:"timestamp"`
}
