package games

import "token-arcade/internal/game/slots"

const (
	GameSlots    = "slot-machine"
	GameRoulette = "roulette"
)

type SlotSpinResponse struct {
	Results    [3]slots.Symbol `json:"results"`
	Prize      float64         `json:"prize"`
	NewBalance float64         `json:"newBalance"`
}

type RouletteSpinResponse struct {
	WinningNumber int     `json:"winningNumber"`
	Prize         float64 `json:"prize"`
	NewBalance    float64 `json:"newBalance"`
}
