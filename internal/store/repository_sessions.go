package store

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

func (s *Store) CreateSession(ctx context.Context, token, playerID string, ttl time.Duration) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO sessions (token_hash, player_id, expires_at) VALUES ($1,$2,$3)`,
		HashToken(token), playerID, time.Now().UTC().Add(ttl))
	return err
}

// GetSessionPlayer resolves a session token to its player. Expired sessions
// count as not found.
func (s *Store) GetSessionPlayer(ctx context.Context, token string) (*Player, error) {
	row := s.DB.QueryRowContext(ctx, `
		SELECT p.id, p.username, p.password_hash, p.balance, p.is_banned, p.is_admin, p.created_at
		FROM sessions s
		JOIN players p ON p.id = s.player_id
		WHERE s.token_hash = $1 AND s.expires_at > now()
	`, HashToken(token))
	var p Player
	if err := row.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Balance, &p.IsBanned, &p.IsAdmin, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (s *Store) DeleteSession(ctx context.Context, token string) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, HashToken(token))
	return err
}

func (s *Store) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
