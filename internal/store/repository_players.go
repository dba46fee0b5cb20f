package store

import (
	"context"
	"database/sql"
	"errors"
)

func (s *Store) CreatePlayer(ctx context.Context, username, passwordHash string, balance float64, isAdmin bool) (string, error) {
	id := NewID()
	_, err := s.DB.ExecContext(ctx, `INSERT INTO players (id, username, password_hash, balance, is_admin) VALUES ($1,$2,$3,$4,$5)`,
		id, username, passwordHash, balance, isAdmin)
	return id, err
}

func (s *Store) GetPlayerByID(ctx context.Context, id string) (*Player, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT id, username, password_hash, balance, is_banned, is_admin, created_at FROM players WHERE id = $1`, id)
	return scanPlayer(row)
}

func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*Player, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT id, username, password_hash, balance, is_banned, is_admin, created_at FROM players WHERE username = $1`, username)
	return scanPlayer(row)
}

func scanPlayer(row *sql.Row) (*Player, error) {
	var p Player
	if err := row.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Balance, &p.IsBanned, &p.IsAdmin, &p.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListPlayers returns non-admin accounts, newest first.
func (s *Store) ListPlayers(ctx context.Context, limit, offset int) ([]Player, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT id, username, password_hash, balance, is_banned, is_admin, created_at FROM players WHERE is_admin = false ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Player{}
	for rows.Next() {
		var p Player
		if err := rows.Scan(&p.ID, &p.Username, &p.PasswordHash, &p.Balance, &p.IsBanned, &p.IsAdmin, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// CountPlayers counts non-admin accounts.
func (s *Store) CountPlayers(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.QueryRowContext(ctx, `SELECT count(*) FROM players WHERE is_admin = false`).Scan(&n)
	return n, err
}

func (s *Store) GetPlayerBalance(ctx context.Context, id string) (float64, error) {
	row := s.DB.QueryRowContext(ctx, `SELECT balance FROM players WHERE id = $1`, id)
	var bal float64
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

func (s *Store) UpdatePlayerBalance(ctx context.Context, id string, balance float64) error {
	return s.execAffectingOne(ctx, `UPDATE players SET balance = $1 WHERE id = $2`, balance, id)
}

func (s *Store) SetPlayerBanned(ctx context.Context, id string, banned bool) error {
	return s.execAffectingOne(ctx, `UPDATE players SET is_banned = $1 WHERE id = $2`, banned, id)
}

func (s *Store) UpdatePlayerPassword(ctx context.Context, id, passwordHash string) error {
	return s.execAffectingOne(ctx, `UPDATE players SET password_hash = $1 WHERE id = $2`, passwordHash, id)
}

func (s *Store) execAffectingOne(ctx context.Context, query string, args ...any) error {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
