package store

import (
	"context"
	"database/sql"
	"errors"
)

// SettlePlay applies one play atomically: under a row lock on the player it
// verifies funds, moves the balance by prize-wager, and appends exactly one
// transaction row. On any failure nothing is persisted.
func (s *Store) SettlePlay(ctx context.Context, playerID, game string, wager, prize float64) (float64, error) {
	if wager < 0 || prize < 0 {
		return 0, errors.New("wager and prize must be non-negative")
	}
	tx, err := s.DB.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var bal float64
	row := tx.QueryRowContext(ctx, `SELECT balance FROM players WHERE id = $1 FOR UPDATE`, playerID)
	if err := row.Scan(&bal); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	if bal < wager {
		return 0, ErrInsufficientFunds
	}
	newBal := bal - wager + prize
	if _, err := tx.ExecContext(ctx, `UPDATE players SET balance = $1 WHERE id = $2`, newBal, playerID); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO transactions (id, player_id, game, amount_wagered, outcome_amount) VALUES ($1,$2,$3,$4,$5)`,
		NewID(), playerID, game, wager, prize); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newBal, nil
}
