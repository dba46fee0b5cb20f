package store

import "context"

func (s *Store) ListTransactions(ctx context.Context, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT id, player_id, game, amount_wagered, outcome_amount, created_at FROM transactions ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.PlayerID, &t.Game, &t.AmountWagered, &t.OutcomeAmount, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) ListPlayerTransactions(ctx context.Context, playerID string, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.DB.QueryContext(ctx, `SELECT id, player_id, game, amount_wagered, outcome_amount, created_at FROM transactions WHERE player_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`, playerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Transaction{}
	for rows.Next() {
		var t Transaction
		if err := rows.Scan(&t.ID, &t.PlayerID, &t.Game, &t.AmountWagered, &t.OutcomeAmount, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
