package store

import "context"

func (s *Store) RecordAdminAction(ctx context.Context, adminID, action, targetUsername string) error {
	_, err := s.DB.ExecContext(ctx, `INSERT INTO admin_actions (id, admin_id, action, target_player_username) VALUES ($1,$2,$3,$4)`,
		NewID(), adminID, action, targetUsername)
	return err
}

func (s *Store) ListAdminActions(ctx context.Context, limit, offset int) ([]AdminAction, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.DB.QueryContext(ctx, `
		SELECT a.id, a.admin_id, COALESCE(p.username, ''), a.action, a.target_player_username, a.created_at
		FROM admin_actions a
		LEFT JOIN players p ON p.id = a.admin_id
		ORDER BY a.created_at DESC, a.id DESC LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []AdminAction{}
	for rows.Next() {
		var a AdminAction
		if err := rows.Scan(&a.ID, &a.AdminID, &a.AdminUsername, &a.Action, &a.TargetUsername, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
