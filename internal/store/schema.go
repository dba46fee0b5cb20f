package store

import "context"

const schemaDDL = `
CREATE TABLE IF NOT EXISTS players (
	id            TEXT PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	balance       DOUBLE PRECISION NOT NULL DEFAULT 0,
	is_banned     BOOLEAN NOT NULL DEFAULT FALSE,
	is_admin      BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transactions (
	id             TEXT PRIMARY KEY,
	player_id      TEXT NOT NULL REFERENCES players(id),
	game           TEXT NOT NULL,
	amount_wagered DOUBLE PRECISION NOT NULL,
	outcome_amount DOUBLE PRECISION NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS transactions_player_idx ON transactions (player_id, created_at DESC);

CREATE TABLE IF NOT EXISTS sessions (
	token_hash TEXT PRIMARY KEY,
	player_id  TEXT NOT NULL REFERENCES players(id),
	expires_at TIMESTAMPTZ NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS admin_actions (
	id                     TEXT PRIMARY KEY,
	admin_id               TEXT NOT NULL REFERENCES players(id),
	action                 TEXT NOT NULL,
	target_player_username TEXT NOT NULL,
	created_at             TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

// Bootstrap creates the schema if it does not exist yet.
func (s *Store) Bootstrap(ctx context.Context) error {
	_, err := s.DB.ExecContext(ctx, schemaDDL)
	return err
}
