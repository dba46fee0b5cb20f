package store

import (
	"context"
	"fmt"
	"net/url"
	"regexp"
	"testing"
	"time"

	"token-arcade/internal/config"
)

var testSchemaNamePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func openStore(t *testing.T) (*Store, context.Context, func()) {
	t.Helper()
	cfg, err := config.LoadTest()
	if err != nil {
		t.Skipf("skip test db: %v", err)
	}
	dsn := cfg.TestPostgresDSN
	schema := fmt.Sprintf("test_%d", time.Now().UnixNano())

	base, err := New(dsn)
	if err != nil {
		t.Fatalf("open base db: %v", err)
	}
	createSchemaSQL, err := schemaSQL("CREATE SCHEMA %s", schema)
	if err != nil {
		base.Close()
		t.Fatalf("invalid schema name: %v", err)
	}
	if _, err := base.DB.ExecContext(context.Background(), createSchemaSQL); err != nil {
		base.Close()
		t.Fatalf("create schema: %v", err)
	}
	base.Close()

	scopedDSN, err := withSearchPath(dsn, schema)
	if err != nil {
		t.Fatalf("scope dsn: %v", err)
	}
	st, err := New(scopedDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := st.Bootstrap(context.Background()); err != nil {
		st.Close()
		t.Fatalf("bootstrap schema: %v", err)
	}
	cleanup := func() {
		st.Close()
		base, err := New(dsn)
		if err == nil {
			if dropSQL, ddlErr := schemaSQL("DROP SCHEMA %s CASCADE", schema); ddlErr == nil {
				_, _ = base.DB.ExecContext(context.Background(), dropSQL)
			}
			base.Close()
		}
	}
	return st, context.Background(), cleanup
}

func schemaSQL(format, schema string) (string, error) {
	if !testSchemaNamePattern.MatchString(schema) {
		return "", fmt.Errorf("unsafe schema name %q", schema)
	}
	return fmt.Sprintf(format, schema), nil
}

func withSearchPath(dsn, schema string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("options", fmt.Sprintf("-csearch_path=%s", schema))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func createTestPlayer(t *testing.T, st *Store, ctx context.Context, username string, balance float64) string {
	t.Helper()
	id, err := st.CreatePlayer(ctx, username, "x", balance, false)
	if err != nil {
		t.Fatalf("create player %s: %v", username, err)
	}
	return id
}
