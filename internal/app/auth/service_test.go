package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestLoginRejectsBlankCredentials(t *testing.T) {
	svc := NewService(nil, 24)
	cases := []struct{ username, password string }{
		{"", "secret"},
		{"   ", "secret"},
		{"alice", ""},
		{"", ""},
	}
	for _, tc := range cases {
		_, err := svc.Login(context.Background(), tc.username, tc.password)
		if !errors.Is(err, ErrInvalidRequest) {
			t.Fatalf("Login(%q, %q): err = %v, want ErrInvalidRequest", tc.username, tc.password, err)
		}
	}
}

func TestLogoutRejectsEmptyToken(t *testing.T) {
	svc := NewService(nil, 24)
	if err := svc.Logout(context.Background(), ""); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("Logout with empty token: err = %v, want ErrInvalidRequest", err)
	}
}

func TestTTLDefaultsWhenNonPositive(t *testing.T) {
	for _, hours := range []int{0, -5} {
		if got := NewService(nil, hours).TTL(); got != 24*time.Hour {
			t.Fatalf("TTL with %d hours = %v, want 24h", hours, got)
		}
	}
	if got := NewService(nil, 6).TTL(); got != 6*time.Hour {
		t.Fatalf("TTL = %v, want 6h", got)
	}
}
