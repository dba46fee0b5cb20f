package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"token-arcade/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	store *store.Store
	ttl   time.Duration
}

func NewService(st *store.Store, sessionTTLHours int) *Service {
	if sessionTTLHours <= 0 {
		sessionTTLHours = 24
	}
	return &Service{store: st, ttl: time.Duration(sessionTTLHours) * time.Hour}
}

type LoginResult struct {
	Token   string
	Player  *store.Player
	Expires time.Time
}

// Login verifies credentials and opens a session. Banned accounts are
// rejected before the password check result is revealed.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidRequest
	}
	player, err := s.store.GetPlayerByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if player.IsBanned {
		return nil, ErrBanned
	}
	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token := "ses_" + uuid.NewString()
	if err := s.store.CreateSession(ctx, token, player.ID, s.ttl); err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, Player: player, Expires: time.Now().UTC().Add(s.ttl)}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidRequest
	}
	return s.store.DeleteSession(ctx, token)
}

// TTL is the configured session lifetime, used for the cookie MaxAge.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
