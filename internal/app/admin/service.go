package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"token-arcade/internal/store"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type Service struct {
	store *store.Store
}

func NewService(st *store.Store) *Service {
	return &Service{store: st}
}

func (s *Service) ListPlayers(ctx context.Context, limit, offset int) ([]store.Player, error) {
	return s.store.ListPlayers(ctx, limit, offset)
}

func (s *Service) ListTransactions(ctx context.Context, limit, offset int) ([]store.Transaction, error) {
	return s.store.ListTransactions(ctx, limit, offset)
}

func (s *Service) ListAdminActions(ctx context.Context, limit, offset int) ([]store.AdminAction, error) {
	return s.store.ListAdminActions(ctx, limit, offset)
}

// CreatePlayer provisions a new account and logs the action against the
// acting admin.
func (s *Service) CreatePlayer(ctx context.Context, adminID, username, password string, balance float64) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" || balance < 0 {
		return "", ErrInvalidRequest
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	id, err := s.store.CreatePlayer(ctx, username, string(hash), balance, false)
	if err != nil {
		if isUniqueViolation(err) {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	if err := s.store.RecordAdminAction(ctx, adminID, fmt.Sprintf("Created player %s", username), username); err != nil {
		return "", err
	}
	return id, nil
}

type UpdatePlayerInput struct {
	Balance  *float64
	IsBanned *bool
	Password *string
}

// UpdatePlayer applies the supplied fields and records one audit row per
// applied change.
func (s *Service) UpdatePlayer(ctx context.Context, adminID, playerID string, in UpdatePlayerInput) error {
	if in.Balance == nil && in.IsBanned == nil && in.Password == nil {
		return ErrInvalidRequest
	}
	player, err := s.store.GetPlayerByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if in.Balance != nil {
		if *in.Balance < 0 {
			return ErrInvalidRequest
		}
		if err := s.store.UpdatePlayerBalance(ctx, playerID, *in.Balance); err != nil {
			return err
		}
		action := fmt.Sprintf("Updated balance for %s to %g", player.Username, *in.Balance)
		if err := s.store.RecordAdminAction(ctx, adminID, action, player.Username); err != nil {
			return err
		}
	}
	if in.IsBanned != nil {
		if err := s.store.SetPlayerBanned(ctx, playerID, *in.IsBanned); err != nil {
			return err
		}
		verb := "Unbanned"
		if *in.IsBanned {
			verb = "Banned"
		}
		action := fmt.Sprintf("%s player %s", verb, player.Username)
		if err := s.store.RecordAdminAction(ctx, adminID, action, player.Username); err != nil {
			return err
		}
	}
	if in.Password != nil {
		if *in.Password == "" {
			return ErrInvalidRequest
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return err
		}
		if err := s.store.UpdatePlayerPassword(ctx, playerID, string(hash)); err != nil {
			return err
		}
		action := fmt.Sprintf("Reset password for player %s", player.Username)
		if err := s.store.RecordAdminAction(ctx, adminID, action, player.Username); err != nil {
			return err
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
