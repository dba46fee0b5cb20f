package games

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"token-arcade/internal/game/roulette"
	"token-arcade/internal/game/slots"
	"token-arcade/internal/store"
)

// Settler is the account-layer boundary: it must apply the balance check,
// balance move, and ledger append atomically. The store implements it; tests
// substitute an in-memory fake.
type Settler interface {
	SettlePlay(ctx context.Context, playerID, game string, wager, prize float64) (float64, error)
}

type Service struct {
	settler Settler
	reel    *slots.Reel

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(settler Settler) *Service {
	return NewServiceWithSource(settler, rand.NewSource(time.Now().UnixNano()))
}

func NewServiceWithSource(settler Settler, src rand.Source) *Service {
	return &Service{
		settler: settler,
		reel:    slots.NewReel(),
		rng:     rand.New(src),
	}
}

// SpinSlots plays one slot round: sample the weighted reel, price the
// result, settle. The wager is an integer token count.
func (s *Service) SpinSlots(ctx context.Context, playerID string, wager int64) (*SlotSpinResponse, error) {
	if playerID == "" || wager <= 0 {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	results := s.reel.Spin(s.rng)
	s.mu.Unlock()

	prize := slots.Prize(results, float64(wager))
	newBalance, err := s.settler.SettlePlay(ctx, playerID, GameSlots, float64(wager), prize)
	if err != nil {
		return nil, mapSettleErr(err)
	}
	return &SlotSpinResponse{Results: results, Prize: prize, NewBalance: newBalance}, nil
}

// SpinRoulette plays one wheel round against a full bet-set. The whole
// stake is wagered; the evaluator decides what comes back.
func (s *Service) SpinRoulette(ctx context.Context, playerID string, bets roulette.BetSet) (*RouletteSpinResponse, error) {
	if playerID == "" {
		return nil, ErrInvalidRequest
	}
	if err := bets.Validate(); err != nil {
		return nil, ErrInvalidRequest
	}
	s.mu.Lock()
	winning := roulette.Spin(s.rng)
	s.mu.Unlock()

	prize := roulette.Prize(bets, winning)
	newBalance, err := s.settler.SettlePlay(ctx, playerID, GameRoulette, bets.TotalStake(), prize)
	if err != nil {
		return nil, mapSettleErr(err)
	}
	return &RouletteSpinResponse{WinningNumber: winning, Prize: prize, NewBalance: newBalance}, nil
}

func mapSettleErr(err error) error {
	if errors.Is(err, store.ErrInsufficientFunds) {
		return ErrInsufficientFunds
	}
	return err
}
