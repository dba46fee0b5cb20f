// Package sim runs large offline batches of game rounds to measure the
// realized return-to-player of the slot and roulette tables. It never
// touches the store; rounds are priced with the same pure evaluators the
// server uses.
package sim

import (
	"errors"
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"token-arcade/internal/game/roulette"
	"token-arcade/internal/game/slots"

	"github.com/cheggaaa/pb/v3"
)

var (
	ErrUnknownGame = errors.New("unknown game")
	ErrBadParams   = errors.New("invalid simulation parameters")
)

// Runner holds one simulation setup. Rounds are split across Workers, each
// worker drawing from its own seeded source so runs reproduce from Seed.
type Runner struct {
	Game    string
	Wager   float64          // slot stake per round
	Bets    roulette.BetSet  // roulette bet-set, replayed every round
	Rounds  int
	Workers int
	Seed    int64
	ShowPB  bool
}

// round is one settled play: what went in and what came back.
type round struct {
	wagered  float64
	returned float64
}

func (r *Runner) validate() error {
	if r.Rounds < 1 || r.Workers < 1 {
		return ErrBadParams
	}
	switch r.Game {
	case "slot-machine":
		if r.Wager <= 0 {
			return ErrBadParams
		}
	case "roulette":
		if err := r.Bets.Validate(); err != nil {
			return ErrBadParams
		}
	default:
		return ErrUnknownGame
	}
	return nil
}

// Run executes the batch and reduces it to a Report.
func (r *Runner) Run() (*Report, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}
	seed := r.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seeds := newSeedStream(seed)

	bar := pb.StartNew(r.Rounds)
	if !r.ShowPB {
		bar.SetWriter(io.Discard)
	}

	perWorker := r.Rounds / r.Workers
	remainder := r.Rounds % r.Workers

	results := make([][]round, r.Workers)
	var wg sync.WaitGroup
	wg.Add(r.Workers)
	for w := 0; w < r.Workers; w++ {
		n := perWorker
		if w < remainder {
			n++
		}
		go func(w, n int, workerSeed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(workerSeed))
			play := r.roundFunc(rng)
			buf := make([]round, 0, n)
			for i := 0; i < n; i++ {
				buf = append(buf, play())
				bar.Increment()
			}
			results[w] = buf
		}(w, n, seeds.next())
	}
	wg.Wait()
	elapsed := time.Since(bar.StartTime())
	bar.Finish()

	merged := make([]round, 0, r.Rounds)
	for _, buf := range results {
		merged = append(merged, buf...)
	}
	return report(r.Game, merged, elapsed), nil
}

// roundFunc binds the game's evaluator to one worker's rng.
func (r *Runner) roundFunc(rng *rand.Rand) func() round {
	switch r.Game {
	case "slot-machine":
		reel := slots.NewReel()
		return func() round {
			results := reel.Spin(rng)
			return round{wagered: r.Wager, returned: slots.Prize(results, r.Wager)}
		}
	default:
		stake := r.Bets.TotalStake()
		return func() round {
			winning := roulette.Spin(rng)
			return round{wagered: stake, returned: roulette.Prize(r.Bets, winning)}
		}
	}
}

const mask63 = uint64(1)<<63 - 1

// seedStream hands every worker a distinct seed derived from one root: a
// full-period LCG over 2^63 scattered by a reversible bit mixer, so the
// stream never repeats within a run.
type seedStream struct {
	state atomic.Uint64
}

func newSeedStream(seed int64) *seedStream {
	s := &seedStream{}
	s.state.Store(uint64(seed) & mask63)
	return s
}

func (s *seedStream) next() int64 {
	for {
		old := s.state.Load()
		next := (old*6364136223846793005 + 1442695040888963407) & mask63
		if s.state.CompareAndSwap(old, next) {
			return int64(mix63(next))
		}
	}
}

func mix63(x uint64) uint64 {
	x &= mask63
	x ^= x >> 30
	x = (x * 0xBF58476D1CE4E5B9) & mask63
	x ^= x >> 27
	x = (x * 0x94D049BB133111EB) & mask63
	x ^= x >> 31
	return x & mask63
}
