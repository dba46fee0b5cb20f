package sim

import (
	"fmt"
	"os"

	"token-arcade/internal/game/roulette"

	"gopkg.in/yaml.v3"
)

// Config is the yaml shape of one simulation run.
type Config struct {
	Game    string               `yaml:"game"`
	Rounds  int                  `yaml:"rounds"`
	Workers int                  `yaml:"workers"`
	Seed    int64                `yaml:"seed"`
	Wager   float64              `yaml:"wager"`
	Bets    map[string][]BetSpec `yaml:"bets"`
}

type BetSpec struct {
	Value  int     `yaml:"value"`
	Amount float64 `yaml:"amount"`
}

func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Rounds == 0 {
		c.Rounds = 1_000_000
	}
	if c.Workers == 0 {
		c.Workers = 4
	}
	if c.Wager == 0 {
		c.Wager = 1
	}
}

// Runner converts the parsed config into a ready Runner.
func (c *Config) Runner(showPB bool) *Runner {
	bets := make(roulette.BetSet, len(c.Bets))
	for betType, specs := range c.Bets {
		for _, s := range specs {
			bets[roulette.BetType(betType)] = append(bets[roulette.BetType(betType)], roulette.Bet{Value: s.Value, Amount: s.Amount})
		}
	}
	return &Runner{
		Game:    c.Game,
		Wager:   c.Wager,
		Bets:    bets,
		Rounds:  c.Rounds,
		Workers: c.Workers,
		Seed:    c.Seed,
		ShowPB:  showPB,
	}
}
