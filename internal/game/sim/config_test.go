package sim

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigRoulette(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `
game: roulette
rounds: 250
workers: 2
seed: 9
bets:
  red:
    - amount: 2
  number:
    - value: 17
      amount: 0.5
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Game != "roulette" || cfg.Rounds != 250 || cfg.Workers != 2 || cfg.Seed != 9 {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	runner := cfg.Runner(false)
	if got := runner.Bets.TotalStake(); got != 2.5 {
		t.Fatalf("TotalStake = %v, want 2.5", got)
	}
	rep, err := runner.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if rep.Rounds != 250 {
		t.Fatalf("rounds = %d, want 250", rep.Rounds)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("game: slot-machine\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Rounds != 1_000_000 || cfg.Workers != 4 || cfg.Wager != 1 {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("game: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("malformed yaml accepted")
	}
}
