// rtp-sim measures the realized return-to-player of the arcade's games by
// brute force, without a server or database. Runs are described by a yaml
// file, or fall back to a flat-stake slot batch.
//
//	rtp-sim -rounds 5000000 -workers 8
//	rtp-sim -config sim/roulette-red.yaml -quiet
package main

import (
	"flag"
	"fmt"
	"os"

	"token-arcade/internal/game/sim"
)

func main() {
	configPath := flag.String("config", "", "yaml run description; omit for a default slot batch")
	game := flag.String("game", "slot-machine", "game to simulate when no config is given")
	rounds := flag.Int("rounds", 0, "override round count")
	workers := flag.Int("workers", 0, "override worker count")
	wager := flag.Float64("wager", 0, "override slot stake")
	seed := flag.Int64("seed", 0, "rng seed; 0 picks one from the clock")
	quiet := flag.Bool("quiet", false, "suppress the progress bar")
	flag.Parse()

	var runner *sim.Runner
	if *configPath != "" {
		cfg, err := sim.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rtp-sim: %v\n", err)
			os.Exit(1)
		}
		runner = cfg.Runner(!*quiet)
	} else {
		runner = &sim.Runner{Game: *game, Wager: 1, Rounds: 1_000_000, Workers: 4, ShowPB: !*quiet}
	}
	if *rounds > 0 {
		runner.Rounds = *rounds
	}
	if *workers > 0 {
		runner.Workers = *workers
	}
	if *wager > 0 {
		runner.Wager = *wager
	}
	if *seed != 0 {
		runner.Seed = *seed
	}

	rep, err := runner.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtp-sim: %v\n", err)
		os.Exit(1)
	}
	rep.Write(os.Stdout)
}
