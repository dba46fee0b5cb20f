package sim

import (
	"fmt"
	"io"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type CI struct {
	Lo float64
	Hi float64
}

// PointStat is a point estimate with its 95% confidence interval.
type PointStat struct {
	Hat float64
	CI  CI
}

type Report struct {
	Game          string
	Rounds        int
	TotalWagered  float64
	TotalReturned float64
	RTP           PointStat // mean per-round return ratio
	HitRate       PointStat // share of rounds returning anything
	MaxReturn     float64   // largest single-round return, in stakes
	Elapsed       time.Duration
}

func report(game string, rounds []round, elapsed time.Duration) *Report {
	rep := &Report{Game: game, Rounds: len(rounds), Elapsed: elapsed}
	if len(rounds) == 0 {
		return rep
	}

	ratios := make([]float64, len(rounds))
	hits := 0
	for i, r := range rounds {
		rep.TotalWagered += r.wagered
		rep.TotalReturned += r.returned
		ratios[i] = r.returned / r.wagered
		if r.returned > 0 {
			hits++
		}
		if ratios[i] > rep.MaxReturn {
			rep.MaxReturn = ratios[i]
		}
	}

	rep.RTP = meanCI(ratios, 0.95)
	hat, ci := proportionCICP(hits, len(rounds), 0.95)
	rep.HitRate = PointStat{Hat: hat, CI: ci}
	return rep
}

// meanCI is a normal-approximation interval around the sample mean.
func meanCI(data []float64, confidence float64) PointStat {
	mean := stat.Mean(data, nil)
	n := float64(len(data))
	if len(data) < 2 {
		return PointStat{Hat: mean, CI: CI{Lo: mean, Hi: mean}}
	}
	se := stat.StdDev(data, nil) / math.Sqrt(n)
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(0.5 + confidence/2)
	return PointStat{Hat: mean, CI: CI{Lo: mean - z*se, Hi: mean + z*se}}
}

// proportionCICP is the Clopper-Pearson exact interval for a binomial
// proportion, via the Beta quantile mapping.
func proportionCICP(k, n int, confidence float64) (float64, CI) {
	if n == 0 {
		return 0, CI{Lo: 0, Hi: 1}
	}
	alpha := 1 - confidence
	hat := float64(k) / float64(n)
	ci := CI{}
	if k == 0 {
		ci.Lo = 0
	} else {
		b := distuv.Beta{Alpha: float64(k), Beta: float64(n - k + 1)}
		ci.Lo = b.Quantile(alpha / 2)
	}
	if k == n {
		ci.Hi = 1
	} else {
		b := distuv.Beta{Alpha: float64(k + 1), Beta: float64(n - k)}
		ci.Hi = b.Quantile(1 - alpha/2)
	}
	return hat, ci
}

// Write renders the report as an aligned table.
func (rep *Report) Write(w io.Writer) {
	rate := float64(rep.Rounds) / rep.Elapsed.Seconds()
	fmt.Fprintf(w, "=== %s: %d rounds in %s (%.0f rounds/s) ===\n", rep.Game, rep.Rounds, rep.Elapsed.Round(time.Millisecond), rate)
	fmt.Fprintf(w, "  %-14s : %s\n", "RTP", fmtHatCI(rep.RTP))
	fmt.Fprintf(w, "  %-14s : %s\n", "Hit rate", fmtHatCI(rep.HitRate))
	fmt.Fprintf(w, "  %-14s : %.2fx stake\n", "Max return", rep.MaxReturn)
	fmt.Fprintf(w, "  %-14s : %.2f wagered, %.2f returned\n", "Volume", rep.TotalWagered, rep.TotalReturned)
}

func fmtHatCI(p PointStat) string {
	return fmt.Sprintf("%.2f%% [%.2f%%, %.2f%%]", p.Hat*100, p.CI.Lo*100, p.CI.Hi*100)
}
