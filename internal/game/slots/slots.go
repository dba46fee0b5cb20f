// Package slots holds the slot machine's probability and payout tables.
//
// Two tables are deliberately kept apart: the value ladder (7 symbols, rank
// 1..7 used as the payout multiplier) and the weighted virtual reel the
// outcome is actually sampled from. Tuning the house edge means editing the
// reel weights; the ladder never changes.
package slots

import "math/rand"

type Symbol string

const (
	Cherry     Symbol = "🍒"
	Lemon      Symbol = "🍋"
	Orange     Symbol = "🍊"
	Watermelon Symbol = "🍉"
	Star       Symbol = "⭐"
	Diamond    Symbol = "💎"
	Moneybag   Symbol = "💰"
)

// Ladder orders symbols by value; rank is index+1.
var Ladder = [7]Symbol{Cherry, Lemon, Orange, Watermelon, Star, Diamond, Moneybag}

// reelWeights is how many times each ladder symbol appears on the virtual
// reel. The cheap symbols dominate and the jackpot symbol appears once.
var reelWeights = [7]int{10, 8, 6, 4, 3, 2, 1}

const (
	jackpotMultiplier = 10
	pairMultiplier    = 0.5
)

// Rank returns the 1-based ladder position of s, or 0 for an unknown symbol.
func Rank(s Symbol) int {
	for i, sym := range Ladder {
		if sym == s {
			return i + 1
		}
	}
	return 0
}

// Reel is the weighted virtual strip outcomes are drawn from.
type Reel struct {
	strip []Symbol
}

func NewReel() *Reel {
	var strip []Symbol
	for i, sym := range Ladder {
		for n := 0; n < reelWeights[i]; n++ {
			strip = append(strip, sym)
		}
	}
	return &Reel{strip: strip}
}

// Len reports the number of virtual reel stops.
func (r *Reel) Len() int { return len(r.strip) }

// Spin draws three independent symbols from the strip.
func (r *Reel) Spin(rng *rand.Rand) [3]Symbol {
	return [3]Symbol{
		r.strip[rng.Intn(len(r.strip))],
		r.strip[rng.Intn(len(r.strip))],
		r.strip[rng.Intn(len(r.strip))],
	}
}

// Prize evaluates one spin result. Three of a kind pays wager*rank*10, a
// match on reels 1 and 2 only pays wager*rank*0.5, everything else pays
// zero. Matches on reels 2-3 or 1-3 do not pay; that is the classic payline
// rule, not an oversight.
func Prize(results [3]Symbol, wager float64) float64 {
	if results[0] == results[1] && results[1] == results[2] {
		return wager * float64(Rank(results[0])) * jackpotMultiplier
	}
	if results[0] == results[1] {
		return wager * float64(Rank(results[0])) * pairMultiplier
	}
	return 0
}
