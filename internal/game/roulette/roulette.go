// Package roulette implements the European wheel and the bet evaluator.
package roulette

import (
	"errors"
	"fmt"
	"math/rand"
)

// WheelOrder is the physical pocket ordering of a European wheel. Every
// pocket is equally likely, so the ordering only matters for wheel-visual
// parity with the client.
var WheelOrder = [37]int{
	0, 32, 15, 19, 4, 21, 2, 25, 17, 34, 6, 27, 13, 36, 11, 30, 8, 23, 10,
	5, 24, 16, 33, 1, 20, 14, 31, 9, 22, 18, 29, 7, 28, 12, 35, 3, 26,
}

var redNumbers = map[int]bool{
	1: true, 3: true, 5: true, 7: true, 9: true, 12: true,
	14: true, 16: true, 18: true, 19: true, 21: true, 23: true,
	25: true, 27: true, 30: true, 32: true, 34: true, 36: true,
}

// IsRed reports whether n is a red pocket. 0 is neither red nor black.
func IsRed(n int) bool { return redNumbers[n] }

type BetType string

const (
	BetNumber BetType = "number"
	BetRed    BetType = "red"
	BetBlack  BetType = "black"
	BetEven   BetType = "even"
	BetOdd    BetType = "odd"
	BetLow    BetType = "low"
	BetHigh   BetType = "high"
	BetDozen  BetType = "dozen"
	BetColumn BetType = "column"
)

// Total-return multipliers: "pays N to 1" expressed as N+1.
const (
	straightUpReturn = 36
	evenMoneyReturn  = 2
	thirdsReturn     = 3
)

type Bet struct {
	Value  int     `json:"value,omitempty"`
	Amount float64 `json:"amount"`
}

// BetSet maps a bet type to the bets placed under it. A player may stack
// several bets of the same type with different values.
type BetSet map[BetType][]Bet

var ErrEmptyBetSet = errors.New("no bets placed")

// Validate rejects malformed bet-sets before they reach the evaluator:
// unknown bet types, non-positive stakes, and out-of-range discriminants.
func (bs BetSet) Validate() error {
	if len(bs) == 0 {
		return ErrEmptyBetSet
	}
	total := 0.0
	for betType, bets := range bs {
		for _, bet := range bets {
			if bet.Amount <= 0 {
				return fmt.Errorf("bet %s: amount must be positive", betType)
			}
			switch betType {
			case BetNumber:
				if bet.Value < 0 || bet.Value > 36 {
					return fmt.Errorf("bet number: value %d out of range", bet.Value)
				}
			case BetDozen, BetColumn:
				if bet.Value < 1 || bet.Value > 3 {
					return fmt.Errorf("bet %s: value %d out of range", betType, bet.Value)
				}
			case BetRed, BetBlack, BetEven, BetOdd, BetLow, BetHigh:
			default:
				return fmt.Errorf("unknown bet type %q", betType)
			}
			total += bet.Amount
		}
	}
	if total <= 0 {
		return ErrEmptyBetSet
	}
	return nil
}

// TotalStake sums every stake in the set.
func (bs BetSet) TotalStake() float64 {
	total := 0.0
	for _, bets := range bs {
		for _, bet := range bets {
			total += bet.Amount
		}
	}
	return total
}

// Spin draws one pocket uniformly from the wheel.
func Spin(rng *rand.Rand) int {
	return WheelOrder[rng.Intn(len(WheelOrder))]
}

// Prize evaluates a bet-set against the winning pocket and returns the
// total payout. Each bet contributes stake×multiplier when it covers the
// pocket; overlapping winners all pay. 0 loses every outside bet, so only
// a straight-up bet on 0 can win there. The set is never mutated.
func Prize(bs BetSet, winning int) float64 {
	prize := 0.0
	for betType, bets := range bs {
		for _, bet := range bets {
			if covers(betType, bet.Value, winning) {
				prize += bet.Amount * returnMultiplier(betType)
			}
		}
	}
	return prize
}

func covers(betType BetType, value, winning int) bool {
	switch betType {
	case BetNumber:
		return value == winning
	case BetRed:
		return winning != 0 && IsRed(winning)
	case BetBlack:
		return winning != 0 && !IsRed(winning)
	case BetEven:
		return winning != 0 && winning%2 == 0
	case BetOdd:
		return winning != 0 && winning%2 != 0
	case BetLow:
		return winning >= 1 && winning <= 18
	case BetHigh:
		return winning >= 19 && winning <= 36
	case BetDozen:
		return winning >= (value-1)*12+1 && winning <= value*12
	case BetColumn:
		return winning != 0 && (winning-value)%3 == 0
	default:
		return false
	}
}

func returnMultiplier(betType BetType) float64 {
	switch betType {
	case BetNumber:
		return straightUpReturn
	case BetDozen, BetColumn:
		return thirdsReturn
	default:
		return evenMoneyReturn
	}
}
