package roulette

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestWheelOrderCoversEveryPocketOnce(t *testing.T) {
	seen := map[int]bool{}
	for _, n := range WheelOrder {
		if n < 0 || n > 36 {
			t.Fatalf("pocket %d out of range", n)
		}
		if seen[n] {
			t.Fatalf("pocket %d appears twice", n)
		}
		seen[n] = true
	}
	if len(seen) != 37 {
		t.Fatalf("expected 37 distinct pockets, got %d", len(seen))
	}
}

func TestSpinStaysOnWheel(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		n := Spin(rng)
		if n < 0 || n > 36 {
			t.Fatalf("spin produced %d", n)
		}
	}
}

func TestPrizeStraightUp(t *testing.T) {
	bets := BetSet{BetNumber: {{Value: 17, Amount: 5}}}
	if got := Prize(bets, 17); got != 180 {
		t.Fatalf("straight-up win: got %v, want 180", got)
	}
	if got := Prize(bets, 22); got != 0 {
		t.Fatalf("straight-up miss: got %v, want 0", got)
	}
}

func TestPrizeZeroKillsOutsideBets(t *testing.T) {
	bets := BetSet{
		BetRed:    {{Amount: 10}},
		BetBlack:  {{Amount: 10}},
		BetEven:   {{Amount: 10}},
		BetOdd:    {{Amount: 10}},
		BetLow:    {{Amount: 10}},
		BetHigh:   {{Amount: 10}},
		BetDozen:  {{Value: 1, Amount: 10}},
		BetColumn: {{Value: 3, Amount: 10}},
	}
	if got := Prize(bets, 0); got != 0 {
		t.Fatalf("pocket 0 paid outside bets: got %v, want 0", got)
	}
}

func TestPrizeZeroStraightUpStillPays(t *testing.T) {
	bets := BetSet{BetNumber: {{Value: 0, Amount: 2}}}
	if got := Prize(bets, 0); got != 72 {
		t.Fatalf("straight-up on 0: got %v, want 72", got)
	}
}

func TestPrizeEvenMoneyBets(t *testing.T) {
	cases := []struct {
		name    string
		betType BetType
		winning int
		wins    bool
	}{
		{"red on red", BetRed, 32, true},
		{"red on black", BetRed, 22, false},
		{"black on black", BetBlack, 22, true},
		{"even on even", BetEven, 22, true},
		{"odd on odd", BetOdd, 17, true},
		{"odd on even", BetOdd, 22, false},
		{"low in range", BetLow, 18, true},
		{"low out of range", BetLow, 19, false},
		{"high in range", BetHigh, 19, true},
	}
	for _, tc := range cases {
		bets := BetSet{tc.betType: {{Amount: 10}}}
		got := Prize(bets, tc.winning)
		want := 0.0
		if tc.wins {
			want = 20
		}
		if got != want {
			t.Fatalf("%s: got %v, want %v", tc.name, got, want)
		}
	}
}

func TestPrizeDozens(t *testing.T) {
	for _, tc := range []struct {
		value   int
		winning int
		wins    bool
	}{
		{1, 1, true}, {1, 12, true}, {1, 13, false},
		{2, 13, true}, {2, 24, true}, {2, 25, false},
		{3, 25, true}, {3, 36, true}, {3, 24, false},
	} {
		bets := BetSet{BetDozen: {{Value: tc.value, Amount: 4}}}
		got := Prize(bets, tc.winning)
		want := 0.0
		if tc.wins {
			want = 12
		}
		if got != want {
			t.Fatalf("dozen %d on %d: got %v, want %v", tc.value, tc.winning, got, want)
		}
	}
}

func TestPrizeColumns(t *testing.T) {
	columns := map[int][]int{
		1: {1, 4, 7, 10, 13, 16, 19, 22, 25, 28, 31, 34},
		2: {2, 5, 8, 11, 14, 17, 20, 23, 26, 29, 32, 35},
		3: {3, 6, 9, 12, 15, 18, 21, 24, 27, 30, 33, 36},
	}
	for col, members := range columns {
		bets := BetSet{BetColumn: {{Value: col, Amount: 1}}}
		for winning := 0; winning <= 36; winning++ {
			want := 0.0
			for _, m := range members {
				if m == winning {
					want = 3
				}
			}
			if got := Prize(bets, winning); got != want {
				t.Fatalf("column %d on %d: got %v, want %v", col, winning, got, want)
			}
		}
	}
}

func TestPrizeOverlappingWinnersSum(t *testing.T) {
	// 32 is red, even, high, third dozen: every matching bet pays.
	bets := BetSet{
		BetNumber: {{Value: 32, Amount: 1}, {Value: 5, Amount: 1}},
		BetRed:    {{Amount: 2}},
		BetHigh:   {{Amount: 3}},
		BetDozen:  {{Value: 3, Amount: 4}},
	}
	// 1*36 + 2*2 + 3*2 + 4*3 = 58
	if got := Prize(bets, 32); got != 58 {
		t.Fatalf("overlapping winners: got %v, want 58", got)
	}
}

func TestPrizeIsPureAndIdempotent(t *testing.T) {
	bets := BetSet{
		BetNumber: {{Value: 7, Amount: 5}},
		BetOdd:    {{Amount: 10}},
	}
	before := BetSet{
		BetNumber: {{Value: 7, Amount: 5}},
		BetOdd:    {{Amount: 10}},
	}
	first := Prize(bets, 7)
	second := Prize(bets, 7)
	if first != second {
		t.Fatalf("evaluator not idempotent: %v then %v", first, second)
	}
	if !reflect.DeepEqual(bets, before) {
		t.Fatalf("evaluator mutated the bet-set: %+v", bets)
	}
}

func TestValidate(t *testing.T) {
	if err := (BetSet{}).Validate(); err == nil {
		t.Fatal("empty set should fail validation")
	}
	if err := (BetSet{BetRed: {{Amount: -5}}}).Validate(); err == nil {
		t.Fatal("negative stake should fail validation")
	}
	if err := (BetSet{BetRed: {{Amount: 0}}}).Validate(); err == nil {
		t.Fatal("zero stake should fail validation")
	}
	if err := (BetSet{BetType("corner"): {{Amount: 5}}}).Validate(); err == nil {
		t.Fatal("unknown bet type should fail validation")
	}
	if err := (BetSet{BetNumber: {{Value: 37, Amount: 5}}}).Validate(); err == nil {
		t.Fatal("number 37 should fail validation")
	}
	if err := (BetSet{BetDozen: {{Value: 4, Amount: 5}}}).Validate(); err == nil {
		t.Fatal("dozen 4 should fail validation")
	}
	ok := BetSet{
		BetNumber: {{Value: 0, Amount: 1}, {Value: 36, Amount: 2}},
		BetColumn: {{Value: 2, Amount: 3}},
		BetBlack:  {{Amount: 4}},
	}
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}
	if got := ok.TotalStake(); got != 10 {
		t.Fatalf("TotalStake = %v, want 10", got)
	}
}
