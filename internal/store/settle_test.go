package store

import (
	"errors"
	"sync"
	"testing"
)

func TestSettlePlayMovesBalanceAndAppendsLedger(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := createTestPlayer(t, st, ctx, "alice", 100)
	newBal, err := st.SettlePlay(ctx, id, "slot-machine", 10, 25)
	if err != nil {
		t.Fatalf("settle: %v", err)
	}
	if newBal != 115 {
		t.Fatalf("newBal = %v, want 115", newBal)
	}
	bal, err := st.GetPlayerBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if bal != 115 {
		t.Fatalf("persisted balance = %v, want 115", bal)
	}
	txs, err := st.ListPlayerTransactions(ctx, id, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected one transaction, got %d", len(txs))
	}
	if txs[0].Game != "slot-machine" || txs[0].AmountWagered != 10 || txs[0].OutcomeAmount != 25 {
		t.Fatalf("transaction fields mismatch: %+v", txs[0])
	}
}

func TestSettlePlayInsufficientFundsLeavesNoTrace(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := createTestPlayer(t, st, ctx, "bob", 5)
	_, err := st.SettlePlay(ctx, id, "roulette", 10, 100)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("got %v, want ErrInsufficientFunds", err)
	}
	bal, err := st.GetPlayerBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if bal != 5 {
		t.Fatalf("failed settlement moved balance to %v", bal)
	}
	txs, err := st.ListPlayerTransactions(ctx, id, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("failed settlement appended %d transactions", len(txs))
	}
}

func TestSettlePlayUnknownPlayer(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	_, err := st.SettlePlay(ctx, "no-such-player", "roulette", 1, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestSettlePlaySerializesPerPlayer(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := createTestPlayer(t, st, ctx, "carol", 15)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = st.SettlePlay(ctx, id, "slot-machine", 10, 0)
		}(i)
	}
	wg.Wait()

	failures := 0
	for _, err := range errs {
		if errors.Is(err, ErrInsufficientFunds) {
			failures++
		} else if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one insufficient-funds failure, got %d", failures)
	}
	bal, err := st.GetPlayerBalance(ctx, id)
	if err != nil {
		t.Fatalf("get balance: %v", err)
	}
	if bal != 5 {
		t.Fatalf("balance = %v, want 5", bal)
	}
	txs, err := st.ListPlayerTransactions(ctx, id, 10, 0)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}
	if len(txs) != 1 {
		t.Fatalf("expected one transaction, got %d", len(txs))
	}
}

func TestSettlePlayRejectsNegativeAmounts(t *testing.T) {
	st, ctx, cleanup := openStore(t)
	defer cleanup()

	id := createTestPlayer(t, st, ctx, "dave", 100)
	if _, err := st.SettlePlay(ctx, id, "slot-machine", -1, 0); err == nil {
		t.Fatal("negative wager accepted")
	}
	if _, err := st.SettlePlay(ctx, id, "slot-machine", 1, -1); err == nil {
		t.Fatal("negative prize accepted")
	}
	bal, _ := st.GetPlayerBalance(ctx, id)
	if bal != 100 {
		t.Fatalf("balance = %v, want 100", bal)
	}
}
