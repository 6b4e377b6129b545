package sim

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestApplyDelta_Unconditional(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(10), 30)

	g.ApplyDelta(decimal.NewFromInt(-25))

	if !g.GetBalance().Equal(decimal.NewFromInt(-15)) {
		t.Errorf("expected balance -15, got %s", g.GetBalance())
	}
}

func TestSetPrice_ReturnsPrior(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(500), 30)

	old, err := g.SetPrice("Soda", decimal.RequireFromString("2.25"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !old.Equal(decimal.RequireFromString("1.75")) {
		t.Errorf("expected prior price 1.75, got %s", old)
	}
	if !g.Products["Soda"].Price.Equal(decimal.RequireFromString("2.25")) {
		t.Errorf("price not updated, got %s", g.Products["Soda"].Price)
	}
}

func TestSetPrice_UnknownProduct(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(500), 30)

	_, err := g.SetPrice("Gum", decimal.NewFromInt(1))
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	var unknownErr *UnknownProductError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownProductError, got %T", err)
	}
	if unknownErr.Name != "Gum" {
		t.Errorf("expected product name Gum, got %q", unknownErr.Name)
	}
}

func TestInventorySnapshot_Immutable(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(500), 30)

	snap := g.InventorySnapshot()
	snap["Soda"] = ProductSnapshot{Stock: 999}

	if g.Products["Soda"].Stock != 10 {
		t.Errorf("snapshot mutation leaked into state: stock %d", g.Products["Soda"].Stock)
	}
}

func TestSnapshot_LastTenEmails(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(500), 30)
	for i := 0; i < 15; i++ {
		g.AppendEmail(EmailRecord{Direction: "out", Counterpart: "QuickStock", Subject: "x"})
	}

	snap := g.Snapshot()
	if len(snap.Emails) != 10 {
		t.Errorf("expected 10 emails in snapshot, got %d", len(snap.Emails))
	}
	if len(g.Emails) != 15 {
		t.Errorf("email log should keep all entries, got %d", len(g.Emails))
	}
}

func TestAppendEmail_TruncatesBody(t *testing.T) {
	g := NewGameState(decimal.NewFromInt(500), 30)
	long := make([]byte, 500)
	for i := range long {
		long[i] = 'a'
	}

	g.AppendEmail(EmailRecord{Direction: "out", Counterpart: "VendMart", Body: string(long)})

	if got := len(g.Emails[0].Body); got != maxEmailBody {
		t.Errorf("expected body truncated to %d, got %d", maxEmailBody, got)
	}
}

func TestSnapshot_BalanceRoundedToCents(t *testing.T) {
	g := NewGameState(decimal.RequireFromString("123.456"), 30)

	snap := g.Snapshot()
	if snap.Balance != 123.46 {
		t.Errorf("expected balance 123.46, got %v", snap.Balance)
	}
}
