package persistence

import (
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/talgya/vendsim/internal/sim"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSaveDay_SnapshotRoundTrip(t *testing.T) {
	db := openTestDB(t)
	runID := uuid.New()
	if err := db.CreateRun(runID, "Test Co", 42, 30); err != nil {
		t.Fatal(err)
	}

	g := sim.NewGameState(decimal.NewFromInt(500), 30)
	g.Day = 3
	g.SalesToday = map[string]int{"Soda": 4, "Chips": 0, "Candy": 2}
	g.AppendEmail(sim.EmailRecord{Direction: "out", Counterpart: "QuickStock", Subject: "Restock", Body: "order 10 soda"})

	if err := db.SaveDay(runID, g); err != nil {
		t.Fatalf("save day: %v", err)
	}

	snap, err := db.DaySnapshot(runID, 3)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}
	if snap.Day != 3 || snap.Balance != 500 {
		t.Errorf("snapshot mismatch: %+v", snap)
	}
	if snap.SalesToday["Soda"] != 4 {
		t.Errorf("sales not persisted: %v", snap.SalesToday)
	}
	if len(snap.Emails) != 1 || snap.Emails[0].Counterpart != "QuickStock" {
		t.Errorf("emails not persisted: %v", snap.Emails)
	}
}

func TestSaveDay_Idempotent(t *testing.T) {
	db := openTestDB(t)
	runID := uuid.New()
	if err := db.CreateRun(runID, "Test Co", 42, 30); err != nil {
		t.Fatal(err)
	}

	g := sim.NewGameState(decimal.NewFromInt(500), 30)
	if err := db.SaveDay(runID, g); err != nil {
		t.Fatal(err)
	}
	g.ApplyDelta(decimal.NewFromInt(-100))
	if err := db.SaveDay(runID, g); err != nil {
		t.Fatalf("resave failed: %v", err)
	}

	snap, err := db.DaySnapshot(runID, 1)
	if err != nil {
		t.Fatal(err)
	}
	if snap.Balance != 400 {
		t.Errorf("resave should replace snapshot, got balance %v", snap.Balance)
	}
}

func TestActivityLog(t *testing.T) {
	db := openTestDB(t)
	runID := uuid.New()
	if err := db.CreateRun(runID, "Test Co", 42, 30); err != nil {
		t.Fatal(err)
	}

	for _, msg := range []string{"--- Day 1 ---", "Daily fee: -$5.00", "Sold 4 Soda ($1.75 each)"} {
		if err := db.AppendActivity(runID, 1, msg, ""); err != nil {
			t.Fatalf("append activity: %v", err)
		}
	}

	messages, err := db.RecentActivity(runID, 2)
	if err != nil {
		t.Fatalf("recent activity: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0] != "Daily fee: -$5.00" || messages[1] != "Sold 4 Soda ($1.75 each)" {
		t.Errorf("wrong order or content: %v", messages)
	}
}

func TestFinishRun(t *testing.T) {
	db := openTestDB(t)
	runID := uuid.New()
	if err := db.CreateRun(runID, "Test Co", 42, 30); err != nil {
		t.Fatal(err)
	}

	if err := db.FinishRun(runID, "complete", 612.50); err != nil {
		t.Fatalf("finish run: %v", err)
	}

	var outcome string
	var balance float64
	if err := db.conn.QueryRow(
		"SELECT outcome, final_balance FROM runs WHERE id = ?", runID.String(),
	).Scan(&outcome, &balance); err != nil {
		t.Fatal(err)
	}
	if outcome != "complete" || balance != 612.50 {
		t.Errorf("run not finalized: %s %v", outcome, balance)
	}
}
