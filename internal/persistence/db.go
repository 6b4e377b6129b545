// Package persistence provides SQLite-based run history storage.
package persistence

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/vendsim/internal/sim"
)

// DB wraps a SQLite connection for run history persistence.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		company TEXT NOT NULL,
		seed INTEGER NOT NULL,
		max_days INTEGER NOT NULL,
		started_at TEXT NOT NULL DEFAULT (datetime('now')),
		finished_at TEXT,
		outcome TEXT,
		final_balance REAL
	);

	CREATE TABLE IF NOT EXISTS day_snapshots (
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		state_json TEXT NOT NULL,
		PRIMARY KEY (run_id, day)
	);

	CREATE TABLE IF NOT EXISTS emails (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		direction TEXT NOT NULL,
		counterpart TEXT NOT NULL,
		subject TEXT NOT NULL,
		body TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS activity (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		message TEXT NOT NULL,
		style TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_snapshots_run ON day_snapshots(run_id);
	CREATE INDEX IF NOT EXISTS idx_activity_run ON activity(run_id, day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// CreateRun registers a new simulation run.
func (db *DB) CreateRun(id uuid.UUID, company string, seed int64, maxDays int) error {
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, company, seed, max_days) VALUES (?, ?, ?, ?)",
		id.String(), company, seed, maxDays,
	)
	if err != nil {
		return fmt.Errorf("create run: %w", err)
	}
	return nil
}

// FinishRun records the terminal outcome and final balance of a run.
func (db *DB) FinishRun(id uuid.UUID, outcome string, finalBalance float64) error {
	_, err := db.conn.Exec(
		"UPDATE runs SET finished_at = datetime('now'), outcome = ?, final_balance = ? WHERE id = ?",
		outcome, finalBalance, id.String(),
	)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	return nil
}

// SaveDay stores the end-of-day snapshot and refreshes the email log for
// the run (full replace, like the snapshot it mirrors).
func (db *DB) SaveDay(runID uuid.UUID, g *sim.GameState) error {
	snap := g.Snapshot()
	stateJSON, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR REPLACE INTO day_snapshots (run_id, day, state_json) VALUES (?, ?, ?)",
		runID.String(), g.Day, string(stateJSON),
	); err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM emails WHERE run_id = ?", runID.String()); err != nil {
		return err
	}
	for _, e := range g.Emails {
		if _, err := tx.Exec(
			"INSERT INTO emails (run_id, direction, counterpart, subject, body) VALUES (?, ?, ?, ?, ?)",
			runID.String(), e.Direction, e.Counterpart, e.Subject, e.Body,
		); err != nil {
			return fmt.Errorf("insert email: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	slog.Debug("day saved", "run", runID, "day", g.Day, "emails", len(g.Emails))
	return nil
}

// AppendActivity records one activity event.
func (db *DB) AppendActivity(runID uuid.UUID, day int, message, style string) error {
	_, err := db.conn.Exec(
		"INSERT INTO activity (run_id, day, message, style) VALUES (?, ?, ?, ?)",
		runID.String(), day, message, style,
	)
	return err
}

// DaySnapshot loads the stored snapshot for one day of a run.
func (db *DB) DaySnapshot(runID uuid.UUID, day int) (*sim.Snapshot, error) {
	var stateJSON string
	err := db.conn.Get(&stateJSON,
		"SELECT state_json FROM day_snapshots WHERE run_id = ? AND day = ?",
		runID.String(), day,
	)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap sim.Snapshot
	if err := json.Unmarshal([]byte(stateJSON), &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// RecentActivity returns the most recent activity messages for a run,
// oldest first.
func (db *DB) RecentActivity(runID uuid.UUID, limit int) ([]string, error) {
	var messages []string
	err := db.conn.Select(&messages,
		`SELECT message FROM (
			SELECT id, message FROM activity WHERE run_id = ? ORDER BY id DESC LIMIT ?
		) ORDER BY id ASC`,
		runID.String(), limit,
	)
	return messages, err
}
