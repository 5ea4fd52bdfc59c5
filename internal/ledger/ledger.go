// Package ledger persists run history to SQLite: one row per run, one
// row per reviewer outcome, one row per model attempt. The ledger is an
// audit trail, not a dependency of the pipeline; callers treat write
// failures as log lines, never as run failures.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/eden-eldith/trialhex/internal/review"
)

// Ledger wraps the SQLite connection with run-history operations
type Ledger struct {
	conn *sql.DB
}

// Open creates or opens the ledger database at the given path.
// It enables WAL mode, foreign keys, and runs migrations.
func Open(path string) (*Ledger, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger: %w", err)
	}

	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	l := &Ledger{conn: conn}

	if err := l.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return l, nil
}

// Close closes the database connection
func (l *Ledger) Close() error {
	return l.conn.Close()
}

// migrate creates or updates the ledger schema
func (l *Ledger) migrate() error {
	schema := `
-- Runs table: one row per review run
CREATE TABLE IF NOT EXISTS runs (
    id              TEXT PRIMARY KEY,
    document        TEXT NOT NULL,
    reviewer_set    TEXT NOT NULL,
    reviewer_count  INTEGER NOT NULL,
    verdict         TEXT,
    success_count   INTEGER,
    started_at      DATETIME NOT NULL,
    completed_at    DATETIME,
    error           TEXT
);

-- Reviews table: terminal outcome per reviewer per run
CREATE TABLE IF NOT EXISTS reviews (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    reviewer_id     TEXT NOT NULL,
    status          TEXT NOT NULL,
    fail_reason     TEXT,
    model           TEXT,
    attempts        INTEGER NOT NULL,
    UNIQUE(run_id, reviewer_id)
);

-- Attempts table: every model invocation, in chain order
CREATE TABLE IF NOT EXISTS attempts (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id          TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    reviewer_id     TEXT NOT NULL,
    model           TEXT NOT NULL,
    chain_position  INTEGER NOT NULL,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_reviews_run_id ON reviews(run_id);
CREATE INDEX IF NOT EXISTS idx_attempts_run_id ON attempts(run_id);
`

	_, err := l.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}

	return nil
}

// NewRunID generates a fresh sortable run identifier
func NewRunID() string {
	return ulid.Make().String()
}

// CreateRun records the start of a run and returns its ID
func (l *Ledger) CreateRun(document, reviewerSet string, reviewerCount int) (string, error) {
	id := NewRunID()
	_, err := l.conn.Exec(
		`INSERT INTO runs (id, document, reviewer_set, reviewer_count, started_at) VALUES (?, ?, ?, ?, ?)`,
		id, document, reviewerSet, reviewerCount, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create run: %w", err)
	}
	return id, nil
}

// FinishRun records the terminal state of a run
func (l *Ledger) FinishRun(runID, verdict string, successCount int, runErr error) error {
	var errText sql.NullString
	if runErr != nil {
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}
	_, err := l.conn.Exec(
		`UPDATE runs SET verdict = ?, success_count = ?, completed_at = ?, error = ? WHERE id = ?`,
		verdict, successCount, time.Now().UTC(), errText, runID,
	)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}
	return nil
}

// RecordResult stores one reviewer's terminal outcome
func (l *Ledger) RecordResult(runID string, r review.Result) error {
	_, err := l.conn.Exec(
		`INSERT INTO reviews (run_id, reviewer_id, status, fail_reason, model, attempts) VALUES (?, ?, ?, ?, ?, ?)`,
		runID, r.ReviewerID, string(r.Status), string(r.FailReason), r.Model, r.Attempts,
	)
	if err != nil {
		return fmt.Errorf("failed to record result for %s: %w", r.ReviewerID, err)
	}

	for pos, model := range r.ModelsTried {
		_, err := l.conn.Exec(
			`INSERT INTO attempts (run_id, reviewer_id, model, chain_position) VALUES (?, ?, ?, ?)`,
			runID, r.ReviewerID, model, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to record attempt for %s: %w", r.ReviewerID, err)
		}
	}

	return nil
}

// RunSummary is one row of run history
type RunSummary struct {
	ID            string
	Document      string
	ReviewerSet   string
	ReviewerCount int
	Verdict       string
	SuccessCount  int
	StartedAt     time.Time
	CompletedAt   time.Time
}

// RecentRuns returns the most recent runs, newest first. ULIDs sort
// lexically by creation time, so ordering by id is ordering by time.
func (l *Ledger) RecentRuns(limit int) ([]RunSummary, error) {
	rows, err := l.conn.Query(
		`SELECT id, document, reviewer_set, reviewer_count,
		        COALESCE(verdict, ''), COALESCE(success_count, 0),
		        started_at, COALESCE(completed_at, started_at)
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var s RunSummary
		if err := rows.Scan(&s.ID, &s.Document, &s.ReviewerSet, &s.ReviewerCount,
			&s.Verdict, &s.SuccessCount, &s.StartedAt, &s.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
