package export

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"costguard-hq/guardian/pkg/ledger"
)

// sqliteSchema creates the report tables. Each Write appends one report
// row plus its event rows; reports are never updated in place.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS reports (
	id                  TEXT PRIMARY KEY,
	created_at          TIMESTAMP NOT NULL,
	total_cost_usd      REAL NOT NULL,
	total_input_tokens  INTEGER NOT NULL,
	total_output_tokens INTEGER NOT NULL,
	total_requests      INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS report_events (
	report_id     TEXT NOT NULL REFERENCES reports(id),
	event_id      TEXT NOT NULL,
	model         TEXT NOT NULL,
	provider      TEXT NOT NULL,
	input_tokens  INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	cost_usd      REAL NOT NULL,
	recorded_at   TIMESTAMP NOT NULL,
	tag           TEXT,
	PRIMARY KEY (report_id, event_id)
);

CREATE INDEX IF NOT EXISTS idx_report_events_recorded_at
	ON report_events(recorded_at);
`

// SQLiteSink writes point-in-time ledger reports to a SQLite database.
//
// The sink stores snapshots for later analysis; it does not make the
// ledger durable. Every Write appends a new report with a fresh ID, so a
// single database can accumulate the history of a long-running session.
type SQLiteSink struct {
	db   *sql.DB
	path string
}

// NewSQLiteSink opens (creating if needed) the report database at path.
func NewSQLiteSink(path string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report database %q: %w", path, err)
	}

	// WAL keeps concurrent readers from blocking report writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create report schema: %w", err)
	}

	return &SQLiteSink{db: db, path: path}, nil
}

// Write appends a snapshot of the ledger as a new report.
// Returns the generated report ID.
func (s *SQLiteSink) Write(ctx context.Context, led *ledger.Ledger) (string, error) {
	report := Snapshot(led)
	reportID := uuid.New().String()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin report transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (id, created_at, total_cost_usd, total_input_tokens, total_output_tokens, total_requests)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		reportID,
		time.Now().UTC(),
		report.Summary.TotalCostUSD,
		report.Summary.TotalInputTokens,
		report.Summary.TotalOutputTokens,
		report.Summary.TotalRequests,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert report: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO report_events (report_id, event_id, model, provider, input_tokens, output_tokens, cost_usd, recorded_at, tag)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range report.Events {
		_, err := stmt.ExecContext(ctx,
			reportID, ev.ID, ev.Model, string(ev.Provider),
			ev.InputTokens, ev.OutputTokens, ev.CostUSD,
			ev.RecordedAt.UTC(), ev.Tag,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert event %s: %w", ev.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit report: %w", err)
	}

	return reportID, nil
}

// ReportCount returns the number of stored reports.
func (s *SQLiteSink) ReportCount(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return n, nil
}

// Close releases the underlying database handle.
func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
