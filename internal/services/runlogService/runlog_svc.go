package runlogservice

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// RunRecord is one bootstrap run as stored in the history database.
type RunRecord struct {
	ID         string
	Variant    string
	Package    string
	VenvDir    string
	StartedAt  time.Time
	FinishedAt time.Time
	// "ok" or "failed"
	Status     string
	FailedStep string
}

// StepRecord is one pipeline step of a recorded run.
type StepRecord struct {
	RunID      string
	Seq        int
	Name       string
	Status     string
	Detail     string
	DurationMs int64
}

// RunlogService stores bootstrap run history in a local SQLite database.
type RunlogService struct {
	db *sql.DB
}

// DefaultDBPath returns ~/.nbstrap/history.db, creating the directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(home, ".nbstrap")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}

	return filepath.Join(dir, "history.db"), nil
}

// NewRunlogService opens (and migrates) the history database.
func NewRunlogService(dbPath string) (*RunlogService, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &RunlogService{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the DB
func (s *RunlogService) Close() error {
	return s.db.Close()
}

func (s *RunlogService) migrate() error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	variant     TEXT NOT NULL,
	package     TEXT NOT NULL,
	venv_dir    TEXT NOT NULL DEFAULT '',
	started_at  INTEGER NOT NULL,
	finished_at INTEGER NOT NULL,
	status      TEXT NOT NULL,
	failed_step TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS run_steps (
	run_id      TEXT NOT NULL REFERENCES runs(id),
	seq         INTEGER NOT NULL,
	name        TEXT NOT NULL,
	status      TEXT NOT NULL,
	detail      TEXT NOT NULL DEFAULT '',
	duration_ms INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, seq)
);`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate history schema: %w", err)
	}
	return nil
}

// RecordRun stores a run and its steps in one transaction.
func (s *RunlogService) RecordRun(run RunRecord, steps []StepRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO runs (id, variant, package, venv_dir, started_at, finished_at, status, failed_step)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Variant, run.Package, run.VenvDir,
		run.StartedAt.Unix(), run.FinishedAt.Unix(), run.Status, run.FailedStep,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	for i, step := range steps {
		_, err = tx.Exec(
			`INSERT INTO run_steps (run_id, seq, name, status, detail, duration_ms)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID, i, step.Name, step.Status, step.Detail, step.DurationMs,
		)
		if err != nil {
			return fmt.Errorf("failed to insert step %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// ListRuns returns the most recent runs, newest first.
func (s *RunlogService) ListRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, variant, package, venv_dir, started_at, finished_at, status, failed_step
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var started, finished int64
		if err := rows.Scan(&r.ID, &r.Variant, &r.Package, &r.VenvDir, &started, &finished, &r.Status, &r.FailedStep); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(started, 0)
		r.FinishedAt = time.Unix(finished, 0)
		runs = append(runs, r)
	}

	return runs, rows.Err()
}

// RunSteps returns the steps of one run in execution order.
func (s *RunlogService) RunSteps(runID string) ([]StepRecord, error) {
	rows, err := s.db.Query(
		`SELECT run_id, seq, name, status, detail, duration_ms
		 FROM run_steps WHERE run_id = ? ORDER BY seq`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var st StepRecord
		if err := rows.Scan(&st.RunID, &st.Seq, &st.Name, &st.Status, &st.Detail, &st.DurationMs); err != nil {
			return nil, err
		}
		steps = append(steps, st)
	}

	return steps, rows.Err()
}
