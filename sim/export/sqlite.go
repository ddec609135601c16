package export

import (
	"database/sql"
	"fmt"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"

	"github.com/inference-sim/ssq-sim/sim"
)

// SQLiteWriter stores reports and per-job series in a SQLite database.
// Each WriteRun is one transaction.
type SQLiteWriter struct {
	db   *sql.DB
	path string
}

// DefaultSQLitePath returns a fresh database file name for runID.
func DefaultSQLitePath(runID string) string {
	return "ssq_" + runID + ".sqlite3"
}

// OpenSQLite opens (creating if needed) the database at path and ensures the
// runs and jobs tables exist.
func OpenSQLite(path string) (*SQLiteWriter, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	w := &SQLiteWriter{db: db, path: path}
	if err := w.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return w, nil
}

func (w *SQLiteWriter) createTables() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			run_id           TEXT NOT NULL,
			policy           TEXT NOT NULL,
			seed             INTEGER NOT NULL,
			jobs             INTEGER NOT NULL,
			horizon          REAL NOT NULL,
			avg_interarrival REAL NOT NULL,
			avg_wait         REAL NOT NULL,
			avg_delay        REAL NOT NULL,
			avg_service      REAL NOT NULL,
			avg_in_node      REAL NOT NULL,
			avg_in_queue     REAL NOT NULL,
			utilization      REAL NOT NULL,
			PRIMARY KEY (run_id, policy)
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			run_id TEXT NOT NULL,
			policy TEXT NOT NULL,
			job    INTEGER NOT NULL,
			delay  REAL NOT NULL,
			wait   REAL NOT NULL,
			PRIMARY KEY (run_id, policy, job)
		)`,
	}
	for _, s := range stmts {
		if _, err := w.db.Exec(s); err != nil {
			return fmt.Errorf("creating tables in %s: %w", w.path, err)
		}
	}
	return nil
}

// WriteRun inserts one report and its per-job series under runID.
func (w *SQLiteWriter) WriteRun(runID string, r *sim.Report, delays, waits []float64) (err error) {
	if len(delays) != len(waits) {
		return fmt.Errorf("series length mismatch: %d delays, %d waits", len(delays), len(waits))
	}
	tx, err := w.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.Exec(`INSERT INTO runs VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, string(r.Policy), r.Seed, r.Jobs, r.Horizon,
		r.AvgInterarrival, r.AvgWait, r.AvgDelay, r.AvgService,
		r.AvgInNode, r.AvgInQueue, r.Utilization)
	if err != nil {
		return fmt.Errorf("inserting run %s/%s: %w", runID, r.Policy, err)
	}

	stmt, err := tx.Prepare(`INSERT INTO jobs VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing job insert: %w", err)
	}
	defer stmt.Close()
	for i := range delays {
		if _, err = stmt.Exec(runID, string(r.Policy), i+1, delays[i], waits[i]); err != nil {
			return fmt.Errorf("inserting job %d of %s/%s: %w", i+1, runID, r.Policy, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("committing run %s/%s: %w", runID, r.Policy, err)
	}
	return nil
}

// CountJobs returns the number of job rows stored for runID and policy.
func (w *SQLiteWriter) CountJobs(runID string, policy sim.Policy) (int, error) {
	var n int
	err := w.db.QueryRow(`SELECT COUNT(*) FROM jobs WHERE run_id = ? AND policy = ?`, runID, string(policy)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return n, nil
}

// Path returns the database file path.
func (w *SQLiteWriter) Path() string {
	return w.path
}

// Close closes the database.
func (w *SQLiteWriter) Close() error {
	return w.db.Close()
}
