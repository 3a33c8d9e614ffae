package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists screening history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the screener writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS screen_runs (
			id        TEXT PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			scanned   INTEGER,
			matched   INTEGER,
			skipped   INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON screen_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS signals (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id           TEXT NOT NULL,
			code             TEXT NOT NULL,
			name             TEXT,
			price            REAL,
			trend            TEXT,
			bottom_cross     INTEGER,
			golden_cross     INTEGER,
			avg_traded_value REAL,
			risk_tier        TEXT,
			as_of            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_run ON signals(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_signals_code ON signals(code)`,

		`CREATE TABLE IF NOT EXISTS backtests (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			code         TEXT NOT NULL,
			forward_days INTEGER,
			evaluated    INTEGER,
			win_rate     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_backtests_code ON backtests(code)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun stores the run summary and every accepted signal in one
// transaction. Runs without an ID get one assigned.
func (r *SQLiteRecorder) RecordRun(run *ScreenRun) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if run.ID == "" {
		run.ID = uuid.NewString()
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO screen_runs (id, timestamp, scanned, matched, skipped)
		VALUES (?,?,?,?,?)`,
		run.ID, time.Now().Unix(), run.Stats.Scanned, run.Stats.Matched, run.Stats.Skipped,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for _, s := range run.Results {
		if _, err := tx.Exec(`INSERT INTO signals
			(run_id, code, name, price, trend, bottom_cross, golden_cross, avg_traded_value, risk_tier, as_of)
			VALUES (?,?,?,?,?,?,?,?,?,?)`,
			run.ID, s.Code, s.Name, s.Price, s.TrendLabel,
			boolInt(s.BottomCross), boolInt(s.GoldenCross),
			s.AvgTradedValue, s.RiskTier, s.Date.Format("2006-01-02"),
		); err != nil {
			return fmt.Errorf("insert signal %s: %w", s.Code, err)
		}
	}

	return tx.Commit()
}

func (r *SQLiteRecorder) RecordBacktest(rec *BacktestRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO backtests
		(timestamp, code, forward_days, evaluated, win_rate)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), rec.Code, rec.ForwardDays, rec.Evaluated, rec.WinRate,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
