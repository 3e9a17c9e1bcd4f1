package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"AuditGame/internal/model"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// NewRunID returns a fresh identifier for a recorded run.
func NewRunID() string {
	return uuid.NewString()
}

// SQLiteRecorder persists run exports to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

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
		`CREATE TABLE IF NOT EXISTS runs (
			run_id             TEXT PRIMARY KEY,
			timestamp          INTEGER NOT NULL,
			seed               INTEGER,
			rounds             INTEGER,
			cost_high_safety   REAL,
			cost_low_safety    REAL,
			prob_bias_high     REAL,
			prob_bias_low      REAL,
			auditor_check_cost REAL,
			wager_amount       REAL,
			fine_amount        REAL,
			final_ai           REAL,
			final_auditor      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS rounds (
			run_id                 TEXT NOT NULL,
			round                  INTEGER NOT NULL,
			ai_invests_high        INTEGER,
			auditor_pays_for_check INTEGER,
			signal_bias            INTEGER,
			wager_placed           INTEGER,
			prob_bias              REAL,
			detection_prob         REAL,
			ai_safety_effect       REAL,
			auditor_check_effect   REAL,
			ai_wager_effect        REAL,
			auditor_wager_effect   REAL,
			incremental_ai         REAL,
			incremental_auditor    REAL,
			cumulative_ai          REAL,
			cumulative_auditor     REAL,
			PRIMARY KEY (run_id, round)
		)`,

		`CREATE TABLE IF NOT EXISTS bucket_stats (
			run_id      TEXT NOT NULL,
			decision    TEXT NOT NULL,
			outcome     INTEGER NOT NULL,
			count       INTEGER,
			avg_ai      REAL,
			avg_auditor REAL,
			PRIMARY KEY (run_id, decision, outcome)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordRun writes the run header, its full history and its bucket summary in one transaction.
func (r *SQLiteRecorder) RecordRun(evt *RunEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	p := evt.Params
	res := evt.Result
	if _, err := tx.Exec(`INSERT INTO runs
		(run_id, timestamp, seed, rounds,
		 cost_high_safety, cost_low_safety, prob_bias_high, prob_bias_low,
		 auditor_check_cost, wager_amount, fine_amount,
		 final_ai, final_auditor)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		evt.RunID, time.Now().Unix(), evt.Seed, p.Rounds,
		p.CostHighSafety, p.CostLowSafety, p.ProbBiasHigh, p.ProbBiasLow,
		p.AuditorCheckCost, p.WagerAmount, p.FineAmount,
		res.FinalAI, res.FinalAuditor,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO rounds
		(run_id, round, ai_invests_high, auditor_pays_for_check, signal_bias, wager_placed,
		 prob_bias, detection_prob,
		 ai_safety_effect, auditor_check_effect, ai_wager_effect, auditor_wager_effect,
		 incremental_ai, incremental_auditor, cumulative_ai, cumulative_auditor)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare rounds: %w", err)
	}
	defer stmt.Close()

	for i := range res.History {
		h := &res.History[i]
		if _, err := stmt.Exec(
			evt.RunID, h.Round, h.AIInvestsHigh, h.AuditorPaysForCheck, h.SignalBias, h.WagerPlaced,
			h.ProbBias, h.DetectionProb,
			h.AISafetyEffect, h.AuditorCheckEffect, h.AIWagerEffect, h.AuditorWagerEffect,
			h.IncrementalAI, h.IncrementalAuditor, h.CumulativeAI, h.CumulativeAuditor,
		); err != nil {
			return fmt.Errorf("insert round %d: %w", h.Round, err)
		}
	}

	if evt.Summary != nil {
		for _, d := range model.Decisions() {
			b, _ := evt.Summary.Get(d)
			for _, g := range []struct {
				outcome bool
				stats   model.GroupStats
			}{{true, b.True}, {false, b.False}} {
				if _, err := tx.Exec(`INSERT INTO bucket_stats
					(run_id, decision, outcome, count, avg_ai, avg_auditor)
					VALUES (?,?,?,?,?,?)`,
					evt.RunID, string(d), g.outcome, g.stats.Count, g.stats.AvgAI, g.stats.AvgAuditor,
				); err != nil {
					return fmt.Errorf("insert bucket %s: %w", d, err)
				}
			}
		}
	}

	return tx.Commit()
}

// LoadRounds reads back the recorded history of a run, ordered by round.
func (r *SQLiteRecorder) LoadRounds(runID string) ([]model.RoundRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT
		round, ai_invests_high, auditor_pays_for_check, signal_bias, wager_placed,
		prob_bias, detection_prob,
		ai_safety_effect, auditor_check_effect, ai_wager_effect, auditor_wager_effect,
		incremental_ai, incremental_auditor, cumulative_ai, cumulative_auditor
		FROM rounds WHERE run_id = ? ORDER BY round`, runID)
	if err != nil {
		return nil, fmt.Errorf("query rounds: %w", err)
	}
	defer rows.Close()

	var out []model.RoundRecord
	for rows.Next() {
		var h model.RoundRecord
		if err := rows.Scan(
			&h.Round, &h.AIInvestsHigh, &h.AuditorPaysForCheck, &h.SignalBias, &h.WagerPlaced,
			&h.ProbBias, &h.DetectionProb,
			&h.AISafetyEffect, &h.AuditorCheckEffect, &h.AIWagerEffect, &h.AuditorWagerEffect,
			&h.IncrementalAI, &h.IncrementalAuditor, &h.CumulativeAI, &h.CumulativeAuditor,
		); err != nil {
			return nil, fmt.Errorf("scan round: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// CountRuns returns the number of recorded runs.
func (r *SQLiteRecorder) CountRuns() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM runs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
