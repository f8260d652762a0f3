package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Run outcomes.
const (
	OutcomeWin      = "win"
	OutcomeGameOver = "gameover"
	OutcomeTimeout  = "timeout"
)

// RunRecord is a headless simulation result. Seed, Preset and Ticks are
// enough to replay it; Hash is the snapshot hash at the final tick.
type RunRecord struct {
	ID        int64
	Mode      string
	Seed      int64
	Preset    string
	Ticks     int
	Score     int
	Level     int
	Bricks    int
	Outcome   string
	Hash      string
	CreatedAt time.Time
}

const runColumns = `id, mode, seed, preset, ticks, score, level, bricks, outcome, hash, created_at`

// SaveRun records a simulation result and returns its row ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (mode, seed, preset, ticks, score, level, bricks, outcome, hash)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode, r.Seed, r.Preset, r.Ticks, r.Score, r.Level, r.Bricks, r.Outcome, r.Hash,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RunByID returns the run with the given ID, or nil when it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return r, nil
}

// RecentRuns returns the latest runs, newest first. An empty mode matches
// every mode.
func (s *Store) RecentRuns(mode string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	var (
		rows *sql.Rows
		err  error
	)
	if mode == "" {
		rows, err = s.db.Query(`SELECT `+runColumns+` FROM runs ORDER BY id DESC LIMIT ?`, limit)
	} else {
		rows, err = s.db.Query(`SELECT `+runColumns+` FROM runs WHERE mode = ? ORDER BY id DESC LIMIT ?`, mode, limit)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunsBySeed returns every run recorded for mode and seed, oldest first.
// Matching hashes across rows confirm a replay was deterministic.
func (s *Store) RunsBySeed(mode string, seed int64) ([]RunRecord, error) {
	rows, err := s.db.Query(
		`SELECT `+runColumns+` FROM runs WHERE mode = ? AND seed = ? ORDER BY id ASC`,
		mode, seed,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*RunRecord, error) {
	var r RunRecord
	var createdAt any
	if err := row.Scan(
		&r.ID, &r.Mode, &r.Seed, &r.Preset, &r.Ticks,
		&r.Score, &r.Level, &r.Bricks, &r.Outcome, &r.Hash, &createdAt,
	); err != nil {
		return nil, err
	}
	r.CreatedAt = parseTimestamp(createdAt)
	return &r, nil
}
