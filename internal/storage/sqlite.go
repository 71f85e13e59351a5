// Package storage provides SQLite-based persistence for finished rounds.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result represents a single finished round.
type Result struct {
	ID        int64
	Mode      string // ModeRandom or ModeDaily
	Day       string // YYYY-MM-DD date key, set for daily rounds
	Word      string
	Guesses   int // Guesses consumed, including the winning one
	Solved    bool
	CreatedAt time.Time
}

// Game modes recorded with results.
const (
	ModeRandom = "random"
	ModeDaily  = "daily"
)

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			day TEXT NOT NULL DEFAULT '',
			word TEXT NOT NULL,
			guesses INTEGER NOT NULL,
			solved INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at);
		CREATE INDEX IF NOT EXISTS idx_results_daily ON results(mode, day);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO results (mode, day, word, guesses, solved) VALUES (?, ?, ?, ?, ?)",
		r.Mode, r.Day, r.Word, r.Guesses, boolToInt(r.Solved),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the N most recently finished rounds, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, mode, day, word, guesses, solved, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// Stats contains aggregated statistics over all recorded rounds.
type Stats struct {
	Played        int
	Won           int
	CurrentStreak int         // Consecutive wins ending with the latest round
	MaxStreak     int         // Longest run of consecutive wins
	Distribution  map[int]int // Guesses consumed -> wins with that count
}

// WinRate returns the share of played rounds that were won, 0.0 to 1.0.
func (st *Stats) WinRate() float64 {
	if st.Played == 0 {
		return 0
	}
	return float64(st.Won) / float64(st.Played)
}

// Stats retrieves aggregated statistics over all recorded rounds.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{Distribution: make(map[int]int)}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(solved), 0) FROM results`,
	).Scan(&stats.Played, &stats.Won)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count results: %w", err)
	}

	rows, err := s.db.Query(
		`SELECT guesses, COUNT(*) FROM results WHERE solved = 1 GROUP BY guesses`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query distribution: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var guesses, count int
		if err := rows.Scan(&guesses, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan distribution row: %w", err)
		}
		stats.Distribution[guesses] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	// Streaks follow the order rounds were recorded in.
	ordered, err := s.db.Query(
		`SELECT solved FROM results ORDER BY created_at, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query streaks: %w", err)
	}
	defer ordered.Close()

	streak := 0
	for ordered.Next() {
		var solved int
		if err := ordered.Scan(&solved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan streak row: %w", err)
		}
		if solved == 1 {
			streak++
			if streak > stats.MaxStreak {
				stats.MaxStreak = streak
			}
		} else {
			streak = 0
		}
	}
	if err := ordered.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	stats.CurrentStreak = streak

	return stats, nil
}

// DailyPlayed reports whether a daily round was already recorded for the
// given date key.
func (s *Store) DailyPlayed(day string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM results WHERE mode = ? AND day = ?",
		ModeDaily, day,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query daily result: %w", err)
	}
	return count > 0, nil
}

// DailyResult retrieves the recorded daily round for the given date key.
// Returns nil if none was played.
func (s *Store) DailyResult(day string) (*Result, error) {
	row := s.db.QueryRow(
		`SELECT id, mode, day, word, guesses, solved, created_at
		 FROM results
		 WHERE mode = ? AND day = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT 1`,
		ModeDaily, day,
	)

	r, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearResults deletes all recorded rounds.
func (s *Store) ClearResults() error {
	_, err := s.db.Exec("DELETE FROM results")
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// scanner covers both sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(row scanner) (Result, error) {
	var r Result
	var solved int
	var createdAt any
	if err := row.Scan(&r.ID, &r.Mode, &r.Day, &r.Word, &r.Guesses, &solved, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return r, err
		}
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Solved = solved == 1

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}

	return r, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
