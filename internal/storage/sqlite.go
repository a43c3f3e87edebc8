// Package storage provides SQLite-based persistence for finished maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Run is one won maze run.
type Run struct {
	ID           int64
	RunID        string // uuid, assigned on save when empty
	Player       string
	Difficulty   string // session.Level name
	MazeSize     int
	Seed         int64
	Moves        int
	Elapsed      time.Duration
	Score        int
	ShortestPath int
	CreatedAt    time.Time
}

// Stats aggregates every run of one difficulty.
type Stats struct {
	Difficulty  string
	Runs        int
	HighScore   int
	AvgScore    float64
	BestTime    time.Duration
	FewestMoves int
	LastPlayed  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			difficulty TEXT NOT NULL,
			maze_size INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL,
			score INTEGER NOT NULL,
			shortest_path INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(difficulty, score DESC, elapsed_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
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

// SaveRun records a finished run. RunID and CreatedAt are filled in when
// empty. Returns the run as stored.
func (s *Store) SaveRun(r Run) (Run, error) {
	if r.RunID == "" {
		r.RunID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	r.CreatedAt = r.CreatedAt.UTC().Truncate(time.Second)

	res, err := s.db.Exec(
		`INSERT INTO runs
		 (run_id, player, difficulty, maze_size, seed, moves, elapsed_ms, score, shortest_path, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.RunID,
		r.Player,
		r.Difficulty,
		r.MazeSize,
		r.Seed,
		r.Moves,
		r.Elapsed.Milliseconds(),
		r.Score,
		r.ShortestPath,
		r.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot save run: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

const runColumns = `id, run_id, player, difficulty, maze_size, seed, moves, elapsed_ms, score, shortest_path, created_at`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(sc rowScanner) (Run, error) {
	var r Run
	var elapsedMS int64
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.RunID,
		&r.Player,
		&r.Difficulty,
		&r.MazeSize,
		&r.Seed,
		&r.Moves,
		&elapsedMS,
		&r.Score,
		&r.ShortestPath,
		&createdAt,
	)
	if err != nil {
		return Run{}, err
	}
	r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// TopRuns returns the best runs for a difficulty: highest score first, ties
// broken by faster time, then fewer moves, then earlier save.
func (s *Store) TopRuns(difficulty string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE difficulty = ?
		 ORDER BY score DESC, elapsed_ms ASC, moves ASC, id ASC
		 LIMIT ?`,
		difficulty, limit,
	)
}

// PlayerRuns returns a player's most recent runs across all difficulties.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
}

// RunByID looks a run up by its uuid. Returns nil when it does not exist.
func (s *Store) RunByID(runID string) (*Run, error) {
	r, err := scanRun(s.db.QueryRow(
		`SELECT `+runColumns+` FROM runs WHERE run_id = ?`,
		runID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	return &r, nil
}

// HighScore returns the best score for a difficulty, or 0 with no runs.
func (s *Store) HighScore(difficulty string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE difficulty = ?",
		difficulty,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Rank returns the 1-based leaderboard position a score would take for a
// difficulty. Equal scores share the better rank.
func (s *Store) Rank(difficulty string, score int) (int, error) {
	var better int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE difficulty = ? AND score > ?",
		difficulty, score,
	).Scan(&better)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query rank: %w", err)
	}
	return better + 1, nil
}

// Stats aggregates the runs of one difficulty. A difficulty with no runs
// returns zero values.
func (s *Store) Stats(difficulty string) (*Stats, error) {
	st := &Stats{Difficulty: difficulty}

	var bestMS sql.NullInt64
	var fewest sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        MIN(elapsed_ms), MIN(moves), MAX(created_at)
		 FROM runs WHERE difficulty = ?`,
		difficulty,
	).Scan(&st.Runs, &st.HighScore, &st.AvgScore, &bestMS, &fewest, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if bestMS.Valid {
		st.BestTime = time.Duration(bestMS.Int64) * time.Millisecond
	}
	if fewest.Valid {
		st.FewestMoves = int(fewest.Int64)
	}
	st.LastPlayed = parseTime(lastPlayed)
	return st, nil
}

// AllStats returns statistics for every difficulty that has runs.
func (s *Store) AllStats() (map[string]*Stats, error) {
	rows, err := s.db.Query(
		`SELECT difficulty, COUNT(*), MAX(score), AVG(score), MIN(elapsed_ms), MIN(moves), MAX(created_at)
		 FROM runs
		 GROUP BY difficulty`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*Stats)
	for rows.Next() {
		var st Stats
		var bestMS int64
		var lastPlayed any
		if err := rows.Scan(&st.Difficulty, &st.Runs, &st.HighScore, &st.AvgScore, &bestMS, &st.FewestMoves, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		st.BestTime = time.Duration(bestMS) * time.Millisecond
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.Difficulty] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes every run of a difficulty. An empty difficulty clears
// all runs.
func (s *Store) ClearRuns(difficulty string) (int64, error) {
	var res sql.Result
	var err error
	if difficulty == "" {
		res, err = s.db.Exec("DELETE FROM runs")
	} else {
		res, err = s.db.Exec("DELETE FROM runs WHERE difficulty = ?", difficulty)
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count cleared runs: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string values from DATETIME columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed.UTC()
		}
	case []byte:
		return parseTime(string(t))
	}
	return time.Time{}
}
