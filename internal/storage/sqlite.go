// Package storage provides SQLite-based persistence for render run stats.
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

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// RunRecord represents one completed render run of a scene.
type RunRecord struct {
	ID        int64
	SceneID   string
	Frames    uint64
	AvgFPS    float64
	Duration  time.Duration
	CreatedAt time.Time
}

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scene_id TEXT NOT NULL,
			frames INTEGER NOT NULL,
			avg_fps REAL NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scene_id ON runs(scene_id);
		CREATE INDEX IF NOT EXISTS idx_runs_recent ON runs(scene_id, created_at DESC);
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

// SaveRun records a completed render run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(sceneID string, frames uint64, avgFPS float64, duration time.Duration) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (scene_id, frames, avg_fps, duration_ms) VALUES (?, ?, ?, ?)",
		sceneID, frames, avgFPS, duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent N runs, optionally filtered by
// scene ID (empty sceneID means all scenes). Results are ordered newest
// first.
func (s *Store) RecentRuns(sceneID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, scene_id, frames, avg_fps, duration_ms, created_at
	          FROM runs`
	args := []any{}
	if sceneID != "" {
		query += " WHERE scene_id = ?"
		args = append(args, sceneID)
	}
	query += " ORDER BY created_at DESC, id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.SceneID, &r.Frames, &r.AvgFPS, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// LongestRun returns the highest frame count recorded for the given scene.
// Returns 0 if no runs exist.
func (s *Store) LongestRun(sceneID string) (uint64, error) {
	var frames sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(frames) FROM runs WHERE scene_id = ?",
		sceneID,
	).Scan(&frames)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query longest run: %w", err)
	}
	if !frames.Valid {
		return 0, nil
	}
	return uint64(frames.Int64), nil
}
