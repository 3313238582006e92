// Package storage provides SQLite-based persistence for save states and high
// scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/garden-defense/internal/game"
)

// TopScoreSlots is the number of leaderboard places.
const TopScoreSlots = 10

// Store manages the SQLite database connection for game persistence.
type Store struct {
	db *sql.DB
}

var _ game.Persistence = (*Store)(nil)

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
		CREATE TABLE IF NOT EXISTS saves (
			name TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			round INTEGER NOT NULL DEFAULT 0,
			time_left INTEGER NOT NULL DEFAULT 0,
			saved_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			round INTEGER NOT NULL,
			player_name TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC);
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

// SaveGameState stores state under name, replacing any previous save.
func (s *Store) SaveGameState(state game.SaveState, name string) error {
	if name == "" {
		return errors.New("storage: save name must not be empty")
	}
	if state.SavedAt.IsZero() {
		state.SavedAt = time.Now()
	}
	payload, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode save %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (name, payload, score, round, time_left, saved_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   payload = excluded.payload,
		   score = excluded.score,
		   round = excluded.round,
		   time_left = excluded.time_left,
		   saved_at = excluded.saved_at`,
		name, string(payload), state.Score, state.Round, state.TimeLeft, state.SavedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game %q: %w", name, err)
	}
	return nil
}

// LoadGameState returns the save stored under name, or nil when there is none.
func (s *Store) LoadGameState(name string) (*game.SaveState, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM saves WHERE name = ?", name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game %q: %w", name, err)
	}

	var state game.SaveState
	if err := yaml.Unmarshal([]byte(payload), &state); err != nil {
		return nil, fmt.Errorf("storage: cannot decode save %q: %w", name, err)
	}
	return &state, nil
}

// ListSaves returns every save, newest first.
func (s *Store) ListSaves() ([]game.SaveSummary, error) {
	rows, err := s.db.Query(
		`SELECT name, score, round, time_left, saved_at
		 FROM saves
		 ORDER BY saved_at DESC, name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var saves []game.SaveSummary
	for rows.Next() {
		var e game.SaveSummary
		var savedAt any
		if err := rows.Scan(&e.Name, &e.Score, &e.Round, &e.TimeLeft, &savedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.SavedAt = parseTime(savedAt)
		saves = append(saves, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return saves, nil
}

// DeleteSave removes the save stored under name. Deleting a missing save is
// not an error.
func (s *Store) DeleteSave(name string) error {
	_, err := s.db.Exec("DELETE FROM saves WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete save %q: %w", name, err)
	}
	return nil
}

// SaveHighScore records a finished game.
func (s *Store) SaveHighScore(score, round int, playerName string) error {
	_, err := s.db.Exec(
		"INSERT INTO high_scores (score, round, player_name) VALUES (?, ?, ?)",
		score, round, playerName,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// TopHighScores retrieves the top n scores, highest first. Equal scores keep
// insertion order.
func (s *Store) TopHighScores(n int) ([]game.HighScore, error) {
	if n <= 0 {
		n = TopScoreSlots
	}

	rows, err := s.db.Query(
		`SELECT score, round, player_name, created_at
		 FROM high_scores
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []game.HighScore
	for rows.Next() {
		var e game.HighScore
		var createdAt any
		if err := rows.Scan(&e.Score, &e.Round, &e.PlayerName, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// IsTopScore reports whether score would enter the leaderboard.
func (s *Store) IsTopScore(score int) (bool, error) {
	var count int
	var lowest sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MIN(score) FROM (
		   SELECT score FROM high_scores ORDER BY score DESC, id ASC LIMIT ?
		 )`,
		TopScoreSlots,
	).Scan(&count, &lowest)
	if err != nil {
		return false, fmt.Errorf("storage: cannot query high scores: %w", err)
	}

	if count < TopScoreSlots || !lowest.Valid {
		return true, nil
	}
	return int64(score) > lowest.Int64, nil
}

// ClearHighScores deletes the leaderboard.
func (s *Store) ClearHighScores() error {
	_, err := s.db.Exec("DELETE FROM high_scores")
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime handles the datetime forms the driver may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00"} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
