// Package scores keeps the high-score table in SQLite.
package scores

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultLimit is the number of entries returned by Top when no limit is given.
const DefaultLimit = 10

const schema = `CREATE TABLE IF NOT EXISTS scores (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	player      TEXT    NOT NULL,
	score       INTEGER NOT NULL,
	recorded_at INTEGER NOT NULL
)`

// Entry is one row of the high-score table.
type Entry struct {
	Player     string
	Score      int
	RecordedAt time.Time
}

// Store persists high scores in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

// Open opens a SQLite score store, creating the table if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create scores table: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Record adds a result to the table.
func (s *Store) Record(ctx context.Context, player string, score int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	player = strings.TrimSpace(player)
	if player == "" {
		return fmt.Errorf("player is required")
	}
	if score < 0 {
		return fmt.Errorf("score must not be negative")
	}

	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO scores (player, score, recorded_at) VALUES (?, ?, ?)`,
		player, score, s.now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// Top returns the best results, highest score first; ties go to the earlier result.
func (s *Store) Top(ctx context.Context, limit int) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT player, score, recorded_at FROM scores
		 ORDER BY score DESC, recorded_at ASC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e      Entry
			millis int64
		)
		if err := rows.Scan(&e.Player, &e.Score, &millis); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		e.RecordedAt = time.UnixMilli(millis).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return entries, nil
}
