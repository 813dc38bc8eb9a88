package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const timeLayout = "2006-01-02 15:04:05"

var _ Interface = &SQLiteActivityStorage{}

type SQLiteActivityStorage struct {
	db *sql.DB
}

func resolveDBPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	if env := os.Getenv("DB_PATH"); env != "" {
		return env, nil
	}
	projectDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve project directory: %w", err)
	}
	defaultPath := filepath.Join(projectDir, "data", "activity.db")
	if err = os.MkdirAll(filepath.Dir(defaultPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	log.Printf("📂 DB_PATH not set, using default: %s", defaultPath)
	return defaultPath, nil
}

// NewSQLiteStorage opens (and if needed creates) the activity archive.
// An empty path falls back to DB_PATH, then to ./data/activity.db.
func NewSQLiteStorage(path string) (*SQLiteActivityStorage, error) {
	dbPath, err := resolveDBPath(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open SQLite DB at %s: %w", dbPath, err)
	}

	if _, err = db.Exec(`
        CREATE TABLE IF NOT EXISTS activity_log (
            id INTEGER NOT NULL,
            agent TEXT NOT NULL,
            operation TEXT NOT NULL,
            parameters TEXT NULL,
            word_count INTEGER NOT NULL DEFAULT 0,
            strictness INTEGER NOT NULL DEFAULT 0,
            status TEXT NOT NULL,
            created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (agent, id)
        );
        CREATE INDEX IF NOT EXISTS idx_agent ON activity_log (agent);
    `); err != nil {
		return nil, fmt.Errorf("create activity_log table: %w", err)
	}

	return &SQLiteActivityStorage{db: db}, nil
}

func (s *SQLiteActivityStorage) SaveEntry(ctx context.Context, record Record) error {
	var lastID int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(id), 0) FROM activity_log WHERE agent = ?`, record.Agent,
	).Scan(&lastID)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("retrieve last id for agent %s: %w", record.Agent, err)
	}

	record.ID = lastID + 1

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO activity_log (id, agent, operation, parameters, word_count, strictness, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, datetime(?))`,
		record.ID, record.Agent, record.Operation, record.Parameters,
		record.WordCount, record.Strictness, record.Status, record.CreatedAt.Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("save entry for agent %s: %w", record.Agent, err)
	}
	return nil
}

func (s *SQLiteActivityStorage) RecentByAgent(ctx context.Context, agent string, limit int) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, agent, operation, parameters, word_count, strictness, status, created_at
		 FROM activity_log
		 WHERE agent = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		agent, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt string
		if err = rows.Scan(&r.ID, &r.Agent, &r.Operation, &r.Parameters,
			&r.WordCount, &r.Strictness, &r.Status, &createdAt); err != nil {
			log.Printf("⚠️ Error scanning row for agent %s: %v", agent, err)
			continue
		}
		r.CreatedAt, _ = time.Parse(timeLayout, createdAt)
		records = append(records, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *SQLiteActivityStorage) Close() error {
	return s.db.Close()
}
