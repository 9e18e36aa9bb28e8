package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	// import the SQLite driver to register it with the database/sql package.
	_ "modernc.org/sqlite"
)

// SQLiteStorage holds the database handle the game registry runs on when a
// file-backed store is configured instead of redis.
type SQLiteStorage struct {
	Connection *sql.DB
}

func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}

	if err = conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}

	return &SQLiteStorage{Connection: conn}, nil
}

// Init creates the games table. One row per (host, guest) pair; the record
// column carries the same JSON document the redis backend stores.
func (that *SQLiteStorage) Init(ctx context.Context) error {
	query := `CREATE TABLE IF NOT EXISTS games (
		host TEXT NOT NULL,
		guest TEXT NOT NULL,
		record TEXT NOT NULL,
		PRIMARY KEY (host, guest)
	)`

	if _, err := that.Connection.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("can't create table: %w", err)
	}

	return nil
}

func (that *SQLiteStorage) Close() error {
	if that == nil || that.Connection == nil {
		return nil
	}

	return that.Connection.Close()
}
