// internal/output/sqlite.go
package output

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/dverbeek/PairScraper/internal/config"
)

// SQLiteWriter appends rows to a SQLite table.
type SQLiteWriter struct {
	sink *sqlSink
}

// NewSQLiteWriter creates a SQLite writer. The database path comes from the
// DSN when set, otherwise from the output file setting.
func NewSQLiteWriter(cfg config.OutputConfig) (*SQLiteWriter, error) {
	dbPath := cfg.DSN
	if dbPath == "" {
		dbPath = cfg.File
	}
	return newSQLiteWriter(dbPath, cfg.Table)
}

func newSQLiteWriter(dbPath, table string) (*SQLiteWriter, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("SQLite database path is required")
	}
	if table == "" {
		table = "rows"
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	// SQLite works best with a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return &SQLiteWriter{
		sink: &sqlSink{
			db:          db,
			table:       table,
			quote:       doubleQuote,
			placeholder: questionPlaceholder,
		},
	}, nil
}

// Write implements Writer.
func (w *SQLiteWriter) Write(columns []string, rows [][]string) error {
	return w.sink.insert(columns, rows)
}

// Close closes the database connection.
func (w *SQLiteWriter) Close() error {
	return w.sink.close()
}
