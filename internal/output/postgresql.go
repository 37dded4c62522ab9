// internal/output/postgresql.go
package output

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/dverbeek/PairScraper/internal/config"
)

// PostgresWriter appends rows to a PostgreSQL table.
type PostgresWriter struct {
	sink *sqlSink
}

// NewPostgresWriter creates a PostgreSQL writer from the output DSN.
func NewPostgresWriter(cfg config.OutputConfig) (*PostgresWriter, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("PostgreSQL DSN is required")
	}

	table := cfg.Table
	if table == "" {
		table = "rows"
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return &PostgresWriter{
		sink: &sqlSink{
			db:          db,
			table:       table,
			quote:       doubleQuote,
			placeholder: dollarPlaceholder,
		},
	}, nil
}

// Write implements Writer.
func (w *PostgresWriter) Write(columns []string, rows [][]string) error {
	return w.sink.insert(columns, rows)
}

// Close closes the database connection.
func (w *PostgresWriter) Close() error {
	return w.sink.close()
}
