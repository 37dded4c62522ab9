// internal/output/mysql.go
package output

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/dverbeek/PairScraper/internal/config"
)

// MySQLWriter appends rows to a MySQL table.
type MySQLWriter struct {
	sink *sqlSink
}

// NewMySQLWriter creates a MySQL writer from the output DSN.
func NewMySQLWriter(cfg config.OutputConfig) (*MySQLWriter, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("MySQL DSN is required")
	}

	table := cfg.Table
	if table == "" {
		table = "rows"
	}

	db, err := sql.Open("mysql", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	return &MySQLWriter{
		sink: &sqlSink{
			db:          db,
			table:       table,
			quote:       backtickQuote,
			placeholder: questionPlaceholder,
		},
	}, nil
}

// Write implements Writer.
func (w *MySQLWriter) Write(columns []string, rows [][]string) error {
	return w.sink.insert(columns, rows)
}

// Close closes the database connection.
func (w *MySQLWriter) Close() error {
	return w.sink.close()
}
