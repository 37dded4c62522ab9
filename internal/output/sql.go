// internal/output/sql.go
package output

import (
	"database/sql"
	"fmt"
	"strings"
)

// sqlSink is the shared machinery behind the SQLite, PostgreSQL, and MySQL
// writers: create the table on first use with one TEXT column per selector
// pair, then batch-insert each pass's rows in a transaction.
type sqlSink struct {
	db           *sql.DB
	table        string
	quote        func(string) string
	placeholder  func(n int) string
	tableCreated bool
	columns      []string
}

func (s *sqlSink) ensureTable(columns []string) error {
	if s.tableCreated {
		return nil
	}

	s.columns = sanitizeColumns(columns)
	defs := make([]string, len(s.columns))
	for i, col := range s.columns {
		defs[i] = fmt.Sprintf("%s TEXT", s.quote(col))
	}

	query := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		s.quote(s.table), strings.Join(defs, ", "))
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}

	s.tableCreated = true
	return nil
}

func (s *sqlSink) insert(columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	if err := s.ensureTable(columns); err != nil {
		return err
	}

	quoted := make([]string, len(s.columns))
	placeholders := make([]string, len(s.columns))
	for i, col := range s.columns {
		quoted[i] = s.quote(col)
		placeholders[i] = s.placeholder(i + 1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.quote(s.table), strings.Join(quoted, ", "), strings.Join(placeholders, ", "))

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		args := make([]interface{}, len(s.columns))
		for i := range s.columns {
			if i < len(row) {
				args[i] = row[i]
			} else {
				args[i] = ""
			}
		}
		if _, err := stmt.Exec(args...); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit insert: %w", err)
	}
	return nil
}

func (s *sqlSink) close() error {
	return s.db.Close()
}

func questionPlaceholder(int) string { return "?" }

func dollarPlaceholder(n int) string { return fmt.Sprintf("$%d", n) }

func backtickQuote(name string) string { return "`" + name + "`" }

func doubleQuote(name string) string { return `"` + name + `"` }
