// internal/output/types.go

// Package output writes extracted rows to the configured sink. Writers are
// incremental: each extraction pass hands over only its newly seen rows, and
// the writer appends them, so re-emitted duplicates never reach a sink.
package output

import (
	"regexp"
	"strconv"
	"strings"
)

// Writer is a sink for extracted rows. Columns are stable across calls for
// one writer's lifetime (they come from the immutable selector-pair set).
type Writer interface {
	// Write appends rows. Each row has exactly one value per column.
	Write(columns []string, rows [][]string) error

	// Close flushes and releases the sink.
	Close() error
}

// OutputFormat identifies a sink type.
type OutputFormat string

const (
	FormatJSON     OutputFormat = "json"
	FormatCSV      OutputFormat = "csv"
	FormatSQLite   OutputFormat = "sqlite"
	FormatPostgres OutputFormat = "postgres"
	FormatMySQL    OutputFormat = "mysql"
	FormatMongoDB  OutputFormat = "mongodb"
	FormatExcel    OutputFormat = "excel"
	FormatStdout   OutputFormat = "stdout"
)

var columnSanitizer = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// sanitizeColumn converts an arbitrary column label (often a raw CSS
// selector) into a safe SQL identifier.
func sanitizeColumn(name string) string {
	cleaned := columnSanitizer.ReplaceAllString(strings.TrimSpace(name), "_")
	cleaned = strings.Trim(cleaned, "_")
	if cleaned == "" {
		cleaned = "col"
	}
	if cleaned[0] >= '0' && cleaned[0] <= '9' {
		cleaned = "c_" + cleaned
	}
	return strings.ToLower(cleaned)
}

// sanitizeColumns sanitizes a full column list, suffixing duplicates so the
// result is unique.
func sanitizeColumns(columns []string) []string {
	seen := make(map[string]int, len(columns))
	result := make([]string, len(columns))
	for i, col := range columns {
		name := sanitizeColumn(col)
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = name + "_" + strconv.Itoa(n+1)
		} else {
			seen[name] = 1
		}
		result[i] = name
	}
	return result
}
