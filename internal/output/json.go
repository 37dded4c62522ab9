// internal/output/json.go
package output

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONWriter appends rows as JSON Lines: one object per row, keyed by column
// name. The line-oriented form lets repeated passes append without rewriting
// previously emitted rows.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter creates a JSON Lines writer for the given file.
func NewJSONWriter(filename string) (*JSONWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("JSON output file is required")
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create JSON file: %w", err)
	}

	return &JSONWriter{
		file:    file,
		encoder: json.NewEncoder(file),
	}, nil
}

// Write implements Writer.
func (w *JSONWriter) Write(columns []string, rows [][]string) error {
	for _, row := range rows {
		record := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		if err := w.encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode JSON row: %w", err)
		}
	}
	return nil
}

// Close closes the underlying file.
func (w *JSONWriter) Close() error {
	return w.file.Close()
}

// StdoutWriter prints rows as JSON Lines to standard output, mainly for
// ad-hoc runs and piping into other tools.
type StdoutWriter struct {
	encoder *json.Encoder
}

// NewStdoutWriter creates a stdout writer.
func NewStdoutWriter() *StdoutWriter {
	return &StdoutWriter{encoder: json.NewEncoder(os.Stdout)}
}

// Write implements Writer.
func (w *StdoutWriter) Write(columns []string, rows [][]string) error {
	for _, row := range rows {
		record := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		if err := w.encoder.Encode(record); err != nil {
			return err
		}
	}
	return nil
}

// Close implements Writer.
func (w *StdoutWriter) Close() error { return nil }
