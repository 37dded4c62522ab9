// internal/output/csv.go
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// CSVWriter appends rows to a CSV file. The header is written once, on the
// first Write. Non-UTF-8 encodings are produced through a transforming
// writer.
type CSVWriter struct {
	file        *os.File
	writer      *csv.Writer
	wroteHeader bool
}

// NewCSVWriter creates a CSV writer for the given file and text encoding.
// An empty encoding means UTF-8.
func NewCSVWriter(filename, encodingName string) (*CSVWriter, error) {
	if filename == "" {
		return nil, fmt.Errorf("CSV output file is required")
	}

	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create CSV file: %w", err)
	}

	var out io.Writer = file
	if enc, err := lookupEncoding(encodingName); err != nil {
		file.Close()
		return nil, err
	} else if enc != nil {
		out = transform.NewWriter(file, enc.NewEncoder())
	}

	return &CSVWriter{
		file:   file,
		writer: csv.NewWriter(out),
	}, nil
}

// Write implements Writer.
func (w *CSVWriter) Write(columns []string, rows [][]string) error {
	if !w.wroteHeader {
		if err := w.writer.Write(columns); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		w.wroteHeader = true
	}

	for _, row := range rows {
		if err := w.writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.writer.Flush()
	return w.writer.Error()
}

// Close flushes and closes the underlying file.
func (w *CSVWriter) Close() error {
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}

// lookupEncoding resolves a configured encoding name. Nil means UTF-8
// passthrough.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1, nil
	default:
		return nil, fmt.Errorf("unsupported output encoding: %s", name)
	}
}
