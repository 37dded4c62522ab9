// internal/output/output_test.go
package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/dverbeek/PairScraper/internal/config"
)

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")

	writer, err := NewCSVWriter(path, "")
	if err != nil {
		t.Fatalf("Failed to create CSV writer: %v", err)
	}

	columns := []string{"title", "price"}
	if err := writer.Write(columns, [][]string{{"T1", "P1"}, {"T2", ""}}); err != nil {
		t.Fatalf("First write failed: %v", err)
	}
	// Second pass appends without repeating the header.
	if err := writer.Write(columns, [][]string{{"T3", "P3"}}); err != nil {
		t.Fatalf("Second write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header + 3 rows, got %d lines: %q", len(lines), lines)
	}
	if lines[0] != "title,price" {
		t.Fatalf("Expected header 'title,price', got %q", lines[0])
	}
	if lines[2] != "T2," {
		t.Fatalf("Expected padded row 'T2,', got %q", lines[2])
	}
}

func TestCSVWriter_UnsupportedEncoding(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.csv")
	if _, err := NewCSVWriter(path, "ebcdic"); err == nil {
		t.Fatal("Expected error for unsupported encoding")
	}
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.jsonl")

	writer, err := NewJSONWriter(path)
	if err != nil {
		t.Fatalf("Failed to create JSON writer: %v", err)
	}

	columns := []string{"name", "link"}
	if err := writer.Write(columns, [][]string{{"A", "/a"}, {"B", "/b"}}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("Expected 2 JSON lines, got %d", len(lines))
	}

	var record map[string]string
	if err := json.Unmarshal([]byte(lines[1]), &record); err != nil {
		t.Fatalf("Failed to parse JSON line: %v", err)
	}
	if record["name"] != "B" || record["link"] != "/b" {
		t.Fatalf("Unexpected record: %v", record)
	}
}

func TestManager_NewWriter(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name      string
		cfg       config.OutputConfig
		expectErr bool
	}{
		{
			name: "csv",
			cfg:  config.OutputConfig{Format: "csv", File: filepath.Join(dir, "a.csv")},
		},
		{
			name: "json",
			cfg:  config.OutputConfig{Format: "json", File: filepath.Join(dir, "a.jsonl")},
		},
		{
			name: "stdout",
			cfg:  config.OutputConfig{Format: "stdout"},
		},
		{
			name:      "unsupported",
			cfg:       config.OutputConfig{Format: "parquet"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager, err := NewManager(tt.cfg)
			if err != nil {
				t.Fatalf("NewManager failed: %v", err)
			}

			writer, err := manager.NewWriter()
			if tt.expectErr {
				if err == nil {
					t.Fatal("Expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewWriter failed: %v", err)
			}
			writer.Close()
		})
	}
}

func TestSanitizeColumns(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "selector labels become identifiers",
			input:    []string{".item .title", ".item a[href]"},
			expected: []string{"item_title", "item_a_href"},
		},
		{
			name:     "duplicates get suffixed",
			input:    []string{"name", "name"},
			expected: []string{"name", "name_2"},
		},
		{
			name:     "leading digit is prefixed",
			input:    []string{"1st"},
			expected: []string{"c_1st"},
		},
		{
			name:     "blank falls back",
			input:    []string{"  "},
			expected: []string{"col"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizeColumns(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
