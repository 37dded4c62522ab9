// internal/config/config_test.go
package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

const validYAML = `
name: catalog-scrape
target:
  url: https://example.com/catalog
dom_read: false
selector_pairs:
  - label: title
    content_selector: ".item .title"
  - content_selector: ".item a"
    content_property: href
polling:
  interval: 30s
  max_passes: 5
output:
  format: csv
  file: rows.csv
`

func TestLoadFromBytes_Valid(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(validYAML))
	if err != nil {
		t.Fatalf("Failed to load valid config: %v", err)
	}

	if cfg.Name != "catalog-scrape" {
		t.Fatalf("Expected name 'catalog-scrape', got %q", cfg.Name)
	}

	if len(cfg.SelectorPairs) != 2 {
		t.Fatalf("Expected 2 selector pairs, got %d", len(cfg.SelectorPairs))
	}

	if cfg.SelectorPairs[0].Label != "title" {
		t.Fatalf("Expected first pair label 'title', got %q", cfg.SelectorPairs[0].Label)
	}

	if cfg.SelectorPairs[1].Property != "href" {
		t.Fatalf("Expected second pair property 'href', got %q", cfg.SelectorPairs[1].Property)
	}

	if cfg.Polling.Interval != 30*time.Second {
		t.Fatalf("Expected 30s polling interval, got %v", cfg.Polling.Interval)
	}
}

func TestLoadFromBytes_AppliesDefaults(t *testing.T) {
	cfg, err := LoadFromBytes([]byte(validYAML))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Request.Timeout != 30*time.Second {
		t.Fatalf("Expected default request timeout 30s, got %v", cfg.Request.Timeout)
	}

	if cfg.LogLevel != "info" {
		t.Fatalf("Expected default log level 'info', got %q", cfg.LogLevel)
	}

	if cfg.Polling.RequestsPerSecond != 1.0 {
		t.Fatalf("Expected default rate 1.0, got %v", cfg.Polling.RequestsPerSecond)
	}
}

func TestLoadFromBytes_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			name:    "empty data",
			yaml:    "",
			errPart: "cannot be empty",
		},
		{
			name: "no selector pairs",
			yaml: `
name: x
target:
  url: https://example.com
selector_pairs: []
output:
  format: json
  file: out.json
`,
			errPart: "selector pair",
		},
		{
			name: "empty content selector",
			yaml: `
name: x
target:
  url: https://example.com
selector_pairs:
  - label: broken
    content_selector: "  "
output:
  format: json
  file: out.json
`,
			errPart: "content_selector",
		},
		{
			name: "missing URL",
			yaml: `
name: x
selector_pairs:
  - content_selector: ".a"
output:
  format: json
  file: out.json
`,
			errPart: "url",
		},
		{
			name: "unsupported output format",
			yaml: `
name: x
target:
  url: https://example.com
selector_pairs:
  - content_selector: ".a"
output:
  format: parquet
`,
			errPart: "format",
		},
		{
			name: "database format without DSN",
			yaml: `
name: x
target:
  url: https://example.com
selector_pairs:
  - content_selector: ".a"
output:
  format: postgres
`,
			errPart: "dsn",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromBytes([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Expected error but got none")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tt.errPart) {
				t.Fatalf("Expected error mentioning %q, got: %v", tt.errPart, err)
			}
		})
	}
}

func TestLoadFromBytes_ExpandsEnvironmentVariables(t *testing.T) {
	os.Setenv("PAIRSCRAPER_TEST_URL", "https://example.com/env")
	defer os.Unsetenv("PAIRSCRAPER_TEST_URL")

	yaml := `
name: env-scrape
target:
  url: ${PAIRSCRAPER_TEST_URL}
selector_pairs:
  - content_selector: ".a"
output:
  format: json
  file: out.json
`

	cfg, err := LoadFromBytes([]byte(yaml))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Target.URL != "https://example.com/env" {
		t.Fatalf("Expected env-expanded URL, got %q", cfg.Target.URL)
	}
}

func TestLoadFromFile_NotFound(t *testing.T) {
	_, err := LoadFromFile("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("Expected 'not found' error, got: %v", err)
	}
}

func TestGenerateTemplate(t *testing.T) {
	tests := []struct {
		templateType string
		domRead      bool
		minPairs     int
	}{
		{"basic", false, 2},
		{"listing", false, 3},
		{"live", true, 3},
		{"unknown", false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.templateType, func(t *testing.T) {
			cfg := GenerateTemplate(tt.templateType)

			if cfg.DOMRead != tt.domRead {
				t.Fatalf("Expected dom_read=%v, got %v", tt.domRead, cfg.DOMRead)
			}
			if len(cfg.SelectorPairs) < tt.minPairs {
				t.Fatalf("Expected at least %d pairs, got %d", tt.minPairs, len(cfg.SelectorPairs))
			}
		})
	}
}

func TestSaveToWriter_RoundTrip(t *testing.T) {
	original, err := LoadFromBytes([]byte(validYAML))
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var buf strings.Builder
	if err := SaveToWriter(original, &buf); err != nil {
		t.Fatalf("Failed to save config: %v", err)
	}

	reloaded, err := LoadFromBytes([]byte(buf.String()))
	if err != nil {
		t.Fatalf("Failed to reload saved config: %v", err)
	}

	if reloaded.Name != original.Name {
		t.Fatalf("Round trip changed name: %q != %q", reloaded.Name, original.Name)
	}
	if len(reloaded.SelectorPairs) != len(original.SelectorPairs) {
		t.Fatalf("Round trip changed pair count: %d != %d",
			len(reloaded.SelectorPairs), len(original.SelectorPairs))
	}
}
