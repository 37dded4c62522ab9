// internal/config/config.go
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dverbeek/PairScraper/internal/extract"
)

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(filename string) (*ScrapeConfig, error) {
	if filename == "" {
		return nil, fmt.Errorf("configuration filename cannot be empty")
	}

	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", filename)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %v", err)
	}

	return LoadFromBytes(data)
}

// LoadFromBytes loads configuration from YAML bytes
func LoadFromBytes(data []byte) (*ScrapeConfig, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("configuration data cannot be empty")
	}

	// Substitute environment variables
	expanded := os.ExpandEnv(string(data))

	var config ScrapeConfig
	if err := yaml.Unmarshal([]byte(expanded), &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %v", err)
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	return &config, nil
}

// LoadFromReader loads configuration from an io.Reader
func LoadFromReader(reader io.Reader) (*ScrapeConfig, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader cannot be nil")
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read from reader: %v", err)
	}

	return LoadFromBytes(data)
}

// SaveToWriter saves configuration as YAML to an io.Writer
func SaveToWriter(config *ScrapeConfig, writer io.Writer) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}
	if writer == nil {
		return fmt.Errorf("writer cannot be nil")
	}

	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %v", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration to YAML: %v", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write configuration: %v", err)
	}

	return nil
}

// applyDefaults applies default values to the configuration
func applyDefaults(config *ScrapeConfig) {
	if config.Request.Timeout == 0 {
		config.Request.Timeout = 30 * time.Second
	}

	if config.Request.RetryAttempts == 0 {
		config.Request.RetryAttempts = 3
	}

	if config.Output.Format == "" {
		config.Output.Format = "json"
	}

	if config.LogLevel == "" {
		config.LogLevel = "info"
	}

	if config.Polling.RequestsPerSecond == 0 {
		config.Polling.RequestsPerSecond = 1.0
	}

	if config.Polling.Burst == 0 {
		config.Polling.Burst = 1
	}

	if config.Metrics.Enabled && config.Metrics.Address == "" {
		config.Metrics.Address = ":9090"
	}
}

// GenerateTemplate generates a starter configuration of the given type
func GenerateTemplate(templateType string) ScrapeConfig {
	switch templateType {
	case "listing":
		return generateListingTemplate()
	case "live":
		return generateLiveTemplate()
	default:
		return generateBasicTemplate()
	}
}

func generateBasicTemplate() ScrapeConfig {
	return ScrapeConfig{
		Name:        "basic-scrape",
		Version:     "1.0",
		Description: "Extract aligned selector-pair columns from a static page",
		Target: TargetConfig{
			URL: "https://example.com/catalog",
		},
		SelectorPairs: []extract.SelectorPair{
			{Label: "title", Selector: ".item .title"},
			{Label: "price", Selector: ".item .price"},
		},
		Output: OutputConfig{
			Format: "csv",
			File:   "rows.csv",
		},
	}
}

func generateListingTemplate() ScrapeConfig {
	cfg := generateBasicTemplate()
	cfg.Name = "listing-scrape"
	cfg.SelectorPairs = append(cfg.SelectorPairs,
		extract.SelectorPair{Label: "link", Selector: ".item a", Property: "href"},
	)
	cfg.Polling = PollingConfig{
		Interval:  30 * time.Second,
		MaxPasses: 10,
	}
	return cfg
}

func generateLiveTemplate() ScrapeConfig {
	cfg := generateListingTemplate()
	cfg.Name = "live-scrape"
	cfg.Description = "Poll a dynamic page through a headless browser"
	cfg.DOMRead = true
	return cfg
}
