// internal/config/types.go

// Package config provides configuration types and loading for PairScraper.
// A ScrapeConfig describes one target page, the selector pairs to extract
// from it, how often to re-scrape it, and where the extracted rows go.
package config

import (
	"time"

	"github.com/dverbeek/PairScraper/internal/dom"
	"github.com/dverbeek/PairScraper/internal/extract"
)

// ScrapeConfig is the main configuration for one scraping target.
type ScrapeConfig struct {
	// Name identifies this configuration
	Name string `yaml:"name" json:"name"`

	// Version of the configuration format
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Description provides human-readable information about this config
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// Target defines the page to scrape
	Target TargetConfig `yaml:"target" json:"target"`

	// DOMRead selects the live browser tree instead of a fetched snapshot.
	// It dispatches which tree provider the runner builds; the extraction
	// algorithms never consult it.
	DOMRead bool `yaml:"dom_read" json:"dom_read"`

	// SelectorPairs are the extraction rules, one column per pair
	SelectorPairs []extract.SelectorPair `yaml:"selector_pairs" json:"selector_pairs"`

	// Polling controls repeated passes against a mutating page
	Polling PollingConfig `yaml:"polling,omitempty" json:"polling,omitempty"`

	// Output configuration
	Output OutputConfig `yaml:"output" json:"output"`

	// Request configuration for the static fetch path
	Request RequestConfig `yaml:"request,omitempty" json:"request,omitempty"`

	// Browser options for the live-tree path
	Browser *dom.BrowserConfig `yaml:"browser,omitempty" json:"browser,omitempty"`

	// Metrics exposes Prometheus metrics when enabled
	Metrics MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty"`

	// LogLevel controls logger verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level,omitempty" json:"log_level,omitempty"`
}

// TargetConfig defines the target page.
type TargetConfig struct {
	// URL is the page to scrape
	URL string `yaml:"url" json:"url"`

	// Headers to send with requests
	Headers map[string]string `yaml:"headers,omitempty" json:"headers,omitempty"`

	// Cookies to send with requests
	Cookies map[string]string `yaml:"cookies,omitempty" json:"cookies,omitempty"`
}

// PollingConfig controls repeated extraction passes against one target.
type PollingConfig struct {
	// Interval between passes; zero means a single pass
	Interval time.Duration `yaml:"interval" json:"interval"`

	// MaxPasses bounds the number of passes; zero means unbounded
	MaxPasses int `yaml:"max_passes" json:"max_passes"`

	// RequestsPerSecond rate-limits passes across targets
	RequestsPerSecond float64 `yaml:"requests_per_second,omitempty" json:"requests_per_second,omitempty"`

	// Burst allows temporary exceeding of the rate
	Burst int `yaml:"burst,omitempty" json:"burst,omitempty"`

	// StopOnIdle stops polling after this many consecutive passes that
	// produced no new rows; zero disables the check
	StopOnIdle int `yaml:"stop_on_idle,omitempty" json:"stop_on_idle,omitempty"`
}

// OutputConfig defines where extracted rows are written.
type OutputConfig struct {
	// Format of the output (csv, json, sqlite, postgres, mysql, mongodb, excel)
	Format string `yaml:"format" json:"format"`

	// File path for file-based formats
	File string `yaml:"file,omitempty" json:"file,omitempty"`

	// Encoding for text files (e.g. utf-8, windows-1251)
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`

	// DSN for database-backed formats
	DSN string `yaml:"dsn,omitempty" json:"dsn,omitempty"`

	// Table name for SQL databases
	Table string `yaml:"table,omitempty" json:"table,omitempty"`

	// Database and Collection for MongoDB
	Database   string `yaml:"database,omitempty" json:"database,omitempty"`
	Collection string `yaml:"collection,omitempty" json:"collection,omitempty"`

	// Sheet name for Excel output
	Sheet string `yaml:"sheet,omitempty" json:"sheet,omitempty"`
}

// RequestConfig defines HTTP settings for the static fetch path.
type RequestConfig struct {
	// Timeout for requests
	Timeout time.Duration `yaml:"timeout" json:"timeout"`

	// UserAgents rotated across requests
	UserAgents []string `yaml:"user_agents,omitempty" json:"user_agents,omitempty"`

	// RetryAttempts on transient failures
	RetryAttempts int `yaml:"retry_attempts,omitempty" json:"retry_attempts,omitempty"`
}

// MetricsConfig defines the monitoring endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
}
