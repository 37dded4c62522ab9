// internal/config/validation.go
package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a detailed validation error
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

// ValidationResult holds validation results
type ValidationResult struct {
	Valid    bool              `json:"valid"`
	Errors   []ValidationError `json:"errors"`
	Warnings []string          `json:"warnings"`
}

// validOutputFormats enumerates the supported output sinks
var validOutputFormats = map[string]bool{
	"json": true, "csv": true, "sqlite": true, "postgres": true,
	"mysql": true, "mongodb": true, "excel": true, "stdout": true,
}

// Validate checks the configuration and returns an aggregate error when any
// check fails. Selector-pair errors are caught here, at load time, so the
// extraction engine never sees an empty selector.
func (sc *ScrapeConfig) Validate() error {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]ValidationError, 0),
		Warnings: make([]string, 0),
	}

	sc.validateBasicFields(result)
	sc.validateURL(result)
	sc.validateSelectorPairs(result)
	sc.validateOutput(result)

	if len(result.Errors) > 0 {
		return sc.formatValidationError(result)
	}

	return nil
}

// validateBasicFields checks required basic fields
func (sc *ScrapeConfig) validateBasicFields(result *ValidationResult) {
	if sc.Name == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "name",
			Message: "Scrape name is required",
		})
	}

	if sc.Target.URL == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target.url",
			Message: "Target URL is required",
		})
	}

	if len(sc.SelectorPairs) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "selector_pairs",
			Value:   "[]",
			Message: "At least one selector pair must be configured",
		})
	}
}

// validateURL checks the target URL format
func (sc *ScrapeConfig) validateURL(result *ValidationResult) {
	if sc.Target.URL == "" {
		return
	}

	parsed, err := url.Parse(sc.Target.URL)
	if err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target.url",
			Value:   sc.Target.URL,
			Message: fmt.Sprintf("Invalid URL format: %s", err.Error()),
		})
		return
	}

	if parsed.Scheme == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target.url",
			Value:   sc.Target.URL,
			Message: "URL must include protocol (http:// or https://)",
		})
	}

	if parsed.Host == "" {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "target.url",
			Value:   sc.Target.URL,
			Message: "URL must include hostname",
		})
	}

	if parsed.Scheme == "http" {
		result.Warnings = append(result.Warnings,
			"Using HTTP instead of HTTPS may cause security issues")
	}
}

// validateSelectorPairs checks every configured pair
func (sc *ScrapeConfig) validateSelectorPairs(result *ValidationResult) {
	for i, pair := range sc.SelectorPairs {
		if strings.TrimSpace(pair.Selector) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   fmt.Sprintf("selector_pairs[%d].content_selector", i),
				Message: "Content selector is required and cannot be empty",
			})
		}
	}
}

// validateOutput checks the output configuration
func (sc *ScrapeConfig) validateOutput(result *ValidationResult) {
	format := strings.ToLower(sc.Output.Format)
	if format != "" && !validOutputFormats[format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Value:   sc.Output.Format,
			Message: "Unsupported output format",
		})
		return
	}

	switch format {
	case "csv", "json", "excel", "sqlite":
		if sc.Output.File == "" && sc.Output.DSN == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "output.file",
				Message: fmt.Sprintf("Output file is required for %s format", format),
			})
		}
	case "postgres", "mysql", "mongodb":
		if sc.Output.DSN == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   "output.dsn",
				Message: fmt.Sprintf("Connection DSN is required for %s format", format),
			})
		}
	}
}

// formatValidationError folds the collected errors into one error value
func (sc *ScrapeConfig) formatValidationError(result *ValidationResult) error {
	messages := make([]string, 0, len(result.Errors))
	for _, e := range result.Errors {
		if e.Value != "" {
			messages = append(messages, fmt.Sprintf("%s (%s): %s", e.Field, e.Value, e.Message))
		} else {
			messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
		}
	}
	return fmt.Errorf("configuration validation failed: %s", strings.Join(messages, "; "))
}
