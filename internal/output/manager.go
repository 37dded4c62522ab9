// internal/output/manager.go
package output

import (
	"fmt"
	"strings"

	"github.com/dverbeek/PairScraper/internal/config"
)

// Manager builds the writer for a configured output format.
type Manager struct {
	cfg config.OutputConfig
}

// NewManager creates an output manager.
func NewManager(cfg config.OutputConfig) (*Manager, error) {
	if cfg.Format == "" {
		return nil, fmt.Errorf("output format is required")
	}
	return &Manager{cfg: cfg}, nil
}

// NewWriter opens the writer for the configured format. The caller owns the
// writer and must Close it.
func (m *Manager) NewWriter() (Writer, error) {
	switch OutputFormat(strings.ToLower(m.cfg.Format)) {
	case FormatJSON:
		return NewJSONWriter(m.cfg.File)
	case FormatCSV:
		return NewCSVWriter(m.cfg.File, m.cfg.Encoding)
	case FormatSQLite:
		return NewSQLiteWriter(m.cfg)
	case FormatPostgres:
		return NewPostgresWriter(m.cfg)
	case FormatMySQL:
		return NewMySQLWriter(m.cfg)
	case FormatMongoDB:
		return NewMongoWriter(m.cfg)
	case FormatExcel:
		return NewExcelWriter(m.cfg.File, m.cfg.Sheet)
	case FormatStdout:
		return NewStdoutWriter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", m.cfg.Format)
	}
}
