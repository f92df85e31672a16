package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains resolved absolute paths for the application.
// This is the single source of truth for file locations: the data directory
// holding the six dataset files, the reports output directory, and logs.
type Paths struct {
	DataDir    string
	ReportsDir string
	LogsDir    string
}

// NewPaths resolves the configured paths to absolute form and creates the
// writable directories. The data directory is not created: it must already
// exist and contain the dataset files.
func NewPaths(cfg PathsConfig) (*Paths, error) {
	dataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data dir: %w", err)
	}
	reportsDir, err := filepath.Abs(cfg.ReportsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve reports dir: %w", err)
	}
	logsDir, err := filepath.Abs(cfg.LogsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve logs dir: %w", err)
	}

	for _, dir := range []string{reportsDir, logsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return &Paths{
		DataDir:    dataDir,
		ReportsDir: reportsDir,
		LogsDir:    logsDir,
	}, nil
}

// ReportFile returns the path of a report file inside the reports directory.
func (p *Paths) ReportFile(name string) string {
	return filepath.Join(p.ReportsDir, name)
}
