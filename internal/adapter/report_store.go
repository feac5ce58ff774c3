package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	m "gooze.dev/pkg/mutaprompt/internal/model"
)

// ReportStore persists rendered reports.
type ReportStore interface {
	// SaveReport writes content to path, creating parent directories.
	SaveReport(ctx context.Context, path m.Path, content []byte) error
}

// LocalReportStore writes reports to the local disk.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes content to path.
func (s *LocalReportStore) SaveReport(ctx context.Context, path m.Path, content []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create report directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(string(path), content, 0o600); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}

	return nil
}
