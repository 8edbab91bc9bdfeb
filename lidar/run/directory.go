// Package run manages the output directories of simulator runs.
package run

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/edaniels/golog"
)

const (
	DefaultRunsDir = "runs"
	LatestSymlink  = "latest"
)

type Dir struct {
	Path      string    // Absolute path to run directory
	ID        string    // Unique run identifier
	Timestamp time.Time // When the run was created
}

// CreateDirectory creates a new run directory under base and points base/latest at it.
// An empty base means DefaultRunsDir.
func CreateDirectory(base string, logger golog.Logger) (*Dir, error) {
	if base == "" {
		base = DefaultRunsDir
	}
	if err := os.MkdirAll(base, 0755); err != nil {
		return nil, fmt.Errorf("creating runs directory: %w", err)
	}

	now := time.Now().UTC()
	id := GenerateID(now)

	absPath, err := filepath.Abs(filepath.Join(base, id))
	if err != nil {
		return nil, fmt.Errorf("getting absolute path: %w", err)
	}

	if err := os.Mkdir(absPath, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latestPath := filepath.Join(base, LatestSymlink)
	_ = os.Remove(latestPath)
	if err := os.Symlink(id, latestPath); err != nil {
		// Not fatal: the run itself is complete without the link.
		logger.Warnw("failed to create latest symlink", "path", latestPath, "error", err)
	}

	return &Dir{
		Path:      absPath,
		ID:        id,
		Timestamp: now,
	}, nil
}

// FilePath returns the absolute path for a file in the run directory
func (d *Dir) FilePath(filename string) string {
	return filepath.Join(d.Path, filename)
}

// CopyFile copies srcPath into the run directory, keeping its base name
func (d *Dir) CopyFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	if err := os.WriteFile(d.FilePath(filepath.Base(srcPath)), content, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(srcPath), err)
	}

	return nil
}
