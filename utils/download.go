package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// SaveExportFile writes export content under dir/filename, creating the
// directory if needed, and returns the full path. This is the local
// equivalent of handing the browser a file download.
func SaveExportFile(dir, filename string, data []byte) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory %s: %w", dir, err)
	}
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return path, nil
}
