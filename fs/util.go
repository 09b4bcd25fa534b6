package fs

import (
	"fmt"
	"path/filepath"
)

// GetAbs returns the absolute, cleaned form of path.
func GetAbs(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path %q: %w", path, err)
	}
	return abs, nil
}
