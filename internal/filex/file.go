// Package filex contains filesystem helpers for the client's local data.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and parents) with owner-only permissions if it does
// not exist yet and returns its absolute path. A relative dir is resolved
// against the working directory.
func EnsureDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("abs %s: %w", dir, err)
	}
	if err := os.MkdirAll(abs, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", abs, err)
	}
	return abs, nil
}

// ReadPhoto loads a captured photo from disk. Empty files are rejected since
// the service would store a broken image.
func ReadPhoto(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("photo %s is empty", path)
	}
	return data, nil
}
