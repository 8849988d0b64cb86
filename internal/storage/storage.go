// Package storage is the persistence collaborator for the text buffer.
// The buffer depends on the Saver interface only; file I/O lives here.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// ErrNoPath is returned when a save is requested for an unnamed buffer.
var ErrNoPath = errors.New("no file path specified for saving")

// Saver persists content and returns the resolved path it was written to.
// On error the caller must leave its own state untouched.
type Saver interface {
	Save(path string, content string) (string, error)
}

// FileSaver writes buffer content to the local filesystem.
type FileSaver struct{}

// Save writes content to path. The returned path is the identity the
// buffer should adopt after a successful save.
func (FileSaver) Save(path string, content string) (string, error) {
	if path == "" {
		return "", ErrNoPath
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("failed to write file '%s': %w", path, err)
	}
	return path, nil
}

// Load reads a file's content. A missing file is not an error: editing a
// new path starts from empty content.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to open file '%s': %w", path, err)
	}
	return string(data), nil
}
