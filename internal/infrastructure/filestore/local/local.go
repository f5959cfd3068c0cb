// Package local reads and writes journal documents on the local filesystem.
// Imported bytes go through the same normalizer as a remote read; exports
// use the same canonical encoding as a remote write.
package local

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/seanwalsh/declog/internal/domain/entities"
	"github.com/seanwalsh/declog/internal/domain/services"
)

// ReadBytes loads raw document bytes from disk.
func ReadBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteDocument serializes a document in the canonical persisted format and
// writes it to disk, creating parent directories as needed.
func WriteDocument(path string, doc *entities.Document) error {
	data, err := services.Serialize(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
