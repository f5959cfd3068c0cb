package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SessionFile holds the persisted session bookkeeping (read/write). The CLI
// runs one process per command, so the last-synced timestamp must survive
// between invocations for conflict detection to have a baseline.
type SessionFile struct {
	FileID       string    `yaml:"file_id,omitempty"`
	FileName     string    `yaml:"file_name,omitempty"`
	LastSyncedAt time.Time `yaml:"last_synced_at,omitempty"`
}

// IsOpen reports whether a file is currently open.
func (s *SessionFile) IsOpen() bool {
	return s.FileID != ""
}

// Clear resets the bookkeeping to the closed state.
func (s *SessionFile) Clear() {
	s.FileID = ""
	s.FileName = ""
	s.LastSyncedAt = time.Time{}
}

// LoadSession loads session bookkeeping from the .declog directory. A
// missing file yields an empty (closed) session.
func LoadSession(basePath string) (*SessionFile, error) {
	data, err := os.ReadFile(SessionFilePath(basePath))
	if os.IsNotExist(err) {
		return &SessionFile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading session file: %w", err)
	}

	var s SessionFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing session file: %w", err)
	}
	return &s, nil
}

// Save writes the session bookkeeping to the session file.
func (s *SessionFile) Save(basePath string) error {
	configDir := filepath.Join(basePath, DefaultConfigDir)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}

	if err := os.WriteFile(SessionFilePath(basePath), data, 0600); err != nil {
		return fmt.Errorf("writing session file: %w", err)
	}

	return nil
}
