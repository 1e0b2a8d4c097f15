// Package file provides a TOML-backed preference store.
package file

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/kiosklabs/ragchat-cli/internal/core/ports/driven"
)

// Ensure PrefStore implements the interface.
var _ driven.PrefStore = (*PrefStore)(nil)

// PrefStore persists user preferences (e.g. the theme choice) in a TOML
// file. Every Set writes through immediately.
type PrefStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// NewPrefStore creates a TOML preference store.
// If configDir is empty, defaults to ~/.ragchat/config.toml.
func NewPrefStore(configDir string) (*PrefStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".ragchat")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &PrefStore{
		filePath: filepath.Join(configDir, "config.toml"),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return s, nil
}

// GetString retrieves a string preference, or "" when absent.
func (s *PrefStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	if !ok {
		return ""
	}
	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// Set stores a preference value and persists immediately.
func (s *PrefStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// save writes preferences to the TOML file (caller must hold lock).
func (s *PrefStore) save() error {
	data, err := toml.Marshal(s.data)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads preferences from the TOML file. A missing file is fine:
// the store starts empty.
func (s *PrefStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}
	if loaded == nil {
		loaded = make(map[string]any)
	}
	s.data = loaded
	return nil
}

// Path returns the preference file path.
func (s *PrefStore) Path() string {
	return s.filePath
}
