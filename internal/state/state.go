// Package state persists small user preferences between sessions.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	configDirName = ".config"
	appDirName    = "termfolio"
	stateFileName = "state.json"
)

// DefaultDir returns the default state directory (~/.config/termfolio).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, configDirName, appDirName), nil
}

// FileStorage is a string key/value store kept in a single JSON file.
// Every Set rewrites the file.
type FileStorage struct {
	dir string
}

// NewFileStorage returns storage rooted at dir. An empty dir selects DefaultDir.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	return &FileStorage{dir: dir}, nil
}

// Path returns the path of the state file.
func (s *FileStorage) Path() string {
	return filepath.Join(s.dir, stateFileName)
}

// Get returns the value stored under key. A missing file reads as empty.
func (s *FileStorage) Get(key string) (string, bool, error) {
	values, err := s.load()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

// Set stores value under key, creating the state directory if needed.
func (s *FileStorage) Set(key, value string) error {
	values, err := s.load()
	if err != nil {
		// Corrupt file - start over rather than refuse to save
		values = map[string]string{}
	}
	values[key] = value

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.Path() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, s.Path())
}

func (s *FileStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

// Memory is storage that lives only as long as the process.
type Memory struct {
	values map[string]string
}

// NewMemory returns empty in-memory storage.
func NewMemory() *Memory {
	return &Memory{values: map[string]string{}}
}

// Get returns the value stored under key.
func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}
