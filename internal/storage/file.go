package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	themeerrors "github.com/alexisbeaulieu97/tmtheme/pkg/errors"
)

const fileVersion = "1"

type fileDocument struct {
	Version string            `json:"version"`
	Values  map[string]string `json:"values"`
}

// File persists values as a JSON document, rewritten atomically on each change.
type File struct {
	path   string
	mu     sync.RWMutex
	values map[string]string
}

var _ Storage = (*File)(nil)

// NewFile opens the JSON store at path, creating its directory if needed.
// A missing file starts empty.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, fmt.Errorf("file storage requires a path")
	}

	f := &File{path: path, values: make(map[string]string)}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create storage directory: %w", err)
	}

	if err := f.load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	return f, nil
}

func (f *File) load() error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return err
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return themeerrors.NewParseError(f.path, 0, err)
	}
	if doc.Values != nil {
		f.values = doc.Values
	}
	return nil
}

// save must be called with f.mu held.
func (f *File) save() error {
	data, err := json.MarshalIndent(fileDocument{Version: fileVersion, Values: f.values}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal storage: %w", err)
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}

	return nil
}

// Get returns the value stored under key.
func (f *File) Get(key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	value, ok := f.values[key]
	return value, ok, nil
}

// Set stores value and flushes the document.
func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, had := f.values[key]
	f.values[key] = value
	if err := f.save(); err != nil {
		if had {
			f.values[key] = previous
		} else {
			delete(f.values, key)
		}
		return themeerrors.NewStorageError("set", key, err)
	}
	return nil
}

// Remove deletes key and flushes the document.
func (f *File) Remove(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	previous, had := f.values[key]
	if !had {
		return nil
	}
	delete(f.values, key)
	if err := f.save(); err != nil {
		f.values[key] = previous
		return themeerrors.NewStorageError("remove", key, err)
	}
	return nil
}
