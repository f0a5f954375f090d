package store

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileAdapter persists all keys as a single JSON document on disk. It is
// the process-local equivalent of browser localStorage: small, human
// readable, and rewritten in full on every change.
type FileAdapter struct {
	mu   sync.Mutex
	path string
}

// NewFileAdapter creates an adapter backed by the given file path.
// The file is created on first write; parent directories must exist or be
// creatable.
func NewFileAdapter(path string) *FileAdapter {
	return &FileAdapter{path: path}
}

// Path returns the backing file path.
func (f *FileAdapter) Path() string { return f.path }

func (f *FileAdapter) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return make(map[string]json.RawMessage), nil
	}
	if err != nil {
		return nil, err
	}
	data := make(map[string]json.RawMessage)
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, &SerializationError{Key: f.path, Err: err}
	}
	return data, nil
}

func (f *FileAdapter) write(data map[string]json.RawMessage) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return &SerializationError{Key: f.path, Err: err}
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}
	// Write to a temp file then rename so readers never see a torn file.
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}

// Get retrieves a value by key.
func (f *FileAdapter) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return nil, false, err
	}
	v, ok := data[key]
	return v, ok, nil
}

// Set stores a value by key.
func (f *FileAdapter) Set(_ context.Context, key string, value json.RawMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return err
	}
	data[key] = value
	return f.write(data)
}

// Delete removes a key.
func (f *FileAdapter) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return err
	}
	delete(data, key)
	return f.write(data)
}

// Has returns true if the key exists.
func (f *FileAdapter) Has(_ context.Context, key string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return false, err
	}
	_, ok := data[key]
	return ok, nil
}

// Len returns the number of stored keys.
func (f *FileAdapter) Len(_ context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.read()
	if err != nil {
		return 0, err
	}
	return len(data), nil
}

// Clear removes all data.
func (f *FileAdapter) Clear(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.write(make(map[string]json.RawMessage))
}
