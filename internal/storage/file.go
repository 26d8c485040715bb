package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStorage keeps every key in a single YAML document on disk.
// The whole document is rewritten on each change.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates a FileStorage writing to path. The file is created on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file path.
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return "", false, err
	}
	v, ok := values[key]
	return v, ok, nil
}

func (s *FileStorage) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	values[key] = value
	return s.write(values)
}

func (s *FileStorage) Remove(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return err
	}
	for _, k := range keys {
		delete(values, k)
	}
	return s.write(values)
}

func (s *FileStorage) read() (map[string]string, error) {
	values := make(map[string]string)

	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", s.path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&values); err != nil {
		// an empty file decodes to io.EOF
		if info, statErr := file.Stat(); statErr == nil && info.Size() == 0 {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	if values == nil {
		values = make(map[string]string)
	}
	return values, nil
}

// write replaces the file atomically through a temp file in the same directory.
func (s *FileStorage) write(values map[string]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("os.CreateTemp(%s) > %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	enc := yaml.NewEncoder(tmp)
	if err := enc.Encode(values); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("yaml.NewEncoder().Encode() > %w", err)
	}
	if err := enc.Close(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("yaml encoder Close() > %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close() > %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("os.Rename(%s, %s) > %w", tmpPath, s.path, err)
	}
	return nil
}
