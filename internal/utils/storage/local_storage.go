package storage

import (
	"context"
	"os"
	"path/filepath"
)

type localStorage struct {
	baseDir string
}

func NewLocal(baseDir string) Storage {
	return &localStorage{baseDir: baseDir}
}

func (s *localStorage) Save(_ context.Context, key string, _ string, data []byte) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	path := filepath.Join(s.baseDir, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
