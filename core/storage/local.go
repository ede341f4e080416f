package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps files under a directory.
type LocalStore struct {
	root string
}

// NewLocalStore returns a store rooted at dir. The directory is created lazily.
func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{root: dir}
}

func (s *LocalStore) path(key string) string {
	return filepath.Join(s.root, filepath.FromSlash(key))
}

// Save implements Store.
func (s *LocalStore) Save(ctx context.Context, folder, name string, r io.Reader, size int64) (string, error) {
	key := newKey(folder, name)
	if err := validKey(key); err != nil {
		return "", err
	}

	dst := s.path(key)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", folder, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", key, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("failed to write %s: %w", key, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close %s: %w", key, err)
	}

	return key, nil
}

// Open implements Store.
func (s *LocalStore) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	f, err := os.Open(s.path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", key, err)
	}
	return f, nil
}

// Remove implements Store. Removing a missing file is not an error.
func (s *LocalStore) Remove(ctx context.Context, key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", key, err)
	}
	return nil
}

// HasFolder implements Store.
func (s *LocalStore) HasFolder(ctx context.Context, folder string) (bool, error) {
	info, err := os.Stat(s.path(folder))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat folder %s: %w", folder, err)
	}
	return info.IsDir(), nil
}

// MakeFolder implements Store.
func (s *LocalStore) MakeFolder(ctx context.Context, folder string) error {
	if err := os.MkdirAll(s.path(folder), 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", folder, err)
	}
	return nil
}

// Ping implements Store. The root must exist and be a directory.
func (s *LocalStore) Ping(ctx context.Context) error {
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("storage directory %s is not accessible: %w", s.root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage path %s is not a directory", s.root)
	}
	return nil
}

// Location implements Store.
func (s *LocalStore) Location() string {
	return "dir:" + s.root
}
