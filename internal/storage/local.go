package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalStore writes documents to a directory on disk and returns
// "/uploads/<name>" references, matching the path the server exposes
// them under.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string { return s.dir }

func (s *LocalStore) Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (string, error) {
	// Base strips any path components; object names are server
	// generated but this keeps a bad name from escaping the dir.
	name := filepath.Base(objectName)
	dst := filepath.Join(s.dir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return "/uploads/" + name, nil
}

func (s *LocalStore) Remove(ctx context.Context, objectName string) error {
	return os.Remove(filepath.Join(s.dir, filepath.Base(objectName)))
}
