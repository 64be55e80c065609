package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalDir serves artifacts from a plain directory on disk. This is the
// default backend: the training pipeline drops its artifact files next to
// the server.
type LocalDir struct {
	dir string
}

// NewLocalDir constructs a local directory backend.
func NewLocalDir(dir string) (*LocalDir, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("artifacts directory is required")
	}
	return &LocalDir{dir: dir}, nil
}

// EnsureBucket creates the directory if it does not exist.
func (l *LocalDir) EnsureBucket(_ context.Context) error {
	return os.MkdirAll(l.dir, 0o755)
}

// Put writes an object into the directory.
func (l *LocalDir) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	f, err := os.Create(filepath.Join(l.dir, key))
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Get opens a reader for an object in the directory.
func (l *LocalDir) Get(_ context.Context, key string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(l.dir, key))
}

// Bucket returns the directory path.
func (l *LocalDir) Bucket() string {
	return l.dir
}
