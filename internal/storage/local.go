package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// LocalUploader writes files under dir and reports URLs rooted at
// /uploads/listings, matching the path the server exposes statically.
type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, filename, _ string, r io.Reader) (string, error) {
	f, err := os.Create(filepath.Join(u.dir, filename))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return "/uploads/listings/" + filename, nil
}

func (u *LocalUploader) Dir() string {
	return u.dir
}
