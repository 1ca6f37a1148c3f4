// Package storage persists uploaded documents on local disk. Files are
// renamed to random UUIDs so client-supplied names never reach the
// filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/busmanager/backend/internal/entity"
)

var allowedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".pdf":  {},
}

type LocalStore struct {
	dir     string
	maxSize int64
}

func NewLocalStore(dir string, maxSize int64) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}

	return &LocalStore{
		dir:     dir,
		maxSize: maxSize,
	}, nil
}

// Save stores the uploaded content under a fresh UUID name and returns the
// stored file name. The original name contributes only its extension.
func (s *LocalStore) Save(originalName string, size int64, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))

	if _, ok := allowedExtensions[ext]; !ok {
		return "", fmt.Errorf("%w: file type %q is not allowed", entity.ErrInvalidArgument, ext)
	}

	if size > s.maxSize {
		return "", fmt.Errorf("%w: file size %d exceeds limit %d", entity.ErrInvalidArgument, size, s.maxSize)
	}

	name := uuid.Must(uuid.NewV4()).String() + ext
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	// LimitReader guards against clients lying about Content-Length.
	written, err := io.Copy(f, io.LimitReader(r, s.maxSize+1))
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	if written > s.maxSize {
		os.Remove(path)
		return "", fmt.Errorf("%w: file size exceeds limit %d", entity.ErrInvalidArgument, s.maxSize)
	}

	return name, nil
}

// Delete removes a stored file by name. Path segments in the name are
// rejected so callers cannot reach outside the uploads dir.
func (s *LocalStore) Delete(name string) error {
	if name == "" || name != filepath.Base(name) {
		return fmt.Errorf("%w: bad file name %q", entity.ErrInvalidArgument, name)
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%w: file %q", entity.ErrNotFound, name)
	}

	return err
}

// Dir returns the root directory files are stored in.
func (s *LocalStore) Dir() string {
	return s.dir
}
