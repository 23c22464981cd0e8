package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore persists uploaded attachments on the local filesystem
type LocalStore struct {
	dir string
}

// NewLocalStore creates an attachment store rooted at dir, creating the
// directory if needed.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes src under the original base filename and returns the stored
// path. Two uploads with the same filename overwrite each other: last
// write wins.
func (s *LocalStore) Save(filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("empty filename")
	}

	// Strip any path components from the client-supplied name
	path := filepath.Join(s.dir, filepath.Base(filename))

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return path, nil
}

// Dir returns the root directory of the store
func (s *LocalStore) Dir() string {
	return s.dir
}
