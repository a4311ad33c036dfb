package storage

import (
	"io"
	"os"
	"path/filepath"
)

type FileStorage interface {
	Save(name string, data io.Reader) error
	Get(name string) (io.ReadCloser, error)
	Exists(name string) bool
	Path(name string) string
}

type fileStorage struct {
	basePath string
}

func NewFileStorage(basePath string) FileStorage {
	return &fileStorage{basePath: basePath}
}

// Save overwrites any file already stored under name.
func (s *fileStorage) Save(name string, data io.Reader) error {
	fullPath := s.Path(name)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (s *fileStorage) Get(name string) (io.ReadCloser, error) {
	return os.Open(s.Path(name))
}

func (s *fileStorage) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

func (s *fileStorage) Path(name string) string {
	return filepath.Join(s.basePath, name)
}
