package database

import (
	"io"

	"github.com/ds124wfegd/flagcomposer/internal/pkg/storage"
)

type FlagRepository interface {
	SaveUpload(name string, file io.Reader) error
	SaveProcessed(name string, file io.Reader) error
	OpenMask(name string) (io.ReadCloser, error)
	MaskExists(name string) bool
	ProcessedPath(name string) string
}

type fileFlagRepository struct {
	uploads   storage.FileStorage
	processed storage.FileStorage
	templates storage.FileStorage
}
