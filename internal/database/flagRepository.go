package database

import (
	"io"
	"path/filepath"

	"github.com/ds124wfegd/flagcomposer/internal/pkg/storage"
)

func NewFlagRepository(uploads, processed, templates storage.FileStorage) FlagRepository {
	return &fileFlagRepository{
		uploads:   uploads,
		processed: processed,
		templates: templates,
	}
}

// NewLayoutRepository roots one file storage in each folder of the layout.
func NewLayoutRepository(layout storage.Layout) FlagRepository {
	return NewFlagRepository(
		storage.NewFileStorage(layout.Uploads),
		storage.NewFileStorage(layout.Processed),
		storage.NewFileStorage(layout.Templates),
	)
}

func (r *fileFlagRepository) SaveUpload(name string, file io.Reader) error {
	return r.uploads.Save(baseName(name), file)
}

func (r *fileFlagRepository) SaveProcessed(name string, file io.Reader) error {
	return r.processed.Save(baseName(name), file)
}

func (r *fileFlagRepository) OpenMask(name string) (io.ReadCloser, error) {
	return r.templates.Get(baseName(name))
}

func (r *fileFlagRepository) MaskExists(name string) bool {
	return r.templates.Exists(baseName(name))
}

func (r *fileFlagRepository) ProcessedPath(name string) string {
	return r.processed.Path(baseName(name))
}

// baseName keeps client supplied names inside their folder.
func baseName(name string) string {
	return filepath.Base(filepath.Clean("/" + name))
}
