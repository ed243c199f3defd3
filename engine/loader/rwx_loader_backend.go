package loader

import (
	"io"

	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
)

// rwxLoaderBackendImpl is the implementation of rwxLoaderBackend.
type rwxLoaderBackendImpl struct {
	importer rwxImporter
}

// rwxLoaderBackend is a loaderBackend implementation for RWX text documents.
// It delegates to the rwxImporter for decoding and mesh building.
type rwxLoaderBackend interface {
	loaderBackend
}

var _ rwxLoaderBackend = &rwxLoaderBackendImpl{}

// newRWXLoaderBackend creates a new RWX loader backend.
//
// Parameters:
//   - options: decode options forwarded to every import
//
// Returns:
//   - rwxLoaderBackend: the loader backend for RWX files
func newRWXLoaderBackend(options ...RWXOption) rwxLoaderBackend {
	return &rwxLoaderBackendImpl{
		importer: newRWXImporter(options...),
	}
}

func (b *rwxLoaderBackendImpl) Load(path string) (*model.ImportedModel, error) {
	return b.importer.Import(path)
}

func (b *rwxLoaderBackendImpl) LoadReader(name string, r io.Reader) (*model.ImportedModel, error) {
	return b.importer.ImportReader(name, r)
}
