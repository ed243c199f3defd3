package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/oxy-rwx/common"
	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
)

// rwxImporterImpl is the implementation of the rwxImporter interface.
type rwxImporterImpl struct {
	options []RWXOption
}

// rwxImporter defines the interface for orchestrating a full RWX import.
// It decodes the document and regroups the result into per-material meshes.
type rwxImporter interface {
	// Import reads an RWX file and produces an ImportedModel named after the file.
	//
	// Parameters:
	//   - path: the file path to the RWX document
	//
	// Returns:
	//   - *model.ImportedModel: the fully populated imported model
	//   - error: error if reading or decoding fails
	Import(path string) (*model.ImportedModel, error)

	// ImportReader decodes an RWX document from a reader.
	//
	// Parameters:
	//   - name: the model name, "rwx" when empty
	//   - r: the reader providing the document
	//
	// Returns:
	//   - *model.ImportedModel: the fully populated imported model
	//   - error: error if reading or decoding fails
	ImportReader(name string, r io.Reader) (*model.ImportedModel, error)
}

var _ rwxImporter = &rwxImporterImpl{}

// newRWXImporter creates a new RWX importer.
//
// Parameters:
//   - options: decode options applied to every document
//
// Returns:
//   - rwxImporter: the importer
func newRWXImporter(options ...RWXOption) rwxImporter {
	return &rwxImporterImpl{options: options}
}

func (imp *rwxImporterImpl) Import(path string) (*model.ImportedModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return imp.ImportReader(rwxModelName(path), f)
}

func (imp *rwxImporterImpl) ImportReader(name string, r io.Reader) (*model.ImportedModel, error) {
	result, err := DecodeRWX(r, imp.options...)
	if err != nil {
		return nil, err
	}

	return &model.ImportedModel{
		Name:      common.Coalesce(name, "rwx"),
		Vertices:  result.Vertices,
		UVs:       result.UVs,
		Triangles: result.Triangles,
		Materials: result.Materials,
		Meshes:    rwxBuildMeshes(result),
	}, nil
}

// rwxModelName derives a model name from the base file name without its extension.
func rwxModelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
