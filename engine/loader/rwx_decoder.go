package loader

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Carmen-Shannon/oxy-rwx/common"
	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
	"github.com/Carmen-Shannon/oxy-rwx/engine/triangulate"
)

// RWXResult is the flat, renderer-agnostic output of decoding one RWX document.
type RWXResult struct {
	// Vertices are the world-space vertex positions.
	Vertices [][3]float32 `yaml:"vertices,flow"`

	// UVs are the texture coordinates parallel to Vertices; vertices declared without uv get (0, 0).
	UVs [][2]float32 `yaml:"uvs,flow"`

	// Triangles index Vertices and reference Materials.
	Triangles []model.Triangle `yaml:"triangles"`

	// Materials are the deduplicated materials in first-use order.
	Materials []common.ImportedMaterial `yaml:"materials"`
}

// rwxDecoder carries the configuration of a decode call.
type rwxDecoder struct {
	triangulator     triangulate.Triangulator
	textureSignature bool
	logger           *slog.Logger
}

// DecodeRWX reads a whole RWX document and decodes it into flat geometry.
// The call either returns a complete result or an error; no partial result is ever returned.
// Concurrent calls are safe since each call owns all of its state.
//
// Parameters:
//   - r: the document source
//   - options: a variadic list of RWXOption functions
//
// Returns:
//   - *RWXResult: the decoded geometry
//   - error: a read error, or an *RWXParseError wrapping one of the Err* sentinels
func DecodeRWX(r io.Reader, options ...RWXOption) (*RWXResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read rwx document: %w", err)
	}
	return DecodeRWXString(string(data), options...)
}

// DecodeRWXString decodes an RWX document held in memory.
//
// Parameters:
//   - text: the document
//   - options: a variadic list of RWXOption functions
//
// Returns:
//   - *RWXResult: the decoded geometry
//   - error: an *RWXParseError wrapping one of the Err* sentinels
func DecodeRWXString(text string, options ...RWXOption) (*RWXResult, error) {
	d := &rwxDecoder{
		triangulator: triangulate.NewTessellator(),
		logger:       slog.Default(),
	}
	for _, opt := range options {
		opt(d)
	}
	return d.decode(text)
}

func (d *rwxDecoder) decode(text string) (*RWXResult, error) {
	p := newRWXParser(d.logger)
	if err := p.parse(text); err != nil {
		return nil, err
	}

	materials := newRWXMaterialTable(d.textureSignature)
	a := newRWXAssembler(materials)
	if err := a.assembleObject(p.root); err != nil {
		return nil, err
	}
	pt := &rwxPolygonTriangulator{triangulator: d.triangulator}
	if err := pt.triangulateLoops(a); err != nil {
		return nil, err
	}

	result := &RWXResult{
		Vertices:  a.vertices,
		UVs:       a.uvs,
		Triangles: a.triangles,
		Materials: materials.Materials(),
	}
	d.logger.Debug("decoded rwx document",
		"vertices", len(result.Vertices),
		"triangles", len(result.Triangles),
		"materials", len(result.Materials),
		"protos", p.templates.Len(),
	)
	return result, nil
}

// RWXOption is a functional option for configuring DecodeRWX.
type RWXOption func(*rwxDecoder)

// WithRWXTriangulator is an option builder that replaces the 2D triangulation provider used for polygons.
//
// Parameters:
//   - t: the triangulator, ignored when nil
//
// Returns:
//   - RWXOption: a function that applies the triangulator option to a decoder
func WithRWXTriangulator(t triangulate.Triangulator) RWXOption {
	return func(d *rwxDecoder) {
		if t != nil {
			d.triangulator = t
		}
	}
}

// WithRWXTextureSignature is an option builder that controls whether texture and mask names
// take part in material deduplication. Off by default, so faces differing only by texture
// share a material.
//
// Parameters:
//   - enabled: true to include texture and mask names in the signature
//
// Returns:
//   - RWXOption: a function that applies the texture signature option to a decoder
func WithRWXTextureSignature(enabled bool) RWXOption {
	return func(d *rwxDecoder) {
		d.textureSignature = enabled
	}
}

// WithRWXLogger is an option builder that sets the logger for debug records.
//
// Parameters:
//   - logger: the logger, ignored when nil
//
// Returns:
//   - RWXOption: a function that applies the logger option to a decoder
func WithRWXLogger(logger *slog.Logger) RWXOption {
	return func(d *rwxDecoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}
