package model

import (
	"github.com/Carmen-Shannon/oxy-rwx/common"
	"github.com/Carmen-Shannon/oxy-rwx/engine/material"
)

// model is the implementation of the Model interface.
type model struct {
	name                     string
	imported                 *ImportedModel
	importedMaterials        []common.ImportedMaterial
	materials                []material.Material
	meshes                   []ImportedMesh
	vertexData, indexData    []byte
	indexCount, vertexCount  int
	boundingMin, boundingMax [3]float32
}

// Model defines the interface for a loaded RWX model.
// A Model is a renderer-ready container holding the combined mesh buffers of every
// material, the per-material meshes they were built from, and the render materials.
// It is produced by the Loader after decoding and importing a model file.
type Model interface {
	// Name retrieves the model identifier.
	//
	// Returns:
	//   - string: the model name
	Name() string

	// Imported retrieves the CPU-side import the model was built from, including the
	// flat decoded vertices, uvs and triangles.
	//
	// Returns:
	//   - *ImportedModel: the imported model, or nil for hand-built models
	Imported() *ImportedModel

	// ImportedMaterials retrieves the raw material properties decoded from the model file.
	//
	// Returns:
	//   - []common.ImportedMaterial: the imported materials
	ImportedMaterials() []common.ImportedMaterial

	// Materials retrieves the render-ready materials for this model, indexed like ImportedMaterials.
	//
	// Returns:
	//   - []material.Material: the render-ready materials
	Materials() []material.Material

	// SetMaterials replaces the render-ready material list for this model.
	//
	// Parameters:
	//   - mats: the render-ready materials to set
	SetMaterials(mats []material.Material)

	// Meshes retrieves the per-material meshes.
	//
	// Returns:
	//   - []ImportedMesh: the meshes
	Meshes() []ImportedMesh

	// VertexData returns the combined vertex buffer of every mesh.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the combined index buffer of every mesh, rebased onto VertexData.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in IndexData.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// VertexCount returns the number of vertices in VertexData.
	//
	// Returns:
	//   - int: the vertex count
	VertexCount() int

	// BoundingMin returns the minimum corner of the model's axis-aligned bounding box.
	//
	// Returns:
	//   - [3]float32: the minimum corner
	BoundingMin() [3]float32

	// BoundingMax returns the maximum corner of the model's axis-aligned bounding box.
	//
	// Returns:
	//   - [3]float32: the maximum corner
	BoundingMax() [3]float32
}

var _ Model = &model{}

// NewModel creates a new Model instance with the specified options applied.
//
// Parameters:
//   - options: a variadic list of ModelBuilderOption functions to configure the Model
//
// Returns:
//   - Model: a new instance of Model configured with the provided options
func NewModel(options ...ModelBuilderOption) Model {
	m := &model{}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *model) Name() string {
	return m.name
}

func (m *model) Imported() *ImportedModel {
	return m.imported
}

func (m *model) ImportedMaterials() []common.ImportedMaterial {
	return m.importedMaterials
}

func (m *model) Materials() []material.Material {
	return m.materials
}

func (m *model) SetMaterials(mats []material.Material) {
	m.materials = mats
}

func (m *model) Meshes() []ImportedMesh {
	return m.meshes
}

func (m *model) VertexData() []byte {
	return m.vertexData
}

func (m *model) IndexData() []byte {
	return m.indexData
}

func (m *model) IndexCount() int {
	return m.indexCount
}

func (m *model) VertexCount() int {
	return m.vertexCount
}

func (m *model) BoundingMin() [3]float32 {
	return m.boundingMin
}

func (m *model) BoundingMax() [3]float32 {
	return m.boundingMax
}
