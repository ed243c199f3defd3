package model

import (
	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// --- Flat Geometry Types ---

// Triangle is one output face: three indices into the flat vertex buffer plus a material index.
type Triangle struct {
	// Indices are the vertex indices in winding order.
	Indices [3]uint32 `yaml:"indices,flow"`

	// MaterialIndex references ImportedModel.Materials.
	MaterialIndex int `yaml:"material"`
}

// --- Import Types ---

// ImportedModel represents a 3D model decoded from an RWX document.
// The flat buffers are the decoder output; Meshes regroups them per material with
// GPU vertex layout and generated normals.
type ImportedModel struct {
	// Name is the model identifier.
	Name string

	// Vertices are the world-space vertex positions.
	Vertices [][3]float32

	// UVs are the texture coordinates parallel to Vertices.
	UVs [][2]float32

	// Triangles are the faces indexing Vertices.
	Triangles []Triangle

	// Materials are the deduplicated materials referenced by Triangles and Meshes.
	Materials []common.ImportedMaterial

	// Meshes contains one mesh per material that has at least one triangle.
	Meshes []ImportedMesh
}

// ImportedMesh represents the faces of an imported model sharing one material.
type ImportedMesh struct {
	// Name is the mesh identifier.
	Name string

	// Vertices are the mesh vertices in GPU layout.
	Vertices []GPUVertex

	// Indices are the triangle indices into Vertices.
	Indices []uint32

	// MaterialIndex references ImportedModel.Materials.
	MaterialIndex int

	// BoundingMin is the minimum corner of the axis-aligned bounding box.
	BoundingMin [3]float32

	// BoundingMax is the maximum corner of the axis-aligned bounding box.
	BoundingMax [3]float32
}
