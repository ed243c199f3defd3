package model

import (
	"github.com/Carmen-Shannon/oxy-rwx/common"
	"github.com/Carmen-Shannon/oxy-rwx/engine/material"
)

// ModelBuilderOption is a functional option for configuring a Model via NewModel.
type ModelBuilderOption func(*model)

// WithName is an option builder that sets the name of the Model.
//
// Parameters:
//   - name: the model identifier
//
// Returns:
//   - ModelBuilderOption: a function that applies the name option to a model
func WithName(name string) ModelBuilderOption {
	return func(m *model) {
		m.name = name
	}
}

// WithImported is an option builder that builds the Model from an import: it takes the
// name, materials and meshes of imp, and concatenates the mesh buffers into one vertex
// buffer and one index buffer, rebasing each mesh's indices past the vertices before it.
//
// Parameters:
//   - imp: the imported model
//
// Returns:
//   - ModelBuilderOption: a function that applies the imported data to a model
func WithImported(imp *ImportedModel) ModelBuilderOption {
	return func(m *model) {
		m.imported = imp
		m.name = imp.Name
		m.importedMaterials = imp.Materials
		m.meshes = imp.Meshes

		var vertexBytes, indexBytes []byte
		indexOffset := uint32(0)
		m.boundingMin, m.boundingMax = common.BoundingBox(imp.Vertices)
		for _, mesh := range imp.Meshes {
			vertexBytes = append(vertexBytes, MarshalVertices(mesh.Vertices)...)

			adjusted := make([]uint32, len(mesh.Indices))
			for i, idx := range mesh.Indices {
				adjusted[i] = idx + indexOffset
			}
			indexBytes = append(indexBytes, common.SliceToBytes(adjusted)...)

			m.indexCount += len(mesh.Indices)
			indexOffset += uint32(len(mesh.Vertices))
		}
		m.vertexCount = int(indexOffset)
		m.vertexData, m.indexData = vertexBytes, indexBytes
	}
}

// WithImportedMaterials is an option builder that sets the raw imported materials of the Model.
//
// Parameters:
//   - materials: the imported materials to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the imported materials option to a model
func WithImportedMaterials(materials []common.ImportedMaterial) ModelBuilderOption {
	return func(m *model) {
		m.importedMaterials = materials
	}
}

// WithMaterials is an option builder that sets the render-ready materials for the Model.
//
// Parameters:
//   - mats: the render-ready materials to set
//
// Returns:
//   - ModelBuilderOption: a function that applies the materials option to a model
func WithMaterials(mats ...material.Material) ModelBuilderOption {
	return func(m *model) {
		m.materials = mats
	}
}
