package model

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

func TestGPUVertexMarshal(t *testing.T) {
	v := GPUVertex{
		Position: [3]float32{1, 2, 3},
		Normal:   [3]float32{0, 1, 0},
		TexCoord: [2]float32{0.5, 0.25},
		Color:    [4]float32{1, 0, 0, 0.5},
		Tangent:  [4]float32{1, 0, 0, -1},
	}
	assert.Equal(t, 64, v.Size())

	buf := v.Marshal()
	require.Len(t, buf, 64)
	at := func(offset int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[offset:]))
	}
	assert.Equal(t, float32(3), at(8))
	assert.Equal(t, float32(0.25), at(28))
	assert.Equal(t, float32(0.5), at(44))
	assert.Equal(t, float32(-1), at(60))

	assert.Len(t, MarshalVertices([]GPUVertex{v, v, v}), 192)
	assert.Contains(t, GPUVertexSource, "struct VertexInput")
}

func TestWithImported(t *testing.T) {
	imp := &ImportedModel{
		Name:     "table",
		Vertices: [][3]float32{{-1, 0, 2}, {3, 4, -5}},
		Materials: []common.ImportedMaterial{
			{Name: "material_0"},
			{Name: "material_1"},
		},
		Meshes: []ImportedMesh{
			{Vertices: make([]GPUVertex, 3), Indices: []uint32{0, 1, 2}},
			{Vertices: make([]GPUVertex, 4), Indices: []uint32{0, 1, 2, 0, 2, 3}, MaterialIndex: 1},
		},
	}
	m := NewModel(WithImported(imp))

	assert.Equal(t, "table", m.Name())
	assert.Same(t, imp, m.Imported())
	assert.Len(t, m.ImportedMaterials(), 2)
	assert.Len(t, m.Meshes(), 2)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 9, m.IndexCount())
	assert.Len(t, m.VertexData(), 7*64)
	assert.Equal(t, [3]float32{-1, 0, -5}, m.BoundingMin())
	assert.Equal(t, [3]float32{3, 4, 2}, m.BoundingMax())

	indices := make([]uint32, m.IndexCount())
	for i := range indices {
		indices[i] = binary.LittleEndian.Uint32(m.IndexData()[i*4:])
	}
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 3, 5, 6}, indices, "second mesh indices rebase past the first mesh")
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, imp.Meshes[1].Indices, "mesh indices are left untouched")
}

func TestModelOptions(t *testing.T) {
	mats := []common.ImportedMaterial{{Name: "only"}}
	m := NewModel(WithName("bare"), WithImportedMaterials(mats))

	assert.Equal(t, "bare", m.Name())
	assert.Equal(t, mats, m.ImportedMaterials())
	assert.Nil(t, m.Imported())
	assert.Empty(t, m.Materials())
	assert.Zero(t, m.IndexCount())

	m.SetMaterials(nil)
	assert.Nil(t, m.Materials())
}
