package material

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

func TestNewMaterialDefaults(t *testing.T) {
	m := NewMaterial()

	assert.Equal(t, [4]float32{0, 0, 0, 1}, m.Color())
	assert.Equal(t, common.LightSamplingFacet, m.LightSampling())
	assert.Equal(t, common.GeometrySamplingSolid, m.GeometrySampling())
	assert.Equal(t, common.TextureModes(common.TextureModeLit), m.TextureModes())
	assert.False(t, m.DoubleSided())
	assert.False(t, m.Transparent())
}

func TestWithImportedMaterial(t *testing.T) {
	imp := common.ImportedMaterial{
		Name:             "material_3",
		Color:            [3]float32{0.1, 0.2, 0.3},
		Opacity:          0.75,
		Ambient:          0.4,
		Diffuse:          0.5,
		Specular:         0.6,
		LightSampling:    common.LightSamplingVertex,
		GeometrySampling: common.GeometrySamplingWireframe,
		TextureModes:     common.TextureModes(common.TextureModeFilter),
		MaterialMode:     common.MaterialModeDouble,
		Texture:          &common.ImportedTexture{Name: "brick"},
	}
	m := NewMaterial(WithImportedMaterial(imp), WithPipelineKey("house:wireframe:double"))

	assert.Equal(t, "material_3", m.Name())
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0.75}, m.Color())
	assert.Equal(t, float32(0.4), m.Ambient())
	assert.Equal(t, float32(0.5), m.Diffuse())
	assert.Equal(t, float32(0.6), m.Specular())
	assert.Equal(t, common.LightSamplingVertex, m.LightSampling())
	assert.Equal(t, common.GeometrySamplingWireframe, m.GeometrySampling())
	assert.Equal(t, common.MaterialModeDouble, m.MaterialMode())
	require.NotNil(t, m.Texture())
	assert.Equal(t, "brick", m.Texture().Name)
	assert.Nil(t, m.Mask())
	assert.True(t, m.DoubleSided())
	assert.True(t, m.Transparent())
	assert.Equal(t, "house:wireframe:double", m.PipelineKey())

	m.SetPipelineKey("other")
	assert.Equal(t, "other", m.PipelineKey())
}

func TestGPUParams(t *testing.T) {
	m := NewMaterial(
		WithColor([3]float32{1, 0.5, 0.25}, 1),
		WithSurface(0.1, 0.2, 0.3),
		WithMaterialMode(common.MaterialModeNull),
		WithMask(&common.ImportedTexture{Name: "leafmask"}),
	)
	params := m.GPUParams()

	assert.Equal(t, [4]float32{1, 0.5, 0.25, 1}, params.Color)
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 0}, params.Surface)
	assert.Equal(t, MaterialFlagMasked|MaterialFlagTransparent, params.Flags[3], "null mode draws one side")
	assert.Equal(t, uint32(common.TextureModeLit), params.Flags[2])

	assert.Equal(t, 48, params.Size())
	buf := params.Marshal()
	require.Len(t, buf, 48)
	assert.Equal(t, float32(0.5), math.Float32frombits(binary.LittleEndian.Uint32(buf[4:])))
	assert.Equal(t, float32(0.3), math.Float32frombits(binary.LittleEndian.Uint32(buf[24:])))
	assert.Equal(t, params.Flags[3], binary.LittleEndian.Uint32(buf[44:]))
}

func TestGPUMaterialParamsSource(t *testing.T) {
	assert.Contains(t, GPUMaterialParamsSource, "struct MaterialParams")
}
