package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

func TestSigFloat(t *testing.T) {
	assert.Equal(t, "0.000", sigFloat(-0.0001))
	assert.Equal(t, "0.000", sigFloat(0))
	assert.Equal(t, "0.500", sigFloat(0.49951))
	assert.Equal(t, "-1.250", sigFloat(-1.25))
}

func TestStateSignature(t *testing.T) {
	s := defaultRWXState()
	s.texture = "wood"
	assert.Equal(t,
		"color=0.000,0.000,0.000;surface=0.000,0.000,0.000;opacity=1.000;light=facet;geometry=solid;texturemodes=lit;materialmode=none",
		s.signature(false))
	assert.Equal(t,
		"color=0.000,0.000,0.000;surface=0.000,0.000,0.000;opacity=1.000;light=facet;geometry=solid;texturemodes=lit;materialmode=none;texture=wood;mask=",
		s.signature(true))
}

func TestMaterialTableResolve(t *testing.T) {
	table := newRWXMaterialTable(false)

	red := defaultRWXState()
	red.color = [3]float32{1, 0, 0}
	blue := defaultRWXState()
	blue.color = [3]float32{0, 0, 1}
	blue.texture = "sky"
	blue.textureModes = blue.textureModes.With(common.TextureModeFilter)

	assert.Equal(t, 0, table.Resolve(&red))
	assert.Equal(t, 1, table.Resolve(&blue))
	assert.Equal(t, 0, table.Resolve(&red))

	mats := table.Materials()
	require.Len(t, mats, 2)
	assert.Equal(t, "material_0", mats[0].Name)
	assert.Equal(t, [3]float32{1, 0, 0}, mats[0].Color)
	assert.Nil(t, mats[0].Texture)

	assert.Equal(t, "material_1", mats[1].Name)
	require.NotNil(t, mats[1].Texture)
	assert.Equal(t, "sky", mats[1].Texture.Name)
	require.NotNil(t, mats[1].Texture.SamplerData)
	assert.Equal(t, common.NewSamplerStagingData(blue.textureModes), mats[1].Texture.SamplerData)

	mats[0].Name = "changed"
	assert.Equal(t, "material_0", table.Materials()[0].Name, "Materials returns a copy")
}
