package loader

import (
	"fmt"

	"cogentcore.org/core/base/keylist"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// rwxMaterialTable deduplicates render states into an ordered material list keyed by signature.
type rwxMaterialTable struct {
	materials        *keylist.List[string, common.ImportedMaterial]
	textureSignature bool
}

// newRWXMaterialTable creates an empty material table.
//
// Parameters:
//   - textureSignature: include texture and mask names in the deduplication key
//
// Returns:
//   - *rwxMaterialTable: the table
func newRWXMaterialTable(textureSignature bool) *rwxMaterialTable {
	return &rwxMaterialTable{
		materials:        keylist.New[string, common.ImportedMaterial](),
		textureSignature: textureSignature,
	}
}

// Resolve returns the material index for state, allocating a new material on first sight
// of its signature.
//
// Parameters:
//   - state: the render state a face was declared under
//
// Returns:
//   - int: the index into Materials
func (t *rwxMaterialTable) Resolve(state *rwxState) int {
	sig := state.signature(t.textureSignature)
	if idx := t.materials.IndexByKey(sig); idx >= 0 {
		return idx
	}
	idx := t.materials.Len()
	t.materials.Add(sig, newImportedMaterial(fmt.Sprintf("material_%d", idx), sig, state))
	return idx
}

// Materials returns the materials in allocation order.
func (t *rwxMaterialTable) Materials() []common.ImportedMaterial {
	out := make([]common.ImportedMaterial, t.materials.Len())
	copy(out, t.materials.Values)
	return out
}

// newImportedMaterial converts a render state into a material record.
func newImportedMaterial(name, sig string, state *rwxState) common.ImportedMaterial {
	m := common.ImportedMaterial{
		Name:             name,
		Signature:        sig,
		Color:            state.color,
		Opacity:          state.opacity,
		Ambient:          state.surface[0],
		Diffuse:          state.surface[1],
		Specular:         state.surface[2],
		LightSampling:    state.lightSampling,
		GeometrySampling: state.geometrySampling,
		TextureModes:     state.textureModes,
		MaterialMode:     state.materialMode,
	}
	if state.texture != "" {
		m.Texture = &common.ImportedTexture{
			Name:        state.texture,
			SamplerData: common.NewSamplerStagingData(state.textureModes),
		}
	}
	if state.mask != "" {
		m.Mask = &common.ImportedTexture{
			Name:        state.mask,
			SamplerData: common.NewSamplerStagingData(state.textureModes),
		}
	}
	return m
}
