package material

import (
	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// MaterialBuilderOption is a function that configures a material instance during construction.
type MaterialBuilderOption func(*material)

// WithName is an option builder that sets the name of the material.
//
// Parameters:
//   - name: the identifier for the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the name option to a material
func WithName(name string) MaterialBuilderOption {
	return func(m *material) {
		m.name = name
	}
}

// WithColor is an option builder that sets the RGB color and opacity of the material.
//
// Parameters:
//   - color: the RGB color
//   - opacity: the alpha value in [0, 1]
//
// Returns:
//   - MaterialBuilderOption: a function that applies the color option to a material
func WithColor(color [3]float32, opacity float32) MaterialBuilderOption {
	return func(m *material) {
		m.color = [4]float32{color[0], color[1], color[2], opacity}
	}
}

// WithSurface is an option builder that sets the reflectance coefficients of the material.
//
// Parameters:
//   - ambient: the ambient coefficient
//   - diffuse: the diffuse coefficient
//   - specular: the specular coefficient
//
// Returns:
//   - MaterialBuilderOption: a function that applies the surface option to a material
func WithSurface(ambient, diffuse, specular float32) MaterialBuilderOption {
	return func(m *material) {
		m.ambient, m.diffuse, m.specular = ambient, diffuse, specular
	}
}

// WithSampling is an option builder that sets the light and geometry sampling modes.
//
// Parameters:
//   - light: the shading mode
//   - geometry: the rasterization mode
//
// Returns:
//   - MaterialBuilderOption: a function that applies the sampling option to a material
func WithSampling(light common.LightSampling, geometry common.GeometrySampling) MaterialBuilderOption {
	return func(m *material) {
		m.lightSampling, m.geometrySampling = light, geometry
	}
}

// WithTextureModes is an option builder that sets the enabled texture modes.
//
// Parameters:
//   - modes: the texture mode set
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture modes option to a material
func WithTextureModes(modes common.TextureModes) MaterialBuilderOption {
	return func(m *material) {
		m.textureModes = modes
	}
}

// WithMaterialMode is an option builder that sets the sidedness mode.
//
// Parameters:
//   - mode: the material mode
//
// Returns:
//   - MaterialBuilderOption: a function that applies the material mode option to a material
func WithMaterialMode(mode common.MaterialMode) MaterialBuilderOption {
	return func(m *material) {
		m.materialMode = mode
	}
}

// WithTexture is an option builder that sets the color texture reference.
//
// Parameters:
//   - tex: the texture, or nil
//
// Returns:
//   - MaterialBuilderOption: a function that applies the texture option to a material
func WithTexture(tex *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.texture = tex
	}
}

// WithMask is an option builder that sets the alpha mask texture reference.
//
// Parameters:
//   - mask: the mask, or nil
//
// Returns:
//   - MaterialBuilderOption: a function that applies the mask option to a material
func WithMask(mask *common.ImportedTexture) MaterialBuilderOption {
	return func(m *material) {
		m.mask = mask
	}
}

// WithImportedMaterial is an option builder that copies every property of a decoded material.
//
// Parameters:
//   - imp: the decoded material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the imported properties to a material
func WithImportedMaterial(imp common.ImportedMaterial) MaterialBuilderOption {
	return func(m *material) {
		for _, opt := range []MaterialBuilderOption{
			WithName(imp.Name),
			WithColor(imp.Color, imp.Opacity),
			WithSurface(imp.Ambient, imp.Diffuse, imp.Specular),
			WithSampling(imp.LightSampling, imp.GeometrySampling),
			WithTextureModes(imp.TextureModes),
			WithMaterialMode(imp.MaterialMode),
			WithTexture(imp.Texture),
			WithMask(imp.Mask),
		} {
			opt(m)
		}
	}
}

// WithPipelineKey is an option builder that sets the render pipeline key for the material.
//
// Parameters:
//   - key: the pipeline key to associate with the material
//
// Returns:
//   - MaterialBuilderOption: a function that applies the pipeline key option to a material
func WithPipelineKey(key string) MaterialBuilderOption {
	return func(m *material) {
		m.pipelineKey = key
	}
}
