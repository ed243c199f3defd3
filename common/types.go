// package common contains common types that are used throughout this engine. They are not interface-wrapped structs, just plain structs that express
// commonly used data-types.
package common

import (
	"slices"
	"strings"

	"github.com/cogentcore/webgpu/wgpu"
)

// LightSampling selects how lighting is sampled across a face.
type LightSampling int

const (
	// LightSamplingFacet shades each face with a single normal (flat shading).
	LightSamplingFacet LightSampling = iota + 1
	// LightSamplingVertex interpolates lighting between vertex normals (smooth shading).
	LightSamplingVertex
)

// String returns the RWX keyword for the light sampling mode.
func (l LightSampling) String() string {
	switch l {
	case LightSamplingFacet:
		return "facet"
	case LightSamplingVertex:
		return "vertex"
	default:
		return "unknown"
	}
}

// GeometrySampling selects how a face is rasterized.
type GeometrySampling int

const (
	// GeometrySamplingPointCloud draws only the vertices of a face.
	GeometrySamplingPointCloud GeometrySampling = iota + 1
	// GeometrySamplingWireframe draws only the edges of a face.
	GeometrySamplingWireframe
	// GeometrySamplingSolid fills the face.
	GeometrySamplingSolid
)

// String returns the RWX keyword for the geometry sampling mode.
func (g GeometrySampling) String() string {
	switch g {
	case GeometrySamplingPointCloud:
		return "pointcloud"
	case GeometrySamplingWireframe:
		return "wireframe"
	case GeometrySamplingSolid:
		return "solid"
	default:
		return "unknown"
	}
}

// TextureMode is a single flag of a TextureModes set.
type TextureMode uint8

const (
	// TextureModeLit applies scene lighting to the texture.
	TextureModeLit TextureMode = 1 << iota
	// TextureModeForeshorten enables perspective-correct texture mapping.
	TextureModeForeshorten
	// TextureModeFilter enables bilinear filtering of the texture.
	TextureModeFilter
)

// TextureModes is a bit set of TextureMode flags.
type TextureModes uint8

// Has reports whether the given mode is part of the set.
func (t TextureModes) Has(mode TextureMode) bool {
	return t&TextureModes(mode) != 0
}

// With returns a copy of the set with the given mode added.
func (t TextureModes) With(mode TextureMode) TextureModes {
	return t | TextureModes(mode)
}

// Without returns a copy of the set with the given mode removed.
func (t TextureModes) Without(mode TextureMode) TextureModes {
	return t &^ TextureModes(mode)
}

// Names returns the sorted RWX keywords of every mode in the set.
func (t TextureModes) Names() []string {
	var names []string
	if t.Has(TextureModeLit) {
		names = append(names, "lit")
	}
	if t.Has(TextureModeForeshorten) {
		names = append(names, "foreshorten")
	}
	if t.Has(TextureModeFilter) {
		names = append(names, "filter")
	}
	slices.Sort(names)
	return names
}

// String returns the modes as a comma separated list, or "none" for an empty set.
func (t TextureModes) String() string {
	names := t.Names()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// MaterialMode selects which sides of a face are drawn.
type MaterialMode int

const (
	// MaterialModeNone draws only the front side of a face.
	MaterialModeNone MaterialMode = iota
	// MaterialModeNull is the explicit "null" mode, rendered like MaterialModeNone.
	MaterialModeNull
	// MaterialModeDouble draws both sides of a face.
	MaterialModeDouble
)

// String returns the RWX keyword for the material mode.
func (m MaterialMode) String() string {
	switch m {
	case MaterialModeNone:
		return "none"
	case MaterialModeNull:
		return "null"
	case MaterialModeDouble:
		return "double"
	default:
		return "unknown"
	}
}

// SamplerStagingData holds the configuration for a sampler binding pending GPU creation.
// Materials carry one of these so a renderer can build the sampler without re-reading the source file.
type SamplerStagingData struct {
	// AddressModeU, AddressModeV, AddressModeW specify the addressing mode for texture coordinates outside the [0, 1] range in each dimension (U, V, W).
	AddressModeU, AddressModeV, AddressModeW wgpu.AddressMode
	// MagFilter and MinFilter specify the filtering mode for magnification and minification.
	MagFilter, MinFilter wgpu.FilterMode
	// MipmapFilter specifies the filtering mode for mipmap level selection.
	MipmapFilter wgpu.MipmapFilterMode
	// LodMinClamp and LodMaxClamp specify the minimum and maximum level of detail (LOD) for mipmapping.
	LodMinClamp, LodMaxClamp float32
	// MaxAnisotropy specifies the maximum anisotropy level for anisotropic filtering.
	MaxAnisotropy uint16
}

// NewSamplerStagingData derives sampler parameters from a texture mode set.
// RWX textures always repeat; the FILTER mode switches from nearest to linear sampling.
//
// Parameters:
//   - modes: the texture modes active on the material
//
// Returns:
//   - *SamplerStagingData: the sampler parameters
func NewSamplerStagingData(modes TextureModes) *SamplerStagingData {
	s := &SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeNearest,
		MinFilter:     wgpu.FilterModeNearest,
		MipmapFilter:  wgpu.MipmapFilterModeNearest,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
	if modes.Has(TextureModeFilter) {
		s.MagFilter = wgpu.FilterModeLinear
		s.MinFilter = wgpu.FilterModeLinear
		s.MipmapFilter = wgpu.MipmapFilterModeLinear
	}
	return s
}

// ImportedMaterial represents the appearance state of a set of faces decoded from a model file.
type ImportedMaterial struct {
	// Name is the material identifier.
	Name string

	// Signature is the canonical appearance key this material was deduplicated by.
	Signature string

	// Color is the RGB base color.
	Color [3]float32

	// Opacity is the alpha value in [0, 1].
	Opacity float32

	// Ambient, Diffuse and Specular are the surface reflectance coefficients.
	Ambient, Diffuse, Specular float32

	// LightSampling selects flat or smooth shading.
	LightSampling LightSampling

	// GeometrySampling selects point, wireframe or solid rasterization.
	GeometrySampling GeometrySampling

	// TextureModes is the set of enabled texture modes.
	TextureModes TextureModes

	// MaterialMode selects single, double or no sided rendering.
	MaterialMode MaterialMode

	// Texture references the color texture, or nil when untextured.
	Texture *ImportedTexture

	// Mask references the alpha mask texture, or nil when unmasked.
	Mask *ImportedTexture
}

// ImportedTexture references a texture by name. Image data is resolved by the caller,
// typically from the object path of the world server the model was fetched from.
type ImportedTexture struct {
	// Name is the texture identifier as written in the model file.
	Name string

	// SamplerData holds GPU sampler parameters derived from the material texture modes.
	SamplerData *SamplerStagingData
}

// MarshalYAML encodes the mode as its RWX keyword.
func (l LightSampling) MarshalYAML() (any, error) {
	return l.String(), nil
}

// MarshalYAML encodes the mode as its RWX keyword.
func (g GeometrySampling) MarshalYAML() (any, error) {
	return g.String(), nil
}

// MarshalYAML encodes the set as a sorted list of RWX keywords.
func (t TextureModes) MarshalYAML() (any, error) {
	return t.Names(), nil
}

// MarshalYAML encodes the mode as its RWX keyword.
func (m MaterialMode) MarshalYAML() (any, error) {
	return m.String(), nil
}
