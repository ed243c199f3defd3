package material

import (
	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// material is the implementation of the Material interface.
type material struct {
	name             string
	color            [4]float32
	ambient          float32
	diffuse          float32
	specular         float32
	lightSampling    common.LightSampling
	geometrySampling common.GeometrySampling
	textureModes     common.TextureModes
	materialMode     common.MaterialMode
	texture          *common.ImportedTexture
	mask             *common.ImportedTexture
	pipelineKey      string
}

// Material defines the interface for a render material decoded from an RWX document,
// encapsulating surface properties and texture references needed for draw calls.
//
// Surface properties are set at load time and are read-only through this interface.
// The pipeline key is mutable so it can be assigned after construction by the Loader.
type Material interface {
	// Name retrieves the material identifier.
	//
	// Returns:
	//   - string: the name of the material
	Name() string

	// Color retrieves the RGB color with opacity in the alpha channel.
	//
	// Returns:
	//   - [4]float32: the color as RGBA values
	Color() [4]float32

	// Ambient retrieves the ambient reflectance coefficient.
	//
	// Returns:
	//   - float32: the ambient coefficient
	Ambient() float32

	// Diffuse retrieves the diffuse reflectance coefficient.
	//
	// Returns:
	//   - float32: the diffuse coefficient
	Diffuse() float32

	// Specular retrieves the specular reflectance coefficient.
	//
	// Returns:
	//   - float32: the specular coefficient
	Specular() float32

	// LightSampling retrieves the shading mode.
	//
	// Returns:
	//   - common.LightSampling: facet or vertex sampling
	LightSampling() common.LightSampling

	// GeometrySampling retrieves the rasterization mode.
	//
	// Returns:
	//   - common.GeometrySampling: point cloud, wireframe or solid
	GeometrySampling() common.GeometrySampling

	// TextureModes retrieves the enabled texture modes.
	//
	// Returns:
	//   - common.TextureModes: the texture mode set
	TextureModes() common.TextureModes

	// MaterialMode retrieves the sidedness mode.
	//
	// Returns:
	//   - common.MaterialMode: the material mode
	MaterialMode() common.MaterialMode

	// Texture retrieves the color texture reference, or nil if none is set.
	//
	// Returns:
	//   - *common.ImportedTexture: the texture, or nil
	Texture() *common.ImportedTexture

	// Mask retrieves the alpha mask texture reference, or nil if none is set.
	//
	// Returns:
	//   - *common.ImportedTexture: the mask, or nil
	Mask() *common.ImportedTexture

	// DoubleSided reports whether back faces must be drawn.
	//
	// Returns:
	//   - bool: true for the double material mode
	DoubleSided() bool

	// Transparent reports whether the material needs blending, either through
	// partial opacity or an alpha mask.
	//
	// Returns:
	//   - bool: true if blending is required
	Transparent() bool

	// PipelineKey retrieves the key identifying the render pipeline this material uses.
	//
	// Returns:
	//   - string: the pipeline key
	PipelineKey() string

	// SetPipelineKey sets the render pipeline key for this material.
	//
	// Parameters:
	//   - key: the pipeline key to associate with this material
	SetPipelineKey(key string)

	// GPUParams packs the material into its uniform buffer layout.
	//
	// Returns:
	//   - GPUMaterialParams: the uniform data
	GPUParams() GPUMaterialParams
}

var _ Material = &material{}

// NewMaterial creates a new Material instance configured with the provided options.
//
// Parameters:
//   - options: variadic list of MaterialBuilderOption functions to configure the material
//
// Returns:
//   - Material: a new Material instance
func NewMaterial(options ...MaterialBuilderOption) Material {
	m := &material{
		color:            [4]float32{0, 0, 0, 1},
		lightSampling:    common.LightSamplingFacet,
		geometrySampling: common.GeometrySamplingSolid,
		textureModes:     common.TextureModes(common.TextureModeLit),
	}
	for _, opt := range options {
		opt(m)
	}
	return m
}

func (m *material) Name() string {
	return m.name
}

func (m *material) Color() [4]float32 {
	return m.color
}

func (m *material) Ambient() float32 {
	return m.ambient
}

func (m *material) Diffuse() float32 {
	return m.diffuse
}

func (m *material) Specular() float32 {
	return m.specular
}

func (m *material) LightSampling() common.LightSampling {
	return m.lightSampling
}

func (m *material) GeometrySampling() common.GeometrySampling {
	return m.geometrySampling
}

func (m *material) TextureModes() common.TextureModes {
	return m.textureModes
}

func (m *material) MaterialMode() common.MaterialMode {
	return m.materialMode
}

func (m *material) Texture() *common.ImportedTexture {
	return m.texture
}

func (m *material) Mask() *common.ImportedTexture {
	return m.mask
}

func (m *material) DoubleSided() bool {
	return m.materialMode == common.MaterialModeDouble
}

func (m *material) Transparent() bool {
	return m.color[3] < 1 || m.mask != nil
}

func (m *material) PipelineKey() string {
	return m.pipelineKey
}

func (m *material) SetPipelineKey(key string) {
	m.pipelineKey = key
}

func (m *material) GPUParams() GPUMaterialParams {
	var flags uint32
	if m.texture != nil {
		flags |= MaterialFlagTextured
	}
	if m.mask != nil {
		flags |= MaterialFlagMasked
	}
	if m.DoubleSided() {
		flags |= MaterialFlagDoubleSided
	}
	if m.Transparent() {
		flags |= MaterialFlagTransparent
	}
	return GPUMaterialParams{
		Color:   m.color,
		Surface: [4]float32{m.ambient, m.diffuse, m.specular, 0},
		Flags: [4]uint32{
			uint32(m.lightSampling),
			uint32(m.geometrySampling),
			uint32(m.textureModes),
			flags,
		},
	}
}
