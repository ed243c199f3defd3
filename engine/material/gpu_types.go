package material

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUMaterialParamsSource is the canonical WGSL definition of the MaterialParams struct.
// Matches GPUMaterialParams layout exactly (48 bytes, std430 aligned).
//
//go:embed assets/material_params.wgsl
var GPUMaterialParamsSource string

// Flag bits packed into GPUMaterialParams.Flags[3].
const (
	MaterialFlagTextured uint32 = 1 << iota
	MaterialFlagMasked
	MaterialFlagDoubleSided
	MaterialFlagTransparent
)

// GPUMaterialParams is the GPU-aligned uniform describing an RWX material to a fragment shader.
// Matches the WGSL MaterialParams struct layout exactly (see GPUMaterialParamsSource).
// Size: 48 bytes (three vec4, std430 aligned).
type GPUMaterialParams struct {
	Color   [4]float32 // offset  0: RGB color + opacity (16 bytes)
	Surface [4]float32 // offset 16: ambient, diffuse, specular, unused (16 bytes)
	Flags   [4]uint32  // offset 32: light sampling, geometry sampling, texture modes, MaterialFlag bits (16 bytes)
}

// Size returns the size of the GPUMaterialParams struct in bytes.
//
// Returns:
//   - int: the size of the struct in bytes.
func (g *GPUMaterialParams) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUMaterialParams struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: 48-byte buffer ready for GPU upload.
func (g *GPUMaterialParams) Marshal() []byte {
	buf := make([]byte, 48)
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(g.Color[i]))
		binary.LittleEndian.PutUint32(buf[16+i*4:], math.Float32bits(g.Surface[i]))
		binary.LittleEndian.PutUint32(buf[32+i*4:], g.Flags[i])
	}
	return buf
}
