package common

import (
	"math"
	"unsafe"

	"cogentcore.org/core/math32"
)

// SliceToBytes converts any slice to a byte slice for GPU buffer uploads.
// Uses unsafe pointer operations to create a view into the original data.
// WARNING: The returned slice shares memory with the input - do not modify.
//
// Parameters:
//   - data: source slice of any type
//
// Returns:
//   - []byte: byte slice view of the input data, or nil if input is empty
func SliceToBytes[T any](data []T) []byte {
	if len(data) == 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	totalBytes := int(size) * len(data)
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), totalBytes)
}

// Vec3ToArray converts a math32 vector into a plain array.
func Vec3ToArray(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// ArrayToVec3 converts a plain array into a math32 vector.
func ArrayToVec3(a [3]float32) math32.Vector3 {
	return math32.Vec3(a[0], a[1], a[2])
}

// Matrix4FromColumnMajor builds a matrix from 16 values in column-major order,
// the layout used by model file transform directives.
//
// Parameters:
//   - vals: the matrix values, column by column
//
// Returns:
//   - math32.Matrix4: the matrix
func Matrix4FromColumnMajor(vals [16]float32) math32.Matrix4 {
	var m math32.Matrix4
	m.FromArray(vals[:], 0)
	return m
}

// BoundingBox computes the axis-aligned bounding box for positions.
// An empty input yields two zero vectors.
//
// Parameters:
//   - positions: the points to enclose
//
// Returns:
//   - [3]float32: the minimum corner
//   - [3]float32: the maximum corner
func BoundingBox(positions [][3]float32) ([3]float32, [3]float32) {
	if len(positions) == 0 {
		return [3]float32{}, [3]float32{}
	}

	bmin := [3]float32{
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
		float32(math.MaxFloat32),
	}
	bmax := [3]float32{
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
		-float32(math.MaxFloat32),
	}

	for _, pos := range positions {
		for j := 0; j < 3; j++ {
			if pos[j] < bmin[j] {
				bmin[j] = pos[j]
			}
			if pos[j] > bmax[j] {
				bmax[j] = pos[j]
			}
		}
	}

	return bmin, bmax
}
