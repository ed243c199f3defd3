package loader

import (
	"fmt"
	"math"
	"strings"

	"cogentcore.org/core/math32"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// rwxState is the inheritable appearance and transform state active at a point of an RWX document.
// It is a plain value: assigning it takes a full snapshot, transform included.
type rwxState struct {
	color            [3]float32 // red, green, blue
	surface          [3]float32 // ambient, diffuse, specular
	opacity          float32
	lightSampling    common.LightSampling
	geometrySampling common.GeometrySampling
	textureModes     common.TextureModes
	materialMode     common.MaterialMode
	texture          string
	mask             string
	transform        math32.Matrix4
}

// defaultRWXState returns the state in effect at modelbegin.
func defaultRWXState() rwxState {
	return rwxState{
		opacity:          1,
		lightSampling:    common.LightSamplingFacet,
		geometrySampling: common.GeometrySamplingSolid,
		textureModes:     common.TextureModes(common.TextureModeLit),
		materialMode:     common.MaterialModeNone,
		transform:        *math32.Identity4(),
	}
}

// preMultiply composes delta in front of the cumulative transform: new = delta · existing.
func (s *rwxState) preMultiply(delta *math32.Matrix4) {
	s.transform = *delta.Mul(&s.transform)
}

// rotate applies an elemental rotation for each flagged axis, in X, Y, Z order.
// RWX angles turn clockwise when looking from the origin along the positive axis,
// which is the counter-clockwise turn math32 builds when seen from the positive axis:
// rotate 0 1 0 90 takes (1, 0, 0) to (0, 0, -1).
//
// Parameters:
//   - x, y, z: axis flags
//   - degrees: the clockwise rotation angle in degrees
func (s *rwxState) rotate(x, y, z bool, degrees float32) {
	theta := math32.DegToRad(degrees)
	var delta math32.Matrix4
	if x {
		delta.SetRotationX(theta)
		s.preMultiply(&delta)
	}
	if y {
		delta.SetRotationY(theta)
		s.preMultiply(&delta)
	}
	if z {
		delta.SetRotationZ(theta)
		s.preMultiply(&delta)
	}
}

func (s *rwxState) scale(x, y, z float32) {
	var delta math32.Matrix4
	delta.SetScale(x, y, z)
	s.preMultiply(&delta)
}

func (s *rwxState) translate(x, y, z float32) {
	var delta math32.Matrix4
	delta.SetTranslation(x, y, z)
	s.preMultiply(&delta)
}

// signature returns the canonical appearance key used to deduplicate materials.
// Floats are rounded to three decimals so equal-looking states always collide.
//
// Parameters:
//   - withTexture: also fold the texture and mask names into the key
//
// Returns:
//   - string: the signature
func (s *rwxState) signature(withTexture bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "color=%s,%s,%s", sigFloat(s.color[0]), sigFloat(s.color[1]), sigFloat(s.color[2]))
	fmt.Fprintf(&b, ";surface=%s,%s,%s", sigFloat(s.surface[0]), sigFloat(s.surface[1]), sigFloat(s.surface[2]))
	fmt.Fprintf(&b, ";opacity=%s", sigFloat(s.opacity))
	fmt.Fprintf(&b, ";light=%s;geometry=%s", s.lightSampling, s.geometrySampling)
	fmt.Fprintf(&b, ";texturemodes=%s;materialmode=%s", s.textureModes, s.materialMode)
	if withTexture {
		fmt.Fprintf(&b, ";texture=%s;mask=%s", s.texture, s.mask)
	}
	return b.String()
}

// sigFloat formats v at fixed precision, folding negative zero into zero.
func sigFloat(v float32) string {
	r := math.Round(float64(v)*1000) / 1000
	if r == 0 {
		r = 0
	}
	return fmt.Sprintf("%.3f", r)
}
