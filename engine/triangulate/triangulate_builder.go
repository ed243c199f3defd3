package triangulate

import (
	"github.com/hajimehoshi/go-libtess2"
)

// EarClipperOption is a functional option for configuring the ear clipper via NewEarClipper.
type EarClipperOption func(*earClipper)

// WithEpsilon is an option builder that sets the distance under which two points are
// treated as the same point, and the corner area under which three points are collinear.
//
// Parameters:
//   - eps: the tolerance, must be positive
//
// Returns:
//   - EarClipperOption: a function that applies the epsilon option to an ear clipper
func WithEpsilon(eps float32) EarClipperOption {
	return func(ec *earClipper) {
		if eps > 0 {
			ec.epsilon = eps
		}
	}
}

// TessellatorOption is a functional option for configuring the libtess2 triangulator via NewTessellator.
type TessellatorOption func(*tessellator)

// WithWindingRule is an option builder that sets the rule deciding which regions of the
// contour are filled.
//
// Parameters:
//   - rule: the libtess2 winding rule, WindingRuleOdd by default
//
// Returns:
//   - TessellatorOption: a function that applies the winding rule option to a tessellator
func WithWindingRule(rule libtess2.WindingRule) TessellatorOption {
	return func(t *tessellator) {
		t.windingRule = rule
	}
}
