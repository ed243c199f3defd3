package triangulate

import (
	"testing"

	"github.com/hajimehoshi/go-libtess2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTessellator(t *testing.T) {
	tests := []struct {
		name      string
		contour   [][2]float32
		area      float32
		triangles int
	}{
		{
			name:      "convex square",
			contour:   [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
			area:      1,
			triangles: 2,
		},
		{
			name:      "clockwise square",
			contour:   [][2]float32{{0, 0}, {0, 1}, {1, 1}, {1, 0}},
			area:      -1,
			triangles: 2,
		},
		{
			name:      "concave L",
			contour:   [][2]float32{{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2}},
			area:      3,
			triangles: 4,
		},
		{
			name:      "closing duplicate",
			contour:   [][2]float32{{0, 0}, {1, 0}, {0, 1}, {0, 0}},
			area:      0.5,
			triangles: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, tris, err := NewTessellator().Triangulate(tt.contour)
			require.NoError(t, err)
			assert.Len(t, tris, tt.triangles)
			assert.InDelta(t, tt.area, totalArea(points, tris), 1e-5)
			for _, tri := range tris {
				assert.Equal(t, tt.area > 0, triangleArea(points, tri) > 0, "triangles keep the contour winding")
			}
		})
	}
}

func TestTessellatorDegenerate(t *testing.T) {
	contours := [][][2]float32{
		{{0, 0}, {1, 1}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{1, 1}, {1, 1}, {1, 1}, {1, 1}},
	}
	for _, contour := range contours {
		_, _, err := NewTessellator().Triangulate(contour)
		assert.ErrorIs(t, err, ErrDegenerateContour)
	}
}

func TestWithWindingRule(t *testing.T) {
	tess := NewTessellator(WithWindingRule(libtess2.WindingRuleNonzero))
	assert.Equal(t, libtess2.WindingRuleNonzero, tess.(*tessellator).windingRule)

	points, tris, err := tess.Triangulate([][2]float32{{0, 0}, {4, 0}, {4, 4}, {0, 4}})
	require.NoError(t, err)
	assert.InDelta(t, 16, totalArea(points, tris), 1e-5)
}
