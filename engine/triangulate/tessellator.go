package triangulate

import (
	"fmt"

	"github.com/hajimehoshi/go-libtess2"
)

// tessellator is the implementation of the Triangulator interface on top of libtess2.
type tessellator struct {
	windingRule libtess2.WindingRule
}

var _ Triangulator = &tessellator{}

// NewTessellator creates a Triangulator backed by the libtess2 sweep-line tessellator.
// libtess2 merges coincident points, resolves touching edges, and may add points where
// edges cross, so its output points are not in contour order.
//
// Parameters:
//   - options: a variadic list of TessellatorOption functions
//
// Returns:
//   - Triangulator: the libtess2 triangulator
func NewTessellator(options ...TessellatorOption) Triangulator {
	t := &tessellator{
		windingRule: libtess2.WindingRuleOdd,
	}
	for _, opt := range options {
		opt(t)
	}
	return t
}

func (t *tessellator) Triangulate(contour [][2]float32) ([][2]float32, [][3]int, error) {
	if len(contour) < 3 {
		return nil, nil, ErrDegenerateContour
	}

	ring := make([]int, len(contour))
	for i := range ring {
		ring[i] = i
	}
	area := signedArea(contour, ring)
	if area == 0 {
		return nil, nil, ErrDegenerateContour
	}

	boundary := make(libtess2.Contour, len(contour))
	for i, p := range contour {
		boundary[i] = libtess2.Vertex{X: p[0], Y: p[1]}
	}
	elements, vertices, err := libtess2.Tesselate([]libtess2.Contour{boundary}, t.windingRule)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrDegenerateContour, err)
	}

	points := make([][2]float32, len(vertices))
	for i, v := range vertices {
		points[i] = [2]float32{v.X, v.Y}
	}

	triangles := make([][3]int, 0, len(elements)/3)
	for i := 0; i+2 < len(elements); i += 3 {
		a, b, c := elements[i], elements[i+1], elements[i+2]
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		tri := [3]int{a, b, c}
		// libtess2 winds its output against its own plane normal; match the contour instead.
		if (cross(points[a], points[b], points[c]) > 0) != (area > 0) {
			tri[1], tri[2] = tri[2], tri[1]
		}
		triangles = append(triangles, tri)
	}
	if len(triangles) == 0 {
		return nil, nil, ErrDegenerateContour
	}
	return points, triangles, nil
}
