// Package triangulate turns simple 2D polygon boundaries into triangle sets.
package triangulate

import (
	"errors"
	"math"

	"cogentcore.org/core/math32"
)

// ErrDegenerateContour is returned when a contour has fewer than three distinct points.
var ErrDegenerateContour = errors.New("degenerate contour: fewer than 3 distinct points")

// Triangulator defines the interface for 2D polygon triangulation.
type Triangulator interface {
	// Triangulate covers a simple polygon boundary with triangles.
	// The boundary may be concave and may wind in either direction, but must not self-intersect.
	// The returned points need not keep the contour order, and implementations may merge
	// coincident points or add new ones. Triangles index into the returned points and wind
	// in the same direction as the contour.
	//
	// Parameters:
	//   - contour: the ordered polygon boundary
	//
	// Returns:
	//   - [][2]float32: the points the triangles index
	//   - [][3]int: the triangle indices
	//   - error: ErrDegenerateContour if the boundary encloses no area
	Triangulate(contour [][2]float32) ([][2]float32, [][3]int, error)
}

// earClipper is the implementation of the Triangulator interface using ear clipping.
type earClipper struct {
	epsilon float32
}

var _ Triangulator = &earClipper{}

// NewEarClipper creates a Triangulator that clips ears off the polygon until a single triangle remains.
// It never introduces new points and returns the contour points in their original order.
//
// Parameters:
//   - options: a variadic list of EarClipperOption functions
//
// Returns:
//   - Triangulator: the ear clipping triangulator
func NewEarClipper(options ...EarClipperOption) Triangulator {
	ec := &earClipper{
		epsilon: 1e-6,
	}
	for _, opt := range options {
		opt(ec)
	}
	return ec
}

func (ec *earClipper) Triangulate(contour [][2]float32) ([][2]float32, [][3]int, error) {
	points := make([][2]float32, len(contour))
	copy(points, contour)

	ring := ec.distinctRing(points)
	if len(ring) < 3 {
		return nil, nil, ErrDegenerateContour
	}

	area := signedArea(points, ring)
	if math32.Abs(area) <= ec.epsilon*ec.epsilon {
		return nil, nil, ErrDegenerateContour
	}
	ccw := area > 0

	// Work on a counter-clockwise ring and flip emitted triangles back for clockwise input.
	if !ccw {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}

	triangles := make([][3]int, 0, len(ring)-2)
	emit := func(a, b, c int) {
		if ccw {
			triangles = append(triangles, [3]int{a, b, c})
		} else {
			triangles = append(triangles, [3]int{a, c, b})
		}
	}

	for len(ring) > 3 {
		n := len(ring)
		clipped := false
		for i := 0; i < n; i++ {
			prev, cur, next := ring[(i+n-1)%n], ring[i], ring[(i+1)%n]
			if !ec.isEar(points, ring, prev, cur, next) {
				continue
			}
			emit(prev, cur, next)
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}
		if clipped {
			continue
		}

		// No proper ear: drop a collinear vertex if there is one, otherwise force a clip
		// at the most convex corner so the loop always terminates.
		if i := ec.collinearVertex(points, ring); i >= 0 {
			ring = append(ring[:i], ring[i+1:]...)
			continue
		}
		i := mostConvexVertex(points, ring)
		emit(ring[(i+n-1)%n], ring[i], ring[(i+1)%n])
		ring = append(ring[:i], ring[i+1:]...)
	}
	if cross(points[ring[0]], points[ring[1]], points[ring[2]]) > 0 {
		emit(ring[0], ring[1], ring[2])
	}
	if len(triangles) == 0 {
		return nil, nil, ErrDegenerateContour
	}

	return points, triangles, nil
}

// distinctRing returns the contour indices with consecutive near-duplicate points removed,
// including a closing point equal to the first.
func (ec *earClipper) distinctRing(points [][2]float32) []int {
	ring := make([]int, 0, len(points))
	for i := range points {
		if len(ring) > 0 && ec.near(points[ring[len(ring)-1]], points[i]) {
			continue
		}
		ring = append(ring, i)
	}
	for len(ring) > 1 && ec.near(points[ring[0]], points[ring[len(ring)-1]]) {
		ring = ring[:len(ring)-1]
	}
	return ring
}

// isEar reports whether the corner at cur is convex and contains no other ring vertex.
func (ec *earClipper) isEar(points [][2]float32, ring []int, prev, cur, next int) bool {
	a, b, c := points[prev], points[cur], points[next]
	if cross(a, b, c) <= ec.epsilon*ec.epsilon {
		return false
	}
	for _, idx := range ring {
		if idx == prev || idx == cur || idx == next {
			continue
		}
		p := points[idx]
		if ec.near(p, a) || ec.near(p, b) || ec.near(p, c) {
			continue
		}
		if pointInTriangle(p, a, b, c) {
			return false
		}
	}
	return true
}

// collinearVertex returns the ring position of a vertex whose corner has no area, or -1.
func (ec *earClipper) collinearVertex(points [][2]float32, ring []int) int {
	n := len(ring)
	for i := 0; i < n; i++ {
		a, b, c := points[ring[(i+n-1)%n]], points[ring[i]], points[ring[(i+1)%n]]
		if math32.Abs(cross(a, b, c)) <= ec.epsilon*ec.epsilon {
			return i
		}
	}
	return -1
}

func (ec *earClipper) near(a, b [2]float32) bool {
	return math32.Abs(a[0]-b[0]) <= ec.epsilon && math32.Abs(a[1]-b[1]) <= ec.epsilon
}

// mostConvexVertex returns the ring position with the largest positive corner cross product.
func mostConvexVertex(points [][2]float32, ring []int) int {
	n := len(ring)
	best, bestCross := 0, float32(-math.MaxFloat32)
	for i := 0; i < n; i++ {
		c := cross(points[ring[(i+n-1)%n]], points[ring[i]], points[ring[(i+1)%n]])
		if c > bestCross {
			best, bestCross = i, c
		}
	}
	return best
}

// signedArea returns twice the signed area of the ring; positive for counter-clockwise.
func signedArea(points [][2]float32, ring []int) float32 {
	var sum float32
	n := len(ring)
	for i := 0; i < n; i++ {
		p, q := points[ring[i]], points[ring[(i+1)%n]]
		sum += p[0]*q[1] - q[0]*p[1]
	}
	return sum
}

// cross returns the z component of (b-a) x (c-b).
func cross(a, b, c [2]float32) float32 {
	return (b[0]-a[0])*(c[1]-b[1]) - (b[1]-a[1])*(c[0]-b[0])
}

// pointInTriangle reports whether p lies inside or on the edge of the counter-clockwise triangle abc.
func pointInTriangle(p, a, b, c [2]float32) bool {
	d1 := edgeSide(p, a, b)
	d2 := edgeSide(p, b, c)
	d3 := edgeSide(p, c, a)
	return d1 >= 0 && d2 >= 0 && d3 >= 0
}

func edgeSide(p, a, b [2]float32) float32 {
	return (b[0]-a[0])*(p[1]-a[1]) - (b[1]-a[1])*(p[0]-a[0])
}
