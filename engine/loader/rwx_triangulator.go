package loader

import (
	"cogentcore.org/core/math32"

	"github.com/Carmen-Shannon/oxy-rwx/engine/triangulate"
)

// rwxPolygonTriangulator turns polygon loops into triangles by projecting each loop onto
// its best-fit plane and handing the 2D boundary to a Triangulator.
type rwxPolygonTriangulator struct {
	triangulator triangulate.Triangulator
}

// triangulateLoops triangulates every pending loop of the assembler, appending the new
// vertices, uvs and triangles to its buffers.
//
// Parameters:
//   - a: the assembler holding the flat buffers and pending loops
//
// Returns:
//   - error: an *RWXParseError wrapping ErrDegenerateLoop for loops without a usable plane
func (pt *rwxPolygonTriangulator) triangulateLoops(a *rwxAssembler) error {
	for _, loop := range a.loops {
		if err := pt.triangulateLoop(a, loop); err != nil {
			return err
		}
	}
	a.loops = nil
	return nil
}

func (pt *rwxPolygonTriangulator) triangulateLoop(a *rwxAssembler, loop rwxLoop) error {
	n := len(loop.indices)
	points := make([]math32.Vector3, n)
	var centroid math32.Vector3
	for i, idx := range loop.indices {
		v := a.vertices[idx]
		points[i] = math32.Vec3(v[0], v[1], v[2])
		centroid = centroid.Add(points[i])
	}
	centroid = centroid.DivScalar(float32(n))

	normal := newellNormal(points)
	var extent float32
	for _, p := range points {
		extent = max(extent, p.Sub(centroid).Length())
	}
	length := normal.Length()
	if extent == 0 || length <= 1e-6*extent*extent {
		return rwxErrorf(loop.line, "polygon", ErrDegenerateLoop, "loop normal has near-zero magnitude")
	}
	normal = normal.DivScalar(length)

	var q math32.Quat
	q.SetFromUnitVectors(math32.Vec3(0, 0, 1), normal)
	xAxis := math32.Vec3(1, 0, 0).MulQuat(q)
	yAxis := xAxis.Cross(normal).Normal()

	contour := make([][2]float32, n)
	for i, p := range points {
		d := p.Sub(centroid)
		contour[i] = [2]float32{d.Dot(xAxis), d.Dot(yAxis)}
	}

	planar, tris, err := pt.triangulator.Triangulate(contour)
	if err != nil {
		return rwxErrorf(loop.line, "polygon", ErrDegenerateLoop, "%v", err)
	}

	// Returned points may be reordered, merged or new, so each takes the uv of the
	// closest loop vertex.
	base := uint32(len(a.vertices))
	for _, p := range planar {
		w := centroid.Add(xAxis.MulScalar(p[0])).Add(yAxis.MulScalar(p[1]))
		a.vertices = append(a.vertices, [3]float32{w.X, w.Y, w.Z})
		a.uvs = append(a.uvs, a.uvs[loop.indices[nearestPoint(contour, p)]])
	}
	for _, t := range tris {
		a.emit(base+uint32(t[0]), base+uint32(t[1]), base+uint32(t[2]), loop.material)
	}
	return nil
}

// newellNormal estimates the (unnormalized) normal of a closed loop with Newell's method.
// The result points toward the side from which the loop winds counter-clockwise.
func newellNormal(points []math32.Vector3) math32.Vector3 {
	var normal math32.Vector3
	for i, cur := range points {
		next := points[(i+1)%len(points)]
		normal.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		normal.Y += (cur.Z - next.Z) * (cur.X + next.X)
		normal.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return normal
}

// nearestPoint returns the index of the contour point closest to p.
func nearestPoint(contour [][2]float32, p [2]float32) int {
	best, bestDist := 0, float32(-1)
	for i, c := range contour {
		dx, dy := c[0]-p[0], c[1]-p[1]
		if d := dx*dx + dy*dy; bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
