package loader

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
)

func decode(t *testing.T, doc string, options ...RWXOption) *RWXResult {
	t.Helper()
	result, err := DecodeRWXString(doc, options...)
	require.NoError(t, err)
	return result
}

const unitSquare = `modelbegin
clumpbegin
vertex 0 0 0
vertex 1 0 0
vertex 1 1 0
vertex 0 1 0
quad 1 2 3 4
clumpend
modelend
`

func TestDecodeUnitSquare(t *testing.T) {
	result := decode(t, unitSquare)

	assert.Len(t, result.Vertices, 4)
	assert.Len(t, result.UVs, 4)
	require.Len(t, result.Triangles, 2)
	assert.Equal(t, model.Triangle{Indices: [3]uint32{0, 1, 2}}, result.Triangles[0])
	assert.Equal(t, model.Triangle{Indices: [3]uint32{0, 2, 3}}, result.Triangles[1])
	require.Len(t, result.Materials, 1)
	assert.Equal(t, "material_0", result.Materials[0].Name)
}

func TestDecodeReader(t *testing.T) {
	result, err := DecodeRWX(strings.NewReader(strings.ReplaceAll(unitSquare, "\n", "\r\n")))
	require.NoError(t, err)
	assert.Len(t, result.Triangles, 2)
}

func TestDecodeRotateUsesClockwiseAngles(t *testing.T) {
	result := decode(t, `modelbegin
clumpbegin
rotate 0 1 0 90
vertex 1 0 0
clumpend
modelend`)

	require.Len(t, result.Vertices, 1)
	assert.InDeltaSlice(t, []float32{0, 0, -1}, result.Vertices[0][:], 1e-5)
}

func TestDecodeRotateAxisOrder(t *testing.T) {
	result := decode(t, `modelbegin
clumpbegin
rotate 1 1 0 90
vertex 0 0 1
clumpend
modelend`)

	var rx, ry math32.Matrix4
	rx.SetRotationX(math32.DegToRad(90))
	ry.SetRotationY(math32.DegToRad(90))
	want := math32.Vec3(0, 0, 1).MulMatrix4(ry.Mul(&rx))

	require.Len(t, result.Vertices, 1)
	assert.InDeltaSlice(t, []float32{want.X, want.Y, want.Z}, result.Vertices[0][:], 1e-5)
	assert.InDeltaSlice(t, []float32{0, -1, 0}, result.Vertices[0][:], 1e-5, "X applies first, then Y")
}

func TestDecodeTransformComposition(t *testing.T) {
	result := decode(t, `modelbegin
clumpbegin
vertex 1 1 1
translate 1 0 0
scale 2 2 2
clumpbegin
vertex 1 1 1
transform 1 0 0 0  0 1 0 0  0 0 1 0  0 0 7 1
clumpend
clumpbegin
vertex 1 1 1
identity
clumpend
clumpend
modelend`)

	require.Len(t, result.Vertices, 3)
	// Scale is pre-multiplied onto the translation: scaled after translating.
	assert.InDeltaSlice(t, []float32{4, 2, 2}, result.Vertices[0][:], 1e-5, "declared before the transform directives of its scope")
	assert.InDeltaSlice(t, []float32{1, 1, 8}, result.Vertices[1][:], 1e-5, "transform replaces the inherited matrix")
	assert.InDeltaSlice(t, []float32{1, 1, 1}, result.Vertices[2][:], 1e-5)
}

func TestDecodeTraversalOrder(t *testing.T) {
	result := decode(t, `modelbegin
clumpbegin
vertex 1 0 0
clumpbegin
vertex 2 0 0
clumpbegin
vertex 3 0 0
clumpend
clumpend
clumpbegin
vertex 4 0 0
triangle 1 1 1
clumpend
clumpend
modelend`)

	var xs []float32
	for _, v := range result.Vertices {
		xs = append(xs, v[0])
	}
	assert.Equal(t, []float32{1, 2, 3, 4}, xs)
	require.Len(t, result.Triangles, 1)
	assert.Equal(t, [3]uint32{3, 3, 3}, result.Triangles[0].Indices, "face indices shift by the vertices emitted before their scope")
}

func TestDecodeWithoutClumpIsEmpty(t *testing.T) {
	result := decode(t, "modelbegin\nvertex 0 0 0\nmodelend\n")
	assert.Empty(t, result.Vertices)
	assert.Empty(t, result.Triangles)
	assert.Empty(t, result.Materials)
}

func TestDecodeUVs(t *testing.T) {
	result := decode(t, `modelbegin
clumpbegin
vertex 0 0 0 uv 0.25 0.75
vertex 1 0 0
clumpend
modelend`)

	assert.Equal(t, [][2]float32{{0.25, 0.75}, {0, 0}}, result.UVs)
}

func TestDecodeMaterialDeduplication(t *testing.T) {
	base := []string{"color 0.5 0.5 0.5", "surface 0.1 0.2 0.3", "opacity 1"}
	tests := []struct {
		name   string
		change string
	}{
		{name: "color", change: "color 0.5 0.5 0.6"},
		{name: "surface", change: "ambient 0.4"},
		{name: "opacity", change: "opacity 0.5"},
		{name: "light sampling", change: "lightsampling vertex"},
		{name: "geometry sampling", change: "geometrysampling wireframe"},
		{name: "texture modes", change: "addtexturemode filter"},
		{name: "material mode", change: "materialmode double"},
	}

	doc := func(between ...string) string {
		lines := []string{"modelbegin", "clumpbegin", "vertex 0 0 0", "vertex 1 0 0", "vertex 0 1 0"}
		lines = append(lines, base...)
		lines = append(lines, "triangle 1 2 3")
		lines = append(lines, between...)
		lines = append(lines, "triangle 1 3 2", "clumpend", "modelend")
		return strings.Join(lines, "\n")
	}

	t.Run("identical state", func(t *testing.T) {
		result := decode(t, doc("color 0.5 0.5 0.5"))
		require.Len(t, result.Materials, 1)
		assert.Equal(t, result.Triangles[0].MaterialIndex, result.Triangles[1].MaterialIndex)
	})

	t.Run("rounding", func(t *testing.T) {
		result := decode(t, doc("color 0.5001 0.5 0.4999"))
		assert.Len(t, result.Materials, 1)
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := decode(t, doc(tt.change))
			require.Len(t, result.Materials, 2)
			assert.Equal(t, 0, result.Triangles[0].MaterialIndex)
			assert.Equal(t, 1, result.Triangles[1].MaterialIndex)
			assert.NotEqual(t, result.Materials[0].Signature, result.Materials[1].Signature)
		})
	}
}

func TestDecodeTextureSignature(t *testing.T) {
	doc := `modelbegin
clumpbegin
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
texture stone
triangle 1 2 3
texture grass mask grassmask
triangle 1 3 2
clumpend
modelend`

	result := decode(t, doc)
	require.Len(t, result.Materials, 1, "texture names stay out of the signature by default")
	require.NotNil(t, result.Materials[0].Texture)
	assert.Equal(t, "stone", result.Materials[0].Texture.Name)
	assert.Nil(t, result.Materials[0].Mask)

	result = decode(t, doc, WithRWXTextureSignature(true))
	require.Len(t, result.Materials, 2)
	assert.Equal(t, "grass", result.Materials[1].Texture.Name)
	require.NotNil(t, result.Materials[1].Mask)
	assert.Equal(t, "grassmask", result.Materials[1].Mask.Name)
}

func TestDecodePolygonInTiltedPlane(t *testing.T) {
	origin := math32.Vec3(3, -2, 5)
	u := math32.Vec3(1, 1, 0).Normal()
	v := math32.Vec3(-1, 1, 2).Normal()
	normal := u.Cross(v)

	var b strings.Builder
	b.WriteString("modelbegin\nclumpbegin\n")
	const sides = 5
	for i := 0; i < sides; i++ {
		angle := 2 * math32.Pi * float32(i) / sides
		p := origin.Add(u.MulScalar(math32.Cos(angle))).Add(v.MulScalar(math32.Sin(angle)))
		fmt.Fprintf(&b, "vertex %.6f %.6f %.6f uv %d 0\n", p.X, p.Y, p.Z, i)
	}
	b.WriteString("polygon 6 1 2 3 4 5 1\nclumpend\nmodelend\n")

	result := decode(t, b.String())
	require.Len(t, result.Vertices, 2*sides, "triangulated loops append their own vertices")
	require.Len(t, result.Triangles, sides-2)

	for i := sides; i < 2*sides; i++ {
		nearest, best := 0, float32(-1)
		for j := 0; j < sides; j++ {
			d := math32.Vec3(result.Vertices[i][0], result.Vertices[i][1], result.Vertices[i][2]).
				DistanceTo(math32.Vec3(result.Vertices[j][0], result.Vertices[j][1], result.Vertices[j][2]))
			if best < 0 || d < best {
				nearest, best = j, d
			}
		}
		assert.Less(t, best, float32(1e-4), "loop vertices are reproduced in place")
		assert.Equal(t, result.UVs[nearest], result.UVs[i], "uvs follow their loop vertex")
	}
	for _, tri := range result.Triangles {
		var pts [3]math32.Vector3
		for k, idx := range tri.Indices {
			require.GreaterOrEqual(t, idx, uint32(sides))
			pts[k] = math32.Vec3(result.Vertices[idx][0], result.Vertices[idx][1], result.Vertices[idx][2])
			assert.InDelta(t, 0, pts[k].Sub(origin).Dot(normal), 1e-4, "vertex must stay in the polygon plane")
		}
		triNormal := pts[1].Sub(pts[0]).Cross(pts[2].Sub(pts[0]))
		assert.Greater(t, triNormal.Dot(normal), float32(0), "triangle must face along the loop normal")
	}
}

func TestDecodeDegenerateLoop(t *testing.T) {
	_, err := DecodeRWXString(`modelbegin
clumpbegin
vertex 0 0 0
vertex 1 0 0
vertex 2 0 0
polygon 3 1 2 3
clumpend`)
	require.ErrorIs(t, err, ErrDegenerateLoop)
	var perr *RWXParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 6, perr.Line)
}

func TestDecodeIndexOutOfRange(t *testing.T) {
	result, err := DecodeRWXString(`modelbegin
clumpbegin
vertex 0 0 0
vertex 1 0 0
vertex 0 1 0
triangle 1 2 9
clumpend
modelend`)
	assert.Nil(t, result, "failures never expose a partial result")
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Contains(t, err.Error(), "rwx line 6 (triangle)")
}

type fanTriangulator struct {
	calls int
}

func (f *fanTriangulator) Triangulate(contour [][2]float32) ([][2]float32, [][3]int, error) {
	f.calls++
	tris := make([][3]int, 0, len(contour)-2)
	for i := 1; i+1 < len(contour); i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return contour, tris, nil
}

func TestDecodeWithTriangulator(t *testing.T) {
	fan := &fanTriangulator{}
	result := decode(t, `modelbegin
clumpbegin
vertex 0 0 0
vertex 1 0 0
vertex 1 1 0
vertex 0 1 0
polygon 4 1 2 3 4
polygon 3 1 2 3
clumpend
modelend`, WithRWXTriangulator(fan))

	assert.Equal(t, 2, fan.calls)
	assert.Len(t, result.Triangles, 3)
	assert.Len(t, result.Vertices, 4+4+3)
}
