package loader

import (
	"cogentcore.org/core/math32"

	"github.com/Carmen-Shannon/oxy-rwx/engine/model"
)

// rwxLoop is a polygon boundary in flat vertex space awaiting triangulation.
type rwxLoop struct {
	indices  []uint32
	material int
	line     int
}

// rwxAssembler flattens a parsed scope tree into world-space vertex buffers,
// finished triangles and pending polygon loops.
type rwxAssembler struct {
	materials *rwxMaterialTable
	vertices  [][3]float32
	uvs       [][2]float32
	triangles []model.Triangle
	loops     []rwxLoop
}

func newRWXAssembler(materials *rwxMaterialTable) *rwxAssembler {
	return &rwxAssembler{materials: materials}
}

// assembleObject walks the group tree rooted at the first clump of the object.
// An object without clumps produces no geometry.
//
// Parameters:
//   - root: the object root scope
//
// Returns:
//   - error: an *RWXParseError wrapping ErrIndexOutOfRange for faces that index past their scope
func (a *rwxAssembler) assembleObject(root *rwxScope) error {
	if len(root.children) == 0 {
		return nil
	}
	return a.assemble(root.children[0])
}

// assemble emits the vertices and faces of scope, then recurses into its children.
// Vertices and faces come out of the same pass so every face is shifted by the
// offset its own vertices were written at.
func (a *rwxAssembler) assemble(scope *rwxScope) error {
	offset := uint32(len(a.vertices))
	for _, v := range scope.vertices {
		p := math32.Vec3(v.position[0], v.position[1], v.position[2]).MulMatrix4(&scope.state.transform)
		a.vertices = append(a.vertices, [3]float32{p.X, p.Y, p.Z})
		a.uvs = append(a.uvs, v.uv)
	}

	for i := range scope.shapes {
		shape := &scope.shapes[i]
		for _, idx := range shape.indices {
			if idx < 0 || idx >= len(scope.vertices) {
				return rwxErrorf(shape.line, shape.kind.String(), ErrIndexOutOfRange,
					"index %d outside 1..%d", idx+1, len(scope.vertices))
			}
		}
		global := make([]uint32, len(shape.indices))
		for j, idx := range shape.indices {
			global[j] = offset + uint32(idx)
		}
		material := a.materials.Resolve(&shape.state)

		switch shape.kind {
		case rwxShapeTriangle:
			a.emit(global[0], global[1], global[2], material)
		case rwxShapeQuad:
			a.emit(global[0], global[1], global[2], material)
			a.emit(global[0], global[2], global[3], material)
		case rwxShapePolygon:
			a.loops = append(a.loops, rwxLoop{indices: global, material: material, line: shape.line})
		}
	}

	for _, child := range scope.children {
		if err := a.assemble(child); err != nil {
			return err
		}
	}
	return nil
}

func (a *rwxAssembler) emit(i, j, k uint32, material int) {
	a.triangles = append(a.triangles, model.Triangle{
		Indices:       [3]uint32{i, j, k},
		MaterialIndex: material,
	})
}
