package loader

import (
	"cogentcore.org/core/math32"
)

// rwxScopeKind tags a scope as a rendered group or a template definition.
type rwxScopeKind int

const (
	rwxScopeGroup rwxScopeKind = iota
	rwxScopeTemplate
)

// rwxShapeKind tags the face variant stored in an rwxShape.
type rwxShapeKind int

const (
	rwxShapeTriangle rwxShapeKind = iota
	rwxShapeQuad
	rwxShapePolygon
)

func (k rwxShapeKind) String() string {
	switch k {
	case rwxShapeTriangle:
		return "triangle"
	case rwxShapeQuad:
		return "quad"
	default:
		return "polygon"
	}
}

// rwxVertex is a scope-local vertex as declared in the document; uv stays (0, 0) when omitted.
type rwxVertex struct {
	position [3]float32
	uv       [2]float32
}

// rwxShape is one face with 0-based scope-local indices and the state it was declared under.
type rwxShape struct {
	kind    rwxShapeKind
	indices []int
	state   rwxState
	line    int
}

// newRWXPolygon builds a polygon shape, dropping a closing index equal to the first.
//
// Parameters:
//   - indices: the 0-based loop indices
//   - state: the state snapshot for the face
//   - line: the source line of the directive
//
// Returns:
//   - rwxShape: the polygon
//   - error: ErrDegenerateLoop if fewer than three indices remain
func newRWXPolygon(indices []int, state rwxState, line int) (rwxShape, error) {
	if n := len(indices); n > 1 && indices[0] == indices[n-1] {
		indices = indices[:n-1]
	}
	if len(indices) < 3 {
		return rwxShape{}, ErrDegenerateLoop
	}
	return rwxShape{kind: rwxShapePolygon, indices: indices, state: state, line: line}, nil
}

// clone returns a deep copy of the shape with every index shifted by offset.
func (s rwxShape) clone(offset int) rwxShape {
	indices := make([]int, len(s.indices))
	for i, idx := range s.indices {
		indices[i] = idx + offset
	}
	s.indices = indices
	return s
}

// rwxScope holds the vertices, faces and state of the object root, a clump, or a proto.
type rwxScope struct {
	kind     rwxScopeKind
	name     string
	state    rwxState
	vertices []rwxVertex
	shapes   []rwxShape
	children []*rwxScope
}

// newRWXScope creates a scope whose state is a snapshot of state.
func newRWXScope(kind rwxScopeKind, name string, state rwxState) *rwxScope {
	return &rwxScope{
		kind:  kind,
		name:  name,
		state: state,
	}
}

// addChild appends a new group scope starting from a snapshot of state.
func (s *rwxScope) addChild(state rwxState) *rwxScope {
	child := newRWXScope(rwxScopeGroup, "", state)
	s.children = append(s.children, child)
	return child
}

// instantiate appends the template's geometry to this scope.
// Template vertices are baked through the template's own transform, and template
// face indices are shifted past the vertices already present. Every template face
// must index the template's own vertices.
//
// Parameters:
//   - template: the template scope to instantiate
//
// Returns:
//   - error: an *RWXParseError wrapping ErrIndexOutOfRange, at the line of the offending template face
func (s *rwxScope) instantiate(template *rwxScope) error {
	for _, shape := range template.shapes {
		for _, idx := range shape.indices {
			if idx < 0 || idx >= len(template.vertices) {
				return rwxErrorf(shape.line, shape.kind.String(), ErrIndexOutOfRange,
					"index %d outside 1..%d of proto %q", idx+1, len(template.vertices), template.name)
			}
		}
	}

	offset := len(s.vertices)
	for _, shape := range template.shapes {
		s.shapes = append(s.shapes, shape.clone(offset))
	}
	for _, v := range template.vertices {
		p := math32.Vec3(v.position[0], v.position[1], v.position[2]).MulMatrix4(&template.state.transform)
		v.position = [3]float32{p.X, p.Y, p.Z}
		s.vertices = append(s.vertices, v)
	}
	return nil
}
