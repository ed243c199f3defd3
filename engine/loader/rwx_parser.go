package loader

import (
	"log/slog"
	"strings"

	"cogentcore.org/core/base/keylist"

	"github.com/Carmen-Shannon/oxy-rwx/common"
)

// rwxParser holds every piece of mutable state used while reading one RWX document.
// A parser is used for a single document and then discarded.
type rwxParser struct {
	root      *rwxScope
	stack     []*rwxScope
	current   *rwxScope
	template  *rwxScope
	templates *keylist.List[string, *rwxScope]
	ended     bool

	line    int
	keyword string
	logger  *slog.Logger
}

// newRWXParser creates a parser with an empty scope tree and template registry.
func newRWXParser(logger *slog.Logger) *rwxParser {
	return &rwxParser{
		templates: keylist.New[string, *rwxScope](),
		logger:    logger,
	}
}

// parse feeds every line of text through the classifier and the directive handlers,
// then checks that the document closed cleanly.
//
// Parameters:
//   - text: the whole RWX document
//
// Returns:
//   - error: an *RWXParseError describing the first failure, or nil
func (p *rwxParser) parse(text string) error {
	for i, raw := range splitRWXLines(text) {
		p.line = i + 1
		l, err := rwxClassifyLine(raw)
		p.keyword = l.Keyword
		if err != nil {
			return p.errorf(ErrMalformedDirective, "numeric operand cannot be represented")
		}
		if l.Kind == rwxLineNone {
			if trimmed := strings.TrimSpace(raw); trimmed != "" && !strings.HasPrefix(trimmed, "#") {
				p.logger.Debug("skipping unrecognized rwx line", "line", p.line, "text", trimmed)
			}
			continue
		}
		if err := p.apply(l); err != nil {
			return err
		}
	}
	return p.finish()
}

// apply runs the handler for one classified directive.
func (p *rwxParser) apply(l rwxLine) error {
	if l.Kind == rwxLineModelBegin {
		if p.root != nil {
			return p.errorf(ErrUnbalancedScope, "object is already open")
		}
		p.root = newRWXScope(rwxScopeGroup, "", defaultRWXState())
		p.stack = []*rwxScope{p.root}
		p.current = p.root
		return nil
	}
	if p.root == nil {
		return p.errorf(ErrUnbalancedScope, "directive before modelbegin")
	}
	if p.ended {
		return p.errorf(ErrUnbalancedScope, "directive after modelend")
	}

	switch l.Kind {
	case rwxLineModelEnd:
		if p.template != nil {
			return p.errorf(ErrUnbalancedScope, "proto %q is still open", p.template.name)
		}
		if open := len(p.stack) - 1; open > 0 {
			return p.errorf(ErrUnbalancedScope, "%d clump(s) still open", open)
		}
		p.ended = true

	case rwxLineClumpBegin:
		if p.current.kind == rwxScopeTemplate {
			return p.errorf(ErrUnbalancedScope, "clumpbegin inside proto %q", p.template.name)
		}
		child := p.top().addChild(p.current.state)
		p.stack = append(p.stack, child)
		p.current = child

	case rwxLineClumpEnd:
		if p.current.kind == rwxScopeTemplate {
			return p.errorf(ErrUnbalancedScope, "clumpend inside proto %q", p.template.name)
		}
		if len(p.stack) == 1 {
			return p.errorf(ErrUnbalancedScope, "clumpend without matching clumpbegin")
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.current = p.top()

	case rwxLineProtoBegin:
		if p.template != nil {
			return p.errorf(ErrUnbalancedScope, "protobegin %q inside proto %q", l.Name, p.template.name)
		}
		t := newRWXScope(rwxScopeTemplate, l.Name, p.current.state)
		p.templates.Set(l.Name, t)
		p.template = t
		p.current = t

	case rwxLineProtoEnd:
		if p.template == nil {
			return p.errorf(ErrUnbalancedScope, "protoend without matching protobegin")
		}
		p.template = nil
		p.current = p.root

	case rwxLineProtoInstance:
		t, ok := p.templates.AtTry(l.Name)
		if !ok {
			return p.errorf(ErrUndefinedTemplate, "proto %q is not defined", l.Name)
		}
		if err := p.current.instantiate(t); err != nil {
			return err
		}

	case rwxLineVertex:
		v := rwxVertex{position: [3]float32{l.Floats[0], l.Floats[1], l.Floats[2]}}
		if l.HasUV {
			v.uv = [2]float32{l.Floats[3], l.Floats[4]}
		}
		p.current.vertices = append(p.current.vertices, v)

	case rwxLineTriangle, rwxLineQuad:
		kind := rwxShapeTriangle
		if l.Kind == rwxLineQuad {
			kind = rwxShapeQuad
		}
		p.current.shapes = append(p.current.shapes, rwxShape{
			kind:    kind,
			indices: zeroBased(l.Ints),
			state:   p.current.state,
			line:    p.line,
		})

	case rwxLinePolygon:
		shape, err := newRWXPolygon(zeroBased(l.Ints), p.current.state, p.line)
		if err != nil {
			return p.errorf(err, "polygon has fewer than 3 distinct indices")
		}
		p.current.shapes = append(p.current.shapes, shape)

	default:
		p.applyState(l, &p.current.state)
	}
	return nil
}

// applyState handles directives that only mutate the current render state.
func (p *rwxParser) applyState(l rwxLine, s *rwxState) {
	f := l.Floats
	switch l.Kind {
	case rwxLineTexture:
		s.texture = l.Name
		s.mask = l.Mask
	case rwxLineColor:
		s.color = [3]float32{f[0], f[1], f[2]}
	case rwxLineOpacity:
		s.opacity = f[0]
	case rwxLineTransform:
		var vals [16]float32
		copy(vals[:], f)
		s.transform = common.Matrix4FromColumnMajor(vals)
	case rwxLineIdentity:
		s.transform.SetIdentity()
	case rwxLineScale:
		s.scale(f[0], f[1], f[2])
	case rwxLineRotate:
		s.rotate(f[0] != 0, f[1] != 0, f[2] != 0, f[3])
	case rwxLineTranslate:
		s.translate(f[0], f[1], f[2])
	case rwxLineSurface:
		s.surface = [3]float32{f[0], f[1], f[2]}
	case rwxLineAmbient:
		s.surface[0] = f[0]
	case rwxLineDiffuse:
		s.surface[1] = f[0]
	case rwxLineSpecular:
		s.surface[2] = f[0]
	case rwxLineLightSampling:
		switch l.Words[0] {
		case "facet":
			s.lightSampling = common.LightSamplingFacet
		case "vertex":
			s.lightSampling = common.LightSamplingVertex
		default:
			p.skip(l.Words[0])
		}
	case rwxLineGeometrySampling:
		switch l.Words[0] {
		case "pointcloud":
			s.geometrySampling = common.GeometrySamplingPointCloud
		case "wireframe":
			s.geometrySampling = common.GeometrySamplingWireframe
		case "solid":
			s.geometrySampling = common.GeometrySamplingSolid
		default:
			p.skip(l.Words[0])
		}
	case rwxLineTextureModes:
		var modes common.TextureModes
		for _, w := range l.Words {
			if mode, ok := parseTextureMode(w); ok {
				modes = modes.With(mode)
			} else if w != "null" && w != "none" {
				p.skip(w)
			}
		}
		s.textureModes = modes
	case rwxLineAddTextureMode, rwxLineRemoveTextureMode:
		mode, ok := parseTextureMode(l.Words[0])
		if !ok {
			p.skip(l.Words[0])
			return
		}
		if l.Kind == rwxLineAddTextureMode {
			s.textureModes = s.textureModes.With(mode)
		} else {
			s.textureModes = s.textureModes.Without(mode)
		}
	case rwxLineMaterialModes:
		s.materialMode = common.MaterialModeNone
		for _, w := range l.Words {
			if mode, ok := parseMaterialMode(w); ok {
				s.materialMode = mode
			} else {
				p.skip(w)
			}
		}
	case rwxLineAddMaterialMode:
		if mode, ok := parseMaterialMode(l.Words[0]); ok {
			s.materialMode = mode
		} else {
			p.skip(l.Words[0])
		}
	case rwxLineRemoveMaterialMode:
		if mode, ok := parseMaterialMode(l.Words[0]); ok {
			if s.materialMode == mode {
				s.materialMode = common.MaterialModeNone
			}
		} else {
			p.skip(l.Words[0])
		}
	}
}

// finish validates the scope structure once every line has been read.
func (p *rwxParser) finish() error {
	p.line, p.keyword = 0, ""
	switch {
	case p.root == nil:
		return p.errorf(ErrUnbalancedScope, "document has no modelbegin")
	case p.template != nil:
		return p.errorf(ErrUnbalancedScope, "proto %q is never closed", p.template.name)
	case len(p.stack) > 1:
		return p.errorf(ErrUnbalancedScope, "%d clump(s) are never closed", len(p.stack)-1)
	}
	return nil
}

func (p *rwxParser) top() *rwxScope {
	return p.stack[len(p.stack)-1]
}

func (p *rwxParser) skip(word string) {
	p.logger.Debug("ignoring unknown rwx mode", "line", p.line, "directive", p.keyword, "mode", word)
}

func (p *rwxParser) errorf(sentinel error, format string, args ...any) error {
	return rwxErrorf(p.line, p.keyword, sentinel, format, args...)
}

func parseTextureMode(word string) (common.TextureMode, bool) {
	switch word {
	case "lit":
		return common.TextureModeLit, true
	case "foreshorten":
		return common.TextureModeForeshorten, true
	case "filter":
		return common.TextureModeFilter, true
	}
	return 0, false
}

func parseMaterialMode(word string) (common.MaterialMode, bool) {
	switch word {
	case "none":
		return common.MaterialModeNone, true
	case "null":
		return common.MaterialModeNull, true
	case "double":
		return common.MaterialModeDouble, true
	}
	return 0, false
}

// zeroBased converts 1-based file indices to 0-based scope indices.
func zeroBased(ids []int) []int {
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = id - 1
	}
	return out
}

// splitRWXLines splits text on \n, \r\n or a bare \r, keeping empty lines so line numbers stay exact.
func splitRWXLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
