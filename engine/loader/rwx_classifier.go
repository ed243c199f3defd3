package loader

import (
	"regexp"
	"strconv"
	"strings"
)

// rwxLineKind identifies the directive carried by a single RWX line.
type rwxLineKind int

const (
	rwxLineNone rwxLineKind = iota
	rwxLineModelBegin
	rwxLineModelEnd
	rwxLineClumpBegin
	rwxLineClumpEnd
	rwxLineProtoBegin
	rwxLineProtoEnd
	rwxLineProtoInstance
	rwxLineVertex
	rwxLineTriangle
	rwxLineQuad
	rwxLinePolygon
	rwxLineTexture
	rwxLineColor
	rwxLineOpacity
	rwxLineTransform
	rwxLineIdentity
	rwxLineScale
	rwxLineRotate
	rwxLineTranslate
	rwxLineSurface
	rwxLineAmbient
	rwxLineDiffuse
	rwxLineSpecular
	rwxLineLightSampling
	rwxLineGeometrySampling
	rwxLineTextureModes
	rwxLineAddTextureMode
	rwxLineRemoveTextureMode
	rwxLineMaterialModes
	rwxLineAddMaterialMode
	rwxLineRemoveMaterialMode
)

// rwxLine is the classified form of one RWX line.
type rwxLine struct {
	Kind    rwxLineKind
	Keyword string

	// Name is the template name for proto directives or the texture name for texture.
	// An empty texture name means "texture null".
	Name string
	Mask string

	Floats []float32
	Ints   []int
	HasUV  bool

	// Words holds mode keywords, lowercased.
	Words []string
}

// rwxKeywords maps each lowercase directive keyword to its line kind.
var rwxKeywords = map[string]rwxLineKind{
	"modelbegin":         rwxLineModelBegin,
	"modelend":           rwxLineModelEnd,
	"clumpbegin":         rwxLineClumpBegin,
	"clumpend":           rwxLineClumpEnd,
	"protobegin":         rwxLineProtoBegin,
	"protoend":           rwxLineProtoEnd,
	"protoinstance":      rwxLineProtoInstance,
	"vertex":             rwxLineVertex,
	"vertexext":          rwxLineVertex,
	"triangle":           rwxLineTriangle,
	"triangleext":        rwxLineTriangle,
	"quad":               rwxLineQuad,
	"quadext":            rwxLineQuad,
	"polygon":            rwxLinePolygon,
	"polygonext":         rwxLinePolygon,
	"texture":            rwxLineTexture,
	"color":              rwxLineColor,
	"opacity":            rwxLineOpacity,
	"transform":          rwxLineTransform,
	"identity":           rwxLineIdentity,
	"scale":              rwxLineScale,
	"rotate":             rwxLineRotate,
	"translate":          rwxLineTranslate,
	"surface":            rwxLineSurface,
	"ambient":            rwxLineAmbient,
	"diffuse":            rwxLineDiffuse,
	"specular":           rwxLineSpecular,
	"lightsampling":      rwxLineLightSampling,
	"geometrysampling":   rwxLineGeometrySampling,
	"texturemode":        rwxLineTextureModes,
	"texturemodes":       rwxLineTextureModes,
	"addtexturemode":     rwxLineAddTextureMode,
	"removetexturemode":  rwxLineRemoveTextureMode,
	"materialmode":       rwxLineMaterialModes,
	"materialmodes":      rwxLineMaterialModes,
	"addmaterialmode":    rwxLineAddMaterialMode,
	"removematerialmode": rwxLineRemoveMaterialMode,
}

// rwxFloatCounts is the number of float operands each float-payload directive needs.
var rwxFloatCounts = map[rwxLineKind]int{
	rwxLineVertex:    3,
	rwxLineColor:     3,
	rwxLineOpacity:   1,
	rwxLineTransform: 16,
	rwxLineScale:     3,
	rwxLineRotate:    4,
	rwxLineTranslate: 3,
	rwxLineSurface:   3,
	rwxLineAmbient:   1,
	rwxLineDiffuse:   1,
	rwxLineSpecular:  1,
}

var (
	rwxFloatPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)$`)
	rwxIndexPattern = regexp.MustCompile(`^[0-9]+$`)
	rwxNamePattern  = regexp.MustCompile(`^[A-Za-z0-9_\-]+`)
)

// rwxClassifyLine recognizes the directive on a raw RWX line and extracts its payload.
// Lines that match no directive grammar classify as rwxLineNone without error, so
// unknown or future directives are skipped.
//
// Parameters:
//   - raw: the line text without its terminator
//
// Returns:
//   - rwxLine: the classified line
//   - error: ErrMalformedDirective when a numeric token matches the grammar but cannot be converted
func rwxClassifyLine(raw string) (rwxLine, error) {
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	fields := strings.Fields(strings.ReplaceAll(raw, "\t", " "))
	if len(fields) == 0 {
		return rwxLine{}, nil
	}

	keyword := strings.ToLower(fields[0])
	kind, ok := rwxKeywords[keyword]
	if !ok {
		return rwxLine{}, nil
	}
	line := rwxLine{Kind: kind, Keyword: keyword}
	args := fields[1:]

	switch kind {
	case rwxLineModelBegin, rwxLineModelEnd, rwxLineClumpBegin, rwxLineClumpEnd, rwxLineProtoEnd, rwxLineIdentity:
		return line, nil

	case rwxLineProtoBegin, rwxLineProtoInstance:
		if len(args) == 0 {
			return rwxLine{}, nil
		}
		line.Name = rwxNamePattern.FindString(args[0])
		if line.Name == "" {
			return rwxLine{}, nil
		}
		return line, nil

	case rwxLineTexture:
		return classifyTexture(line, args)

	case rwxLineTriangle, rwxLineQuad:
		want := 3
		if kind == rwxLineQuad {
			want = 4
		}
		ints, matched, err := leadingInts(args, want)
		if !matched {
			return rwxLine{}, err
		}
		line.Ints = ints
		return line, err

	case rwxLinePolygon:
		return classifyPolygon(line, args)

	case rwxLineLightSampling, rwxLineGeometrySampling, rwxLineTextureModes, rwxLineAddTextureMode,
		rwxLineRemoveTextureMode, rwxLineMaterialModes, rwxLineAddMaterialMode, rwxLineRemoveMaterialMode:
		for _, a := range args {
			line.Words = append(line.Words, strings.ToLower(a))
		}
		if len(line.Words) == 0 && kind != rwxLineTextureModes && kind != rwxLineMaterialModes {
			return rwxLine{}, nil
		}
		return line, nil
	}

	floats, matched, err := leadingFloats(args, rwxFloatCounts[kind])
	if !matched {
		return rwxLine{}, err
	}
	line.Floats = floats
	if err != nil {
		return line, err
	}

	if kind == rwxLineVertex {
		rest := args[3:]
		if len(rest) >= 3 && strings.EqualFold(rest[0], "uv") {
			uv, ok, err := leadingFloats(rest[1:], 2)
			if err != nil {
				return line, err
			}
			if ok {
				line.Floats = append(line.Floats, uv...)
				line.HasUV = true
			}
		}
	}
	return line, nil
}

// classifyTexture extracts "texture <name>|null [mask <name>]".
func classifyTexture(line rwxLine, args []string) (rwxLine, error) {
	if len(args) == 0 {
		return rwxLine{}, nil
	}
	name := rwxNamePattern.FindString(args[0])
	if name == "" {
		return rwxLine{}, nil
	}
	if !strings.EqualFold(name, "null") {
		line.Name = name
	}
	if len(args) >= 3 && strings.EqualFold(args[1], "mask") {
		mask := rwxNamePattern.FindString(args[2])
		if !strings.EqualFold(mask, "null") {
			line.Mask = mask
		}
	}
	return line, nil
}

// classifyPolygon extracts "polygon <count> <i1> ... <in>". Missing trailing indices
// shorten the loop; extra tokens are ignored.
func classifyPolygon(line rwxLine, args []string) (rwxLine, error) {
	head, matched, err := leadingInts(args, 2)
	if err != nil {
		return line, err
	}
	if !matched {
		return rwxLine{}, nil
	}
	count := head[0]
	ids := args[1:]
	n := 0
	for n < len(ids) && n < count && rwxIndexPattern.MatchString(ids[n]) {
		n++
	}
	ints, _, err := leadingInts(ids, n)
	if err != nil {
		return line, err
	}
	line.Ints = ints
	return line, nil
}

// leadingInts converts the first n tokens as face indices.
// matched is false when fewer than n tokens follow the index grammar.
func leadingInts(tokens []string, n int) (vals []int, matched bool, err error) {
	if len(tokens) < n {
		return nil, false, nil
	}
	vals = make([]int, n)
	for i := 0; i < n; i++ {
		if !rwxIndexPattern.MatchString(tokens[i]) {
			return nil, false, nil
		}
	}
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(tokens[i])
		if err != nil {
			return nil, true, ErrMalformedDirective
		}
		vals[i] = v
	}
	return vals, true, nil
}

// leadingFloats converts the first n tokens as RWX numbers.
// matched is false when fewer than n tokens follow the number grammar.
func leadingFloats(tokens []string, n int) (vals []float32, matched bool, err error) {
	if len(tokens) < n {
		return nil, false, nil
	}
	for i := 0; i < n; i++ {
		if !rwxFloatPattern.MatchString(tokens[i]) {
			return nil, false, nil
		}
	}
	vals = make([]float32, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(tokens[i], 32)
		if err != nil {
			return nil, true, ErrMalformedDirective
		}
		vals[i] = float32(v)
	}
	return vals, true, nil
}
