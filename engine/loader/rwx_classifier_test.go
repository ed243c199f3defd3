package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want rwxLine
	}{
		{
			name: "vertex",
			raw:  "vertex 1 2 3",
			want: rwxLine{Kind: rwxLineVertex, Keyword: "vertex", Floats: []float32{1, 2, 3}},
		},
		{
			name: "vertex with uv, tabs, case and comment",
			raw:  "\tVertexExt 1 -2.5 .5 UV 0.25 1 # corner",
			want: rwxLine{Kind: rwxLineVertex, Keyword: "vertexext", Floats: []float32{1, -2.5, 0.5, 0.25, 1}, HasUV: true},
		},
		{
			name: "vertex with incomplete uv",
			raw:  "vertex 1 2 3 uv 0.5",
			want: rwxLine{Kind: rwxLineVertex, Keyword: "vertex", Floats: []float32{1, 2, 3}},
		},
		{
			name: "triangle",
			raw:  "triangle 1 2 3",
			want: rwxLine{Kind: rwxLineTriangle, Keyword: "triangle", Ints: []int{1, 2, 3}},
		},
		{
			name: "quad ext with tag",
			raw:  "quadext 4 3 2 1 tag 7",
			want: rwxLine{Kind: rwxLineQuad, Keyword: "quadext", Ints: []int{4, 3, 2, 1}},
		},
		{
			name: "polygon keeps closing index",
			raw:  "polygon 4 1 2 3 1",
			want: rwxLine{Kind: rwxLinePolygon, Keyword: "polygon", Ints: []int{1, 2, 3, 1}},
		},
		{
			name: "polygon shorter than its count",
			raw:  "polygon 5 1 2 3",
			want: rwxLine{Kind: rwxLinePolygon, Keyword: "polygon", Ints: []int{1, 2, 3}},
		},
		{
			name: "texture with mask",
			raw:  "texture wood mask woodmask",
			want: rwxLine{Kind: rwxLineTexture, Keyword: "texture", Name: "wood", Mask: "woodmask"},
		},
		{
			name: "texture null",
			raw:  "Texture NULL",
			want: rwxLine{Kind: rwxLineTexture, Keyword: "texture"},
		},
		{
			name: "texture name stops at extension",
			raw:  "texture wood.jpg",
			want: rwxLine{Kind: rwxLineTexture, Keyword: "texture", Name: "wood"},
		},
		{
			name: "rotate",
			raw:  "rotate 0 1 0 90",
			want: rwxLine{Kind: rwxLineRotate, Keyword: "rotate", Floats: []float32{0, 1, 0, 90}},
		},
		{
			name: "proto instance",
			raw:  "protoinstance door_1",
			want: rwxLine{Kind: rwxLineProtoInstance, Keyword: "protoinstance", Name: "door_1"},
		},
		{
			name: "texture modes",
			raw:  "TextureModes Lit Filter",
			want: rwxLine{Kind: rwxLineTextureModes, Keyword: "texturemodes", Words: []string{"lit", "filter"}},
		},
		{
			name: "bare keyword",
			raw:  "ClumpBegin",
			want: rwxLine{Kind: rwxLineClumpBegin, Keyword: "clumpbegin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := rwxClassifyLine(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyLineIgnored(t *testing.T) {
	lines := []string{
		"",
		"   ",
		"# only a comment",
		"frobnicate 1 2 3",
		"vertex 1 2",
		"vertex 1e3 2 3",
		"color 0.5 red 0.5",
		"triangle 1 -2 3",
		"protobegin",
		"lightsampling",
	}
	for _, raw := range lines {
		got, err := rwxClassifyLine(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, rwxLineNone, got.Kind, raw)
	}
}

func TestClassifyLineMalformed(t *testing.T) {
	huge := "1" + strings.Repeat("0", 50)
	lines := []string{
		"scale " + huge + " 1 1",
		"triangle " + strings.Repeat("9", 30) + " 1 2",
	}
	for _, raw := range lines {
		_, err := rwxClassifyLine(raw)
		assert.ErrorIs(t, err, ErrMalformedDirective, raw)
	}
}
