package complete

import (
	"bytes"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sierra/internal/dtd"
	"github.com/mesh-intelligence/sierra/internal/metadata"
)

func builtinEngine(t *testing.T) (*Engine, *dtd.Schema) {
	t.Helper()
	var buf bytes.Buffer
	_, err := dtd.NewCompiler(metadata.Builtin()).Compile(&buf)
	require.NoError(t, err)
	s, err := dtd.Parse(&buf)
	require.NoError(t, err)
	return NewEngine(s), s
}

func texts(cs []Candidate) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Text
	}
	return out
}

func TestComplete_Scenarios(t *testing.T) {
	e, s := builtinEngine(t)

	tests := []struct {
		name     string
		text     string
		caret    int
		kind     Kind
		tag      string
		prefix   string
		contains []string
		excludes []string
		all      []string
	}{
		{
			name:     "bare open bracket lists every tag",
			text:     "<",
			caret:    1,
			kind:     TagName,
			contains: []string{"button", "label", "activity-indicator"},
			all:      s.Tags(),
		},
		{
			name:     "attributes after tag and space",
			text:     "<button ",
			caret:    8,
			kind:     AttributeName,
			tag:      "button",
			contains: []string{"name", "background"},
			all:      s.Attributes("button"),
		},
		{
			name:     "text area attributes",
			text:     "<text-area ",
			caret:    11,
			kind:     AttributeName,
			tag:      "text-area",
			contains: []string{"name", "background", "lineWrap"},
			excludes: []string{"tabLayoutPolicy"},
		},
		{
			name:     "attribute prefix",
			text:     "<button n",
			caret:    9,
			kind:     AttributeName,
			tag:      "button",
			prefix:   "n",
			contains: []string{"name"},
		},
		{
			name:     "tag prefix",
			text:     "<bu",
			caret:    3,
			kind:     TagName,
			prefix:   "bu",
			contains: []string{"button"},
		},
		{
			name:  "empty buffer",
			text:  "",
			caret: 0,
			kind:  None,
			all:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Analyze(tt.text, tt.caret)
			assert.Equal(t, tt.kind, ctx.Kind)
			assert.Equal(t, tt.tag, ctx.Tag)
			assert.Equal(t, tt.prefix, ctx.Prefix)

			got := texts(e.Complete(tt.text, tt.caret))
			assert.True(t, sort.StringsAreSorted(got))
			for _, c := range got {
				assert.True(t, HasPrefixFold(c, tt.prefix), c)
			}
			for _, want := range tt.contains {
				assert.Contains(t, got, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, got, unwanted)
			}
			if tt.all != nil {
				assert.Equal(t, tt.all, got)
			}
		})
	}
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		caret int
		want  Context
	}{
		{name: "caret before any tag", text: "hello <button", caret: 3, want: Context{Kind: None, TagStart: -1}},
		{name: "after closed tag", text: "<button/> ", caret: 10, want: Context{Kind: None, TagStart: -1}},
		{name: "inside second tag", text: "<row-panel>\n  <lab", caret: 18, want: Context{Kind: TagName, Prefix: "lab", TagStart: 14}},
		{name: "mid tag name", text: "<button", caret: 4, want: Context{Kind: TagName, Prefix: "bu", TagStart: 0}},
		{name: "after attribute value", text: `<button text="OK" `, caret: 18, want: Context{Kind: AttributeName, Tag: "button", TagStart: 0}},
		{name: "newline separates attributes", text: "<button\n\tfo", caret: 11, want: Context{Kind: AttributeName, Tag: "button", Prefix: "fo", TagStart: 0}},
		{name: "inside double quoted value", text: `<button text="O`, caret: 15, want: Context{Kind: None, TagStart: -1}},
		{name: "inside single quoted value", text: `<button text='a b`, caret: 17, want: Context{Kind: None, TagStart: -1}},
		{name: "apostrophe inside double quotes", text: `<button text="it's" `, caret: 20, want: Context{Kind: AttributeName, Tag: "button", TagStart: 0}},
		{name: "negative caret", text: "<", caret: -1, want: Context{Kind: None, TagStart: -1}},
		{name: "caret past end", text: "<", caret: 2, want: Context{Kind: None, TagStart: -1}},
		{name: "caret inside multibyte rune", text: "<b é", caret: 4, want: Context{Kind: None, TagStart: -1}},
		{name: "after multibyte rune", text: "<b é", caret: 5, want: Context{Kind: AttributeName, Tag: "b", Prefix: "é", TagStart: 0}},
		{name: "unicode space", text: "<b\u00a0n", caret: 5, want: Context{Kind: AttributeName, Tag: "b", Prefix: "n", TagStart: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Analyze(tt.text, tt.caret))
		})
	}
}

func TestComplete_NeverFails(t *testing.T) {
	e, _ := builtinEngine(t)

	inputs := []string{
		"",
		"<",
		"<<",
		"< ",
		"<unknown-tag ",
		"<button text=\"",
		"</bu",
		"<button>>",
		"text only",
		`<row-panel weight="1"><button n`,
	}
	for _, text := range inputs {
		for caret := -2; caret <= len(text)+2; caret++ {
			got := e.Complete(text, caret)
			require.NotNil(t, got, "%q@%d", text, caret)
			assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Text < got[j].Text }))
		}
	}
}

func TestComplete_UnknownTag(t *testing.T) {
	e, _ := builtinEngine(t)
	assert.Empty(t, e.Complete("<unknown-tag ", 13))
	assert.Empty(t, e.Complete("< ", 2))
}

func TestComplete_PrefixIsCaseInsensitive(t *testing.T) {
	e, _ := builtinEngine(t)

	upper := texts(e.Complete("<button N", 9))
	lower := texts(e.Complete("<button n", 9))
	assert.Equal(t, lower, upper)
	assert.Contains(t, upper, "name")

	got := texts(e.Complete("<text-area LINEW", 16))
	assert.Equal(t, []string{"lineWrap"}, got, "original casing is preserved")
}

func TestComplete_Idempotent(t *testing.T) {
	e, _ := builtinEngine(t)
	text := `<column-panel><text-field pla`
	first := e.Complete(text, len(text))
	second := e.Complete(text, len(text))
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"placeholder-text"}, texts(first))
}

func TestComplete_MonotonicNarrowing(t *testing.T) {
	e, _ := builtinEngine(t)

	prefixes := []string{"<", "<b", "<bu", "<but", "<button ", "<button b", "<button bo", "<button bor"}
	for i := 1; i < len(prefixes); i++ {
		prev, next := prefixes[i-1], prefixes[i]
		if Analyze(prev, len(prev)).Kind != Analyze(next, len(next)).Kind {
			continue
		}
		wider := texts(e.Complete(prev, len(prev)))
		narrower := texts(e.Complete(next, len(next)))
		assert.Subset(t, wider, narrower, "%q vs %q", prev, next)
	}
}

type fakeVocab struct {
	tags  []string
	attrs map[string][]string
}

func (f fakeVocab) Tags() []string { return f.tags }

func (f fakeVocab) HasTag(tag string) bool {
	_, ok := f.attrs[tag]
	return ok
}

func (f fakeVocab) Attributes(tag string) []string { return f.attrs[tag] }

func TestComplete_OrdinalSort(t *testing.T) {
	v := fakeVocab{
		tags:  []string{"zeta", "Beta", "alpha", "Zulu"},
		attrs: map[string][]string{"zeta": {"size", "Style", "style-class"}},
	}
	e := NewEngine(v)

	assert.Equal(t, []string{"Beta", "Zulu", "alpha", "zeta"}, texts(e.Complete("<", 1)))
	assert.Equal(t, []string{"Zulu", "zeta"}, texts(e.Complete("<z", 2)))
	assert.Equal(t, []string{"Style", "style-class"}, texts(e.Complete("<zeta st", 8)))
	assert.Empty(t, e.Complete("<Beta ", 6), "tag without attribute table")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "NONE", None.String())
	assert.Equal(t, "TAG_NAME", TagName.String())
	assert.Equal(t, "ATTRIBUTE_NAME", AttributeName.String())
	assert.Equal(t, "NONE", Kind(9).String())
}

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("placeholder-text", "PLACE"))
	assert.True(t, HasPrefixFold("name", ""))
	assert.False(t, HasPrefixFold("na", "name"))
	assert.False(t, HasPrefixFold(strings.Repeat("x", 3), "y"))
}

func TestHasPrefixFold_DifferentWidthFolds(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		prefix string
		want   bool
	}{
		{name: "kelvin sign prefix", s: "kelvin", prefix: "\u212a", want: true},
		{name: "kelvin sign in candidate", s: "\u212aelvin", prefix: "KE", want: true},
		{name: "long s prefix", s: "scale", prefix: "\u017fc", want: true},
		{name: "multi-byte exact", s: "größe", prefix: "GRÖ", want: true},
		{name: "mismatch after wide rune", s: "kelvin", prefix: "\u212ax", want: false},
		{name: "prefix longer in runes", s: "k", prefix: "\u212a\u212a", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasPrefixFold(tt.s, tt.prefix))
		})
	}
}

func TestComplete_WideFoldPrefix(t *testing.T) {
	e := NewEngine(fakeVocab{tags: []string{"kelvin-gauge", "label"}})
	got := e.Complete("<\u212a", len("<\u212a"))
	require.Len(t, got, 1)
	assert.Equal(t, "kelvin-gauge", got[0].Text)
}
