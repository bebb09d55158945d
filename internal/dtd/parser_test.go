package dtd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

func TestParse_Flattening(t *testing.T) {
	grammar := `
<!ENTITY % base "name CDATA style CDATA">

<!ENTITY % a.Widget "%base; enabled (true|false) style (x|y)">
<!ENTITY % a.Button "%a.Widget; text CDATA enabled CDATA ">
<!ELEMENT button EMPTY>
<!ATTLIST button %a.Button;>
<!ELEMENT panel (ANY)>
<!ATTLIST panel %a.Widget;>
`
	s, err := Parse(strings.NewReader(grammar))
	require.NoError(t, err)

	assert.Equal(t, []string{"button", "panel"}, s.Tags())
	assert.True(t, s.HasTag("button"))
	assert.False(t, s.HasTag("label"))

	assert.Equal(t, []string{"enabled", "name", "style", "text"}, s.Attributes("button"))
	assert.Equal(t, []string{"enabled", "name", "style"}, s.Attributes("panel"))
	assert.Nil(t, s.Attributes("label"))

	typ, _ := s.AttributeType("button", "enabled")
	assert.Equal(t, types.CDATA, typ, "nearest fragment wins")
	typ, _ = s.AttributeType("panel", "style")
	assert.Equal(t, "(x|y)", typ)
	_, ok := s.AttributeType("panel", "text")
	assert.False(t, ok)

	content, _ := s.Content("panel")
	assert.Equal(t, types.ContentAny, content)
	content, _ = s.Content("button")
	assert.Equal(t, types.ContentEmpty, content)

	typeID, ok := s.TypeOf("button")
	assert.True(t, ok)
	assert.Equal(t, "a.Button", typeID)
}

func TestParse_ReturnsCopies(t *testing.T) {
	s, err := Parse(strings.NewReader(smallGrammar))
	require.NoError(t, err)

	tags := s.Tags()
	tags[0] = "mutated"
	attrs := s.Attributes("box")
	attrs[0] = "mutated"

	assert.Equal(t, "box", s.Tags()[0])
	assert.NotEqual(t, "mutated", s.Attributes("box")[0])
}

func TestParse_Errors(t *testing.T) {
	base := `<!ENTITY % base "name CDATA">` + "\n"
	tests := []struct {
		name    string
		grammar string
		line    int
	}{
		{name: "comment", grammar: base + "<!-- note -->\n", line: 2},
		{name: "unknown declaration", grammar: base + "<!NOTATION gif SYSTEM \"image/gif\">\n", line: 2},
		{name: "bad content model", grammar: "<!ELEMENT a (#PCDATA)>\n", line: 1},
		{name: "attribute without type", grammar: `<!ENTITY % x "%base; name">` + "\n", line: 1},
		{name: "bad attribute type", grammar: `<!ENTITY % x "name #IMPLIED">` + "\n", line: 1},
		{name: "empty token list", grammar: `<!ENTITY % x "name ()">` + "\n", line: 1},
		{name: "reference after attributes", grammar: base + `<!ENTITY % x "name CDATA %base;">` + "\n", line: 2},
		{name: "duplicate entity", grammar: base + base, line: 2},
		{name: "duplicate element", grammar: base + "<!ELEMENT a EMPTY>\n<!ATTLIST a %base;>\n<!ELEMENT a EMPTY>\n", line: 4},
		{name: "duplicate attlist", grammar: base + "<!ELEMENT a EMPTY>\n<!ATTLIST a %base;>\n<!ATTLIST a %base;>\n", line: 4},
		{name: "attlist before element", grammar: base + "<!ATTLIST a %base;>\n<!ELEMENT a EMPTY>\n", line: 2},
		{name: "element without attlist", grammar: base + "<!ELEMENT a EMPTY>\n", line: 2},
		{name: "undefined chained entity", grammar: `<!ENTITY % x "%missing; name CDATA">` + "\n"},
		{name: "undefined attlist entity", grammar: base + "<!ELEMENT a EMPTY>\n<!ATTLIST a %missing;>\n"},
		{name: "cycle", grammar: `<!ENTITY % x "%y; a CDATA">` + "\n" + `<!ENTITY % y "%x; b CDATA">` + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(strings.NewReader(tt.grammar))
			require.Error(t, err)
			assert.Nil(t, s)
			assert.ErrorIs(t, err, types.ErrGrammarFormat)

			var syn *SyntaxError
			require.True(t, errors.As(err, &syn))
			if tt.line != 0 {
				assert.Equal(t, tt.line, syn.Line)
			}
			assert.NotEmpty(t, syn.Text)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	s, err := Parse(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Empty(t, s.Tags())
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(smallGrammar), 0o644))

	s, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"box", "widget"}, s.Tags())

	_, err = ParseFile(filepath.Join(t.TempDir(), "absent.dtd"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, types.ErrGrammarFormat)
}

func TestSyntaxError_Message(t *testing.T) {
	err := &SyntaxError{Line: 3, Text: "<!X>", Msg: "unrecognized declaration"}
	assert.Equal(t, `grammar line 3: unrecognized declaration: "<!X>"`, err.Error())

	err = &SyntaxError{Text: "%x;", Msg: "reference to undefined entity"}
	assert.Equal(t, `grammar: reference to undefined entity: "%x;"`, err.Error())
}

func TestDescribeType(t *testing.T) {
	tests := []struct {
		valueType string
		want      string
	}{
		{types.CDATA, "Type: String"},
		{"(true|false)", "Values: true, false"},
		{"(none|fill-width|fill-height)", "Values: none, fill-width, fill-height"},
		{"(solo)", "Values: solo"},
	}
	for _, tt := range tests {
		t.Run(tt.valueType, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeType(tt.valueType))
		})
	}
}
