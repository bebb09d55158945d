package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeInfoBaseID(t *testing.T) {
	assert.Equal(t, RootType, TypeInfo{ID: "java.awt.Component"}.BaseID())
	assert.Equal(t, "java.awt.Component", TypeInfo{ID: "java.awt.Container", Base: "java.awt.Component"}.BaseID())
}

func TestTypeInfoValidate(t *testing.T) {
	t.Run("valid type", func(t *testing.T) {
		info := TypeInfo{
			ID:   "javax.swing.JTextArea",
			Base: "javax.swing.text.JTextComponent",
			Properties: []Property{
				{Name: "lineWrap", Type: ValueTypeBoolean},
				{Name: "rows", Type: ValueTypeInt},
			},
		}
		assert.NoError(t, info.Validate())
	})

	t.Run("root identity is rejected", func(t *testing.T) {
		assert.ErrorIs(t, TypeInfo{ID: RootType}.Validate(), ErrInvalidName)
	})

	t.Run("base fragment identity is rejected", func(t *testing.T) {
		assert.ErrorIs(t, TypeInfo{ID: BaseFragment}.Validate(), ErrInvalidName)
	})

	t.Run("identity with space is rejected", func(t *testing.T) {
		assert.ErrorIs(t, TypeInfo{ID: "x.My Widget"}.Validate(), ErrInvalidName)
	})

	t.Run("malformed base is rejected", func(t *testing.T) {
		assert.ErrorIs(t, TypeInfo{ID: "x.A", Base: "x;B"}.Validate(), ErrInvalidName)
	})

	t.Run("duplicate property name is rejected", func(t *testing.T) {
		info := TypeInfo{
			ID: "x.Dup",
			Properties: []Property{
				{Name: "text", Type: ValueTypeString},
				{Name: "text", Type: ValueTypeString},
			},
		}
		assert.ErrorIs(t, info.Validate(), ErrInvalidName)
	})

	t.Run("invalid property propagates", func(t *testing.T) {
		info := TypeInfo{ID: "x.Bad", Properties: []Property{{Name: "p", Type: "nope"}}}
		assert.ErrorIs(t, info.Validate(), ErrInvalidValueType)
	})
}

func TestAttributeKindString(t *testing.T) {
	assert.Equal(t, "CDATA", FreeText.String())
	assert.Equal(t, "boolean", BooleanEnum.String())
	assert.Equal(t, "tokens", TokenList.String())
	assert.Equal(t, "unknown", AttributeKind(42).String())
}

func TestValidName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"button", true},
		{"text-field", true},
		{"javax.swing.JButton", true},
		{"x.Outer$Inner", true},
		{"fill_width", true},
		{"größe", true},
		{"", false},
		{"my tag", false},
		{"tab\tstop", false},
		{"a\u00a0b", false},
		{"line\nbreak", false},
		{"%entity;", false},
		{"a;b", false},
		{"a|b", false},
		{"(a)", false},
		{`say"hi"`, false},
		{"<tag>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidName(tt.name))
		})
	}
}

func TestDomainValidate(t *testing.T) {
	tests := []struct {
		name    string
		domain  Domain
		wantErr bool
	}{
		{"derived tokens", Domain{Key: "x.Mode", Constants: []Constant{{Name: "FILL_WIDTH"}, {Name: "NONE"}}}, false},
		{"explicit tokens", Domain{Key: "x.Align", Constants: []Constant{{Name: "LEFT", Token: "left"}}}, false},
		{"empty key", Domain{Constants: []Constant{{Name: "A"}}}, true},
		{"no constants", Domain{Key: "x.Empty"}, true},
		{"constant name with space", Domain{Key: "x.Scale", Constants: []Constant{{Name: "FULL SCALE"}, {Name: "HALF"}}}, true},
		{"token with delimiter", Domain{Key: "x.Scale", Constants: []Constant{{Name: "FULL", Token: "full|scale"}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.domain.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidName)
				return
			}
			assert.NoError(t, err)
		})
	}
}
