package dtd

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/sierra/internal/metadata"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// booleanTokens is the value list of every boolean attribute.
var booleanTokens = []string{"true", "false"}

// baseAttributes are declared by the universal base fragment and inherited by
// every element.
var baseAttributes = []string{
	"name", "group", "border", "padding", "title", "weight", "size",
	"tab-title", "tab-icon", "style", "style-class",
}

// textInputAttributes are appended to the designated text-input type after
// its own properties.
var textInputAttributes = []types.AttributeDeclaration{
	{Name: "placeholder-text", Kind: types.FreeText},
	{Name: "show-clear-button", Kind: types.BooleanEnum, Tokens: booleanTokens},
	{Name: "leading-icon", Kind: types.FreeText},
	{Name: "trailing-icon", Kind: types.FreeText},
}

// TextInputType receives textInputAttributes.
const TextInputType = metadata.TypeJTextField

// BaseAttributes returns the attribute names of the universal base fragment.
func BaseAttributes() []string {
	out := make([]string, len(baseAttributes))
	copy(out, baseAttributes)
	return out
}

// derive returns the attribute declared for p. The second result is false
// when the property has no markup representation and is left out.
func derive(p types.Property, r metadata.Resolver) (types.AttributeDeclaration, bool, error) {
	decl := types.AttributeDeclaration{Name: p.Name}

	if key, ok := metadata.SelectorDomain(p.Name); ok && p.Type == types.ValueTypeInt {
		d, err := domain(r, p.Name, key)
		if err != nil {
			return decl, false, err
		}
		decl.Kind = types.TokenList
		for _, c := range d.Constants {
			decl.Tokens = append(decl.Tokens, selectorToken(c))
		}
		return decl, true, nil
	}

	switch {
	case p.Type == types.ValueTypeBoolean:
		decl.Kind = types.BooleanEnum
		decl.Tokens = append([]string(nil), booleanTokens...)
	case p.Type == types.ValueTypeEnum:
		d, err := domain(r, p.Name, p.Domain)
		if err != nil {
			return decl, false, err
		}
		decl.Kind = types.TokenList
		for _, c := range d.Constants {
			decl.Tokens = append(decl.Tokens, enumToken(c.Name))
		}
	case types.IsFreeTextValueType(p.Type):
		decl.Kind = types.FreeText
	default:
		return decl, false, nil
	}
	return decl, true, nil
}

// domain looks up the domain for property and checks that its tokens can be
// written to the grammar.
func domain(r metadata.Resolver, property, key string) (types.Domain, error) {
	d, err := r.Domain(key)
	if err != nil {
		return d, fmt.Errorf("property %s: %w", property, err)
	}
	if err := d.Validate(); err != nil {
		return d, fmt.Errorf("property %s: domain %s: %w", property, key, err)
	}
	return d, nil
}

// enumToken lower-cases a constant name and turns word separators into
// hyphens: FILL_WIDTH becomes fill-width.
func enumToken(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "_", "-")
}

// selectorToken is the constant's declared key, or its derived token when
// no key is declared.
func selectorToken(c types.Constant) string {
	if c.Token != "" {
		return c.Token
	}
	return enumToken(c.Name)
}

// typeToken renders the grammar value type of an attribute.
func typeToken(decl types.AttributeDeclaration) string {
	if decl.Kind == types.FreeText {
		return types.CDATA
	}
	return "(" + strings.Join(decl.Tokens, "|") + ")"
}
