package types

import (
	"errors"
	"strings"
	"unicode"
)

// RootType is the identity of the universal root every component type
// ultimately descends from. It is never emitted as a fragment.
const RootType = "java.lang.Object"

// BaseFragment is the identity of the fixed universal base fragment that every
// top-level type chains to.
const BaseFragment = "org.httprpc.sierra.UILoader"

// reservedNameChars delimit declarations in the grammar text.
const reservedNameChars = `%;|()"<>`

// ValidName reports whether name can be written to the grammar as a tag, a
// type identity, an attribute name or a token: non-empty, with no white
// space, control characters or grammar delimiters.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(reservedNameChars, r) {
			return false
		}
	}
	return true
}

// Component metadata errors.
var (
	ErrUnresolvedType = errors.New("unresolved type")
	ErrTypeCycle      = errors.New("type hierarchy contains a cycle")
	ErrInvalidBinding = errors.New("invalid tag binding")
	ErrUnknownDomain  = errors.New("unknown enumerated domain")
	ErrCatalogFormat  = errors.New("catalog format error")
)

// TypeInfo is one row of the declarative metadata table: a component type,
// its immediate ancestor and the properties it declares itself.
type TypeInfo struct {
	ID         string     `json:"id" yaml:"id"`
	Base       string     `json:"base,omitempty" yaml:"base,omitempty"` // Empty means RootType.
	Container  bool       `json:"container,omitempty" yaml:"container,omitempty"`
	Properties []Property `json:"properties,omitempty" yaml:"properties,omitempty"`
}

// BaseID returns the ancestor identity, substituting RootType for an empty
// Base.
func (t TypeInfo) BaseID() string {
	if t.Base == "" {
		return RootType
	}
	return t.Base
}

// Validate checks the type identity and every declared property. Property
// names must be unique within the type.
func (t TypeInfo) Validate() error {
	if !ValidName(t.ID) || t.ID == RootType || t.ID == BaseFragment {
		return ErrInvalidName
	}
	if t.Base != "" && !ValidName(t.Base) {
		return ErrInvalidName
	}
	seen := make(map[string]bool, len(t.Properties))
	for _, p := range t.Properties {
		if err := p.Validate(); err != nil {
			return err
		}
		if seen[p.Name] {
			return ErrInvalidName
		}
		seen[p.Name] = true
	}
	return nil
}

// Constant is one member of an enumerated domain. Token, when set, is the
// value written in markup; otherwise the token is derived from Name.
type Constant struct {
	Name  string `json:"name" yaml:"name"`
	Token string `json:"token,omitempty" yaml:"token,omitempty"`
}

// Validate checks that the constant's name, and its token when set, are
// valid grammar names.
func (c Constant) Validate() error {
	if !ValidName(c.Name) {
		return ErrInvalidName
	}
	if c.Token != "" && !ValidName(c.Token) {
		return ErrInvalidName
	}
	return nil
}

// Domain is an ordered, explicitly listed set of constants looked up by a
// symbolic key, owned by the capability that defines the values.
type Domain struct {
	Key       string     `json:"key" yaml:"key"`
	Constants []Constant `json:"constants" yaml:"constants"`
}

// Validate checks that the domain has a key and at least one constant, and
// that every constant is valid.
func (d Domain) Validate() error {
	if d.Key == "" || len(d.Constants) == 0 {
		return ErrInvalidName
	}
	for _, c := range d.Constants {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Binding associates a markup tag with a component type.
type Binding struct {
	Tag  string `json:"tag" yaml:"tag"`
	Type string `json:"type" yaml:"type"`
}
