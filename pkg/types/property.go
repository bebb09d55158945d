package types

import "errors"

// Property value types name the setter argument type of a component property.
// They replace live reflection: the metadata table states each property's
// value type and the compiler derives an attribute type from it.
const (
	ValueTypeInt       = "int"
	ValueTypeLong      = "long"
	ValueTypeFloat     = "float"
	ValueTypeDouble    = "double"
	ValueTypeChar      = "char"
	ValueTypeNumber    = "number"
	ValueTypeBoolean   = "boolean"
	ValueTypeString    = "string"
	ValueTypeColor     = "color"
	ValueTypeFont      = "font"
	ValueTypeIcon      = "icon"
	ValueTypeImage     = "image"
	ValueTypeKeyStroke = "keystroke"
	ValueTypeEnum      = "enum"
	ValueTypeObject    = "object"
)

// validValueTypes is the set of recognized property value types.
var validValueTypes = map[string]bool{
	ValueTypeInt:       true,
	ValueTypeLong:      true,
	ValueTypeFloat:     true,
	ValueTypeDouble:    true,
	ValueTypeChar:      true,
	ValueTypeNumber:    true,
	ValueTypeBoolean:   true,
	ValueTypeString:    true,
	ValueTypeColor:     true,
	ValueTypeFont:      true,
	ValueTypeIcon:      true,
	ValueTypeImage:     true,
	ValueTypeKeyStroke: true,
	ValueTypeEnum:      true,
	ValueTypeObject:    true,
}

// freeTextValueTypes are the value types rendered as CDATA.
var freeTextValueTypes = map[string]bool{
	ValueTypeInt:       true,
	ValueTypeLong:      true,
	ValueTypeFloat:     true,
	ValueTypeDouble:    true,
	ValueTypeChar:      true,
	ValueTypeNumber:    true,
	ValueTypeString:    true,
	ValueTypeColor:     true,
	ValueTypeFont:      true,
	ValueTypeIcon:      true,
	ValueTypeImage:     true,
	ValueTypeKeyStroke: true,
}

// Property metadata errors.
var (
	ErrInvalidValueType = errors.New("invalid value type")
	ErrDomainRequired   = errors.New("enum property requires a domain")
	ErrInvalidName      = errors.New("invalid name")
)

// Property describes one settable property declared by a component type.
// Only the declaring type lists a property; subtypes inherit it through their
// ancestor chain.
type Property struct {
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type" yaml:"type"`                         // One of the ValueType constants.
	Domain string `json:"domain,omitempty" yaml:"domain,omitempty"` // Domain key; enum properties only.
}

// Validate checks that the property has a valid name and a recognized value
// type, and that enum properties name a domain.
func (p Property) Validate() error {
	if !ValidName(p.Name) {
		return ErrInvalidName
	}
	if !IsValidValueType(p.Type) {
		return ErrInvalidValueType
	}
	if p.Type == ValueTypeEnum && p.Domain == "" {
		return ErrDomainRequired
	}
	return nil
}

// IsValidValueType reports whether the given string is a recognized value type.
func IsValidValueType(vt string) bool {
	return validValueTypes[vt]
}

// IsFreeTextValueType reports whether values of the given type are written as
// free text: numbers, characters, strings, colors, fonts, icons, images and
// key strokes.
func IsFreeTextValueType(vt string) bool {
	return freeTextValueTypes[vt]
}
