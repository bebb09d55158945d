package dtd

import (
	"sort"
	"strings"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// Schema is a parsed grammar: the declared tags and, for each tag, every
// attribute reachable through its type's fragment chain. A Schema is never
// modified after Parse returns it and may be shared between goroutines.
type Schema struct {
	tags     []string
	elements map[string]*schemaElement
}

type schemaElement struct {
	typeID  string
	content types.ContentModel
	attrs   map[string]string
	names   []string
}

func (s *Schema) add(tag, typeID string, content types.ContentModel, attrs map[string]string) {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	s.tags = append(s.tags, tag)
	s.elements[tag] = &schemaElement{
		typeID:  typeID,
		content: content,
		attrs:   attrs,
		names:   names,
	}
}

// Tags returns the declared tags in ascending order.
func (s *Schema) Tags() []string {
	out := make([]string, len(s.tags))
	copy(out, s.tags)
	return out
}

// HasTag reports whether tag is declared.
func (s *Schema) HasTag(tag string) bool {
	_, ok := s.elements[tag]
	return ok
}

// Attributes returns the flattened attribute names of tag in ascending
// order, or nil for an undeclared tag.
func (s *Schema) Attributes(tag string) []string {
	el, ok := s.elements[tag]
	if !ok {
		return nil
	}
	out := make([]string, len(el.names))
	copy(out, el.names)
	return out
}

// AttributeType returns the grammar value type of attr on tag: CDATA or a
// token list such as (true|false).
func (s *Schema) AttributeType(tag, attr string) (string, bool) {
	el, ok := s.elements[tag]
	if !ok {
		return "", false
	}
	value, ok := el.attrs[attr]
	return value, ok
}

// Content returns the content model declared for tag.
func (s *Schema) Content(tag string) (types.ContentModel, bool) {
	el, ok := s.elements[tag]
	if !ok {
		return "", false
	}
	return el.content, true
}

// TypeOf returns the fragment identity tag's attribute list refers to.
func (s *Schema) TypeOf(tag string) (string, bool) {
	el, ok := s.elements[tag]
	if !ok {
		return "", false
	}
	return el.typeID, true
}

// DescribeType renders a grammar value type for display: "Type: String" for
// CDATA, "Values: a, b" for a token list.
func DescribeType(valueType string) string {
	if valueType == types.CDATA {
		return "Type: String"
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(valueType, "("), ")")
	return "Values: " + strings.ReplaceAll(inner, "|", ", ")
}
