package types

import (
	"errors"
	"time"
)

// AttributeKind classifies an attribute's value space.
type AttributeKind int

const (
	// FreeText attributes accept any character data (CDATA).
	FreeText AttributeKind = iota
	// BooleanEnum attributes accept exactly true or false.
	BooleanEnum
	// TokenList attributes accept one of an enumerated list of tokens.
	TokenList
)

// String returns the grammar keyword or the kind name.
func (k AttributeKind) String() string {
	switch k {
	case FreeText:
		return "CDATA"
	case BooleanEnum:
		return "boolean"
	case TokenList:
		return "tokens"
	default:
		return "unknown"
	}
}

// CDATA is the grammar keyword for free-text attributes.
const CDATA = "CDATA"

// AttributeDeclaration is an attribute a type declares itself. Tokens is
// non-empty for BooleanEnum and TokenList kinds.
type AttributeDeclaration struct {
	Name   string
	Kind   AttributeKind
	Tokens []string
}

// TypeNode is a compiled type: its identity, its ancestor identity and its own
// attribute declarations. Inherited attributes are never duplicated here;
// inheritance is expressed by chaining to the ancestor's fragment.
type TypeNode struct {
	ID         string
	Base       string
	Attributes []AttributeDeclaration
}

// ContentModel is the content allowed inside an element.
type ContentModel string

const (
	ContentEmpty ContentModel = "EMPTY"
	ContentAny   ContentModel = "ANY"
)

// ElementDeclaration binds a tag to the fragment of its component type.
type ElementDeclaration struct {
	Tag     string
	Type    string
	Content ContentModel
}

// ErrGrammarFormat is wrapped by every grammar parse failure.
var ErrGrammarFormat = errors.New("grammar format error")

// GrammarRecord is a compiled grammar kept in the grammar store.
type GrammarRecord struct {
	GrammarID string    `json:"grammar_id"`
	Content   string    `json:"content"`
	TagCount  int       `json:"tag_count"`
	Digest    string    `json:"digest"`
	CreatedAt time.Time `json:"created_at"`
}
