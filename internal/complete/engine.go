// Package complete suggests tag and attribute names for a caret position in
// partially typed Sierra markup.
package complete

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind is the syntactic position of the caret.
type Kind int

const (
	None Kind = iota
	TagName
	AttributeName
)

func (k Kind) String() string {
	switch k {
	case TagName:
		return "TAG_NAME"
	case AttributeName:
		return "ATTRIBUTE_NAME"
	default:
		return "NONE"
	}
}

// Context describes where the caret sits.
type Context struct {
	Kind Kind
	// Tag is the tag being written; set for AttributeName only.
	Tag string
	// Prefix is the partial name immediately before the caret.
	Prefix string
	// TagStart is the byte offset of the opening '<', or -1 for None.
	TagStart int
}

// Candidate is one suggested insertion.
type Candidate struct {
	Text string `json:"text"`
}

// Vocabulary is the grammar the engine draws candidates from. *dtd.Schema
// satisfies it.
type Vocabulary interface {
	Tags() []string
	HasTag(tag string) bool
	Attributes(tag string) []string
}

// Engine answers completion requests against one vocabulary. It keeps no
// per-request state and is safe for concurrent use.
type Engine struct {
	vocab Vocabulary
	tags  []string
}

// NewEngine creates an engine over vocab. The vocabulary must not change
// afterwards.
func NewEngine(vocab Vocabulary) *Engine {
	return &Engine{vocab: vocab, tags: vocab.Tags()}
}

// Analyze classifies the caret position in text. caret is a byte offset;
// offsets outside [0, len(text)] or inside a multi-byte character yield None.
func Analyze(text string, caret int) Context {
	none := Context{Kind: None, TagStart: -1}

	if caret < 0 || caret > len(text) {
		return none
	}
	if caret < len(text) && !utf8.RuneStart(text[caret]) {
		return none
	}

	start := -1
	for i := caret - 1; i >= 0; i-- {
		if text[i] == '>' {
			return none
		}
		if text[i] == '<' {
			start = i
			break
		}
	}
	if start < 0 {
		return none
	}

	segment := text[start+1 : caret]
	if insideQuotes(segment) {
		return none
	}

	end := strings.IndexFunc(segment, unicode.IsSpace)
	if end < 0 {
		return Context{Kind: TagName, Prefix: segment, TagStart: start}
	}

	last := strings.LastIndexFunc(segment, unicode.IsSpace)
	_, size := utf8.DecodeRuneInString(segment[last:])
	prefix := segment[last+size:]
	return Context{Kind: AttributeName, Tag: segment[:end], Prefix: prefix, TagStart: start}
}

// insideQuotes reports whether segment ends within an unterminated quoted
// attribute value.
func insideQuotes(segment string) bool {
	var open byte
	for i := 0; i < len(segment); i++ {
		c := segment[i]
		switch {
		case open == 0 && (c == '"' || c == '\''):
			open = c
		case c == open:
			open = 0
		}
	}
	return open != 0
}

// Complete returns the candidates for the caret position, filtered by the
// typed prefix without regard to case and sorted by byte order. It never
// fails; positions with nothing to suggest produce an empty result.
func (e *Engine) Complete(text string, caret int) []Candidate {
	ctx := Analyze(text, caret)
	return e.CompleteContext(ctx)
}

// CompleteContext returns the candidates for an already analyzed context.
func (e *Engine) CompleteContext(ctx Context) []Candidate {
	var pool []string
	switch ctx.Kind {
	case TagName:
		pool = e.tags
	case AttributeName:
		if !e.vocab.HasTag(ctx.Tag) {
			return []Candidate{}
		}
		pool = e.vocab.Attributes(ctx.Tag)
	default:
		return []Candidate{}
	}

	matches := make([]string, 0, len(pool))
	for _, name := range pool {
		if HasPrefixFold(name, ctx.Prefix) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)

	out := make([]Candidate, len(matches))
	for i, name := range matches {
		out[i] = Candidate{Text: name}
	}
	return out
}

// HasPrefixFold reports whether s begins with prefix under Unicode case
// folding. Runes are compared one at a time since a rune and its fold may
// differ in encoded width.
func HasPrefixFold(s, prefix string) bool {
	for prefix != "" {
		if s == "" {
			return false
		}
		_, pn := utf8.DecodeRuneInString(prefix)
		_, sn := utf8.DecodeRuneInString(s)
		if !strings.EqualFold(s[:sn], prefix[:pn]) {
			return false
		}
		s, prefix = s[sn:], prefix[pn:]
	}
	return true
}
