package dtd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// SyntaxError reports a grammar line the parser does not accept.
type SyntaxError struct {
	Line int    // 1-based; 0 when the problem is not tied to one line
	Text string // offending construct
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("grammar: %s: %q", e.Msg, e.Text)
	}
	return fmt.Sprintf("grammar line %d: %s: %q", e.Line, e.Msg, e.Text)
}

// Unwrap lets callers match every parse failure with types.ErrGrammarFormat.
func (e *SyntaxError) Unwrap() error {
	return types.ErrGrammarFormat
}

var (
	entityRe  = regexp.MustCompile(`^<!ENTITY\s+%\s+(\S+)\s+"([^"]*)"\s*>$`)
	elementRe = regexp.MustCompile(`^<!ELEMENT\s+(\S+)\s+(EMPTY|ANY|\(ANY\))\s*>$`)
	attlistRe = regexp.MustCompile(`^<!ATTLIST\s+(\S+)\s+%([^\s;]+);\s*>$`)
	refRe     = regexp.MustCompile(`^%([^\s;%]+);$`)
	tokensRe  = regexp.MustCompile(`^\([^\s|()]+(\|[^\s|()]+)*\)$`)
)

type entity struct {
	line  int
	base  string
	attrs []attribute
}

type attribute struct {
	name  string
	value string // CDATA or a parenthesised token list
}

type element struct {
	line    int
	content types.ContentModel
	typeID  string
	hasList bool
}

type parser struct {
	entities map[string]*entity
	elements map[string]*element
	order    []string
}

// ParseFile parses the grammar file at path.
func ParseFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grammar: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads grammar text and builds its schema. The whole input is
// validated before a schema is returned; failures are *SyntaxError.
func Parse(r io.Reader) (*Schema, error) {
	p := &parser{
		entities: make(map[string]*entity),
		elements: make(map[string]*element),
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := p.parseLine(lineNo, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading grammar: %w", err)
	}

	return p.build()
}

func (p *parser) parseLine(lineNo int, line string) error {
	if m := entityRe.FindStringSubmatch(line); m != nil {
		return p.parseEntity(lineNo, m[1], m[2])
	}
	if m := elementRe.FindStringSubmatch(line); m != nil {
		if _, dup := p.elements[m[1]]; dup {
			return &SyntaxError{Line: lineNo, Text: line, Msg: "duplicate element"}
		}
		content := types.ContentEmpty
		if m[2] != string(types.ContentEmpty) {
			content = types.ContentAny
		}
		p.elements[m[1]] = &element{line: lineNo, content: content}
		p.order = append(p.order, m[1])
		return nil
	}
	if m := attlistRe.FindStringSubmatch(line); m != nil {
		el, ok := p.elements[m[1]]
		if !ok {
			return &SyntaxError{Line: lineNo, Text: line, Msg: "attribute list for undeclared element"}
		}
		if el.hasList {
			return &SyntaxError{Line: lineNo, Text: line, Msg: "duplicate attribute list"}
		}
		el.typeID = m[2]
		el.hasList = true
		return nil
	}
	return &SyntaxError{Line: lineNo, Text: line, Msg: "unrecognized declaration"}
}

func (p *parser) parseEntity(lineNo int, id, body string) error {
	if _, dup := p.entities[id]; dup {
		return &SyntaxError{Line: lineNo, Text: id, Msg: "duplicate entity"}
	}
	ent := &entity{line: lineNo}

	fields := strings.Fields(body)
	if len(fields) > 0 {
		if m := refRe.FindStringSubmatch(fields[0]); m != nil {
			ent.base = m[1]
			fields = fields[1:]
		}
	}
	if len(fields)%2 != 0 {
		return &SyntaxError{Line: lineNo, Text: fields[len(fields)-1], Msg: "attribute without a type"}
	}

	for i := 0; i < len(fields); i += 2 {
		name, value := fields[i], fields[i+1]
		if strings.ContainsAny(name, "%;()|\"") {
			return &SyntaxError{Line: lineNo, Text: name, Msg: "malformed attribute name"}
		}
		if value != types.CDATA && !tokensRe.MatchString(value) {
			return &SyntaxError{Line: lineNo, Text: value, Msg: "malformed attribute type"}
		}
		ent.attrs = append(ent.attrs, attribute{name: name, value: value})
	}

	p.entities[id] = ent
	return nil
}

func (p *parser) build() (*Schema, error) {
	flat := make(map[string]map[string]string, len(p.entities))
	visiting := make(map[string]bool)

	var flatten func(id string) (map[string]string, error)
	flatten = func(id string) (map[string]string, error) {
		if attrs, ok := flat[id]; ok {
			return attrs, nil
		}
		ent, ok := p.entities[id]
		if !ok {
			return nil, &SyntaxError{Text: "%" + id + ";", Msg: "reference to undefined entity"}
		}
		if visiting[id] {
			return nil, &SyntaxError{Line: ent.line, Text: id, Msg: "entity chain contains a cycle"}
		}
		visiting[id] = true

		attrs := make(map[string]string)
		if ent.base != "" {
			inherited, err := flatten(ent.base)
			if err != nil {
				return nil, err
			}
			for name, value := range inherited {
				attrs[name] = value
			}
		}
		for _, a := range ent.attrs {
			attrs[a.name] = a.value
		}

		delete(visiting, id)
		flat[id] = attrs
		return attrs, nil
	}

	// Every entity must resolve, referenced by an element or not.
	ids := make([]string, 0, len(p.entities))
	for id := range p.entities {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if _, err := flatten(id); err != nil {
			return nil, err
		}
	}

	s := &Schema{
		tags:     make([]string, 0, len(p.order)),
		elements: make(map[string]*schemaElement, len(p.order)),
	}
	for _, tag := range p.order {
		el := p.elements[tag]
		if !el.hasList {
			return nil, &SyntaxError{Line: el.line, Text: tag, Msg: "element without an attribute list"}
		}
		attrs, ok := flat[el.typeID]
		if !ok {
			return nil, &SyntaxError{Line: el.line, Text: "%" + el.typeID + ";", Msg: "reference to undefined entity"}
		}
		s.add(tag, el.typeID, el.content, attrs)
	}
	sort.Strings(s.tags)
	return s, nil
}
