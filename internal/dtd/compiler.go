// Package dtd compiles component metadata into the Sierra markup grammar and
// parses that grammar back into a schema of tags and their attributes.
//
// The grammar is a fixed, line-oriented subset of DTD syntax:
//
//	<!ENTITY % type-id "[%base-type-id; ]attr TYPE attr TYPE ...">
//	<!ELEMENT tag EMPTY|ANY>
//	<!ATTLIST tag %type-id;>
//
// TYPE is CDATA or a token list such as (true|false).
package dtd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mesh-intelligence/sierra/internal/metadata"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// DefaultFileName is the grammar file written by the CLI when no output path
// is given.
const DefaultFileName = "sierra.dtd"

// Grammar is a compiled grammar before serialization.
type Grammar struct {
	// Base is the universal base fragment.
	Base types.TypeNode
	// Nodes are the type fragments, ancestors first.
	Nodes []types.TypeNode
	// Elements are the tag declarations, ordered by tag.
	Elements []types.ElementDeclaration
}

// Tags returns the declared tags in declaration order.
func (g *Grammar) Tags() []string {
	tags := make([]string, len(g.Elements))
	for i, e := range g.Elements {
		tags[i] = e.Tag
	}
	return tags
}

// Compiler turns a registry into a Grammar.
type Compiler struct {
	reg *metadata.Registry
}

// NewCompiler creates a compiler over reg.
func NewCompiler(reg *metadata.Registry) *Compiler {
	return &Compiler{reg: reg}
}

// Build collects the registry's type hierarchy and derives every fragment
// and element declaration. Any unresolvable type or unknown domain aborts
// the build.
func (c *Compiler) Build() (*Grammar, error) {
	h, err := metadata.Collect(c.reg)
	if err != nil {
		return nil, err
	}

	g := &Grammar{Base: baseNode()}
	resolver := c.reg.Resolver()

	for _, info := range h.Types {
		node, err := buildNode(info, resolver)
		if err != nil {
			return nil, fmt.Errorf("compile %s: %w", info.ID, err)
		}
		g.Nodes = append(g.Nodes, node)
	}

	for _, b := range c.reg.Bindings() {
		content := types.ContentEmpty
		if h.IsContainer(b.Type) {
			content = types.ContentAny
		}
		g.Elements = append(g.Elements, types.ElementDeclaration{
			Tag:     b.Tag,
			Type:    b.Type,
			Content: content,
		})
	}
	return g, nil
}

// Compile builds the grammar and writes it to w.
func (c *Compiler) Compile(w io.Writer) (*Grammar, error) {
	g, err := c.Build()
	if err != nil {
		return nil, err
	}
	if err := g.Encode(w); err != nil {
		return nil, err
	}
	return g, nil
}

// CompileFile compiles into path. The file is replaced atomically, so on
// failure any previous grammar at path is left untouched.
func (c *Compiler) CompileFile(path string) (*Grammar, error) {
	g, err := c.Build()
	if err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".dtd-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if err := g.Encode(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("renaming temp file: %w", err)
	}
	return g, nil
}

func baseNode() types.TypeNode {
	node := types.TypeNode{ID: types.BaseFragment}
	for _, name := range baseAttributes {
		node.Attributes = append(node.Attributes, types.AttributeDeclaration{Name: name, Kind: types.FreeText})
	}
	return node
}

func buildNode(info types.TypeInfo, r metadata.Resolver) (types.TypeNode, error) {
	// Resolvers other than StaticResolver may hand back unchecked rows.
	if err := info.Validate(); err != nil {
		return types.TypeNode{}, err
	}
	base := info.BaseID()
	if base == types.RootType {
		base = types.BaseFragment
	}
	node := types.TypeNode{ID: info.ID, Base: base}

	seen := make(map[string]bool, len(info.Properties))
	add := func(decl types.AttributeDeclaration) {
		if seen[decl.Name] {
			return
		}
		seen[decl.Name] = true
		node.Attributes = append(node.Attributes, decl)
	}

	for _, p := range info.Properties {
		decl, ok, err := derive(p, r)
		if err != nil {
			return node, err
		}
		if ok {
			add(decl)
		}
	}

	if info.ID == TextInputType {
		for _, decl := range textInputAttributes {
			decl.Tokens = append([]string(nil), decl.Tokens...)
			add(decl)
		}
	}
	return node, nil
}

// Encode writes the grammar text to w. Output is buffered and flushed once;
// on error the caller must discard whatever reached w.
func (g *Grammar) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)

	writeEntity(bw, g.Base)
	for _, node := range g.Nodes {
		writeEntity(bw, node)
	}
	for _, e := range g.Elements {
		fmt.Fprintf(bw, "<!ELEMENT %s %s>\n", e.Tag, e.Content)
		fmt.Fprintf(bw, "<!ATTLIST %s %%%s;>\n", e.Tag, e.Type)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing grammar: %w", err)
	}
	return nil
}

func writeEntity(bw *bufio.Writer, node types.TypeNode) {
	parts := make([]string, 0, 2*len(node.Attributes)+1)
	if node.Base != "" {
		parts = append(parts, "%"+node.Base+";")
	}
	for _, decl := range node.Attributes {
		parts = append(parts, decl.Name, typeToken(decl))
	}
	fmt.Fprintf(bw, "<!ENTITY %% %s \"%s\">\n", node.ID, strings.Join(parts, " "))
}
