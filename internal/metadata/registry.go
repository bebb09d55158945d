package metadata

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// Registry is an explicit tag→type binding table paired with the resolver
// that supplies metadata for the bound types. It is built once and handed to
// the collector and the compiler; nothing in this package keeps a global one.
type Registry struct {
	resolver Resolver
	bindings map[string]string
}

// NewRegistry creates an empty registry backed by resolver.
func NewRegistry(resolver Resolver) *Registry {
	return &Registry{
		resolver: resolver,
		bindings: make(map[string]string),
	}
}

// Builtin returns a registry holding the standard tag set, resolvable by the
// built-in metadata table.
func Builtin() *Registry {
	reg := NewRegistry(BuiltinResolver())
	for _, b := range BuiltinBindings() {
		reg.bindings[b.Tag] = b.Type
	}
	return reg
}

// WithResolver returns a copy of the registry that resolves types through
// resolver instead.
func (r *Registry) WithResolver(resolver Resolver) *Registry {
	cp := NewRegistry(resolver)
	for tag, typeID := range r.bindings {
		cp.bindings[tag] = typeID
	}
	return cp
}

// Bind associates tag with typeID, replacing any earlier binding for tag.
// Returns ErrInvalidBinding unless both are valid grammar names.
func (r *Registry) Bind(tag, typeID string) error {
	if !types.ValidName(tag) || !types.ValidName(typeID) {
		return fmt.Errorf("%w: tag %q, type %q", types.ErrInvalidBinding, tag, typeID)
	}
	r.bindings[tag] = typeID
	return nil
}

// BindAll applies each binding in order.
func (r *Registry) BindAll(bindings []types.Binding) error {
	for _, b := range bindings {
		if err := r.Bind(b.Tag, b.Type); err != nil {
			return err
		}
	}
	return nil
}

// TypeOf returns the type bound to tag.
func (r *Registry) TypeOf(tag string) (string, bool) {
	typeID, ok := r.bindings[tag]
	return typeID, ok
}

// Tags returns the bound tags in ascending order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.bindings))
	for tag := range r.bindings {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Bindings returns every binding, ordered by tag.
func (r *Registry) Bindings() []types.Binding {
	tags := r.Tags()
	out := make([]types.Binding, len(tags))
	for i, tag := range tags {
		out[i] = types.Binding{Tag: tag, Type: r.bindings[tag]}
	}
	return out
}

// Resolver returns the resolver backing the registry.
func (r *Registry) Resolver() Resolver {
	return r.resolver
}
