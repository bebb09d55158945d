// Package metadata holds the declarative component metadata table, the tag
// registry built from it and the collector that orders the type hierarchy for
// grammar compilation.
package metadata

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// Resolver maps a type identity to its metadata row and a domain key to its
// ordered constants. A static table satisfies it, as does a loader reading
// type catalogs from a search path.
type Resolver interface {
	// Resolve returns the metadata for the type with the given identity.
	// Returns an error wrapping types.ErrUnresolvedType if it is unknown.
	Resolve(id string) (types.TypeInfo, error)

	// Domain returns the enumerated domain with the given key.
	// Returns an error wrapping types.ErrUnknownDomain if it is unknown.
	Domain(key string) (types.Domain, error)
}

// StaticResolver is a map-backed Resolver. It is populated once, before use,
// and read-only afterwards.
type StaticResolver struct {
	types   map[string]types.TypeInfo
	domains map[string]types.Domain
}

// NewStaticResolver creates an empty StaticResolver.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		types:   make(map[string]types.TypeInfo),
		domains: make(map[string]types.Domain),
	}
}

// Register adds or replaces a type. The type must pass TypeInfo.Validate.
func (r *StaticResolver) Register(info types.TypeInfo) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("register %q: %w", info.ID, err)
	}
	r.types[info.ID] = info
	return nil
}

// RegisterDomain adds or replaces an enumerated domain. The domain must pass
// Domain.Validate.
func (r *StaticResolver) RegisterDomain(d types.Domain) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("register domain %q: %w", d.Key, err)
	}
	r.domains[d.Key] = d
	return nil
}

// Resolve implements Resolver.
func (r *StaticResolver) Resolve(id string) (types.TypeInfo, error) {
	info, ok := r.types[id]
	if !ok {
		return types.TypeInfo{}, fmt.Errorf("%w: %s", types.ErrUnresolvedType, id)
	}
	return info, nil
}

// Domain implements Resolver.
func (r *StaticResolver) Domain(key string) (types.Domain, error) {
	d, ok := r.domains[key]
	if !ok {
		return types.Domain{}, fmt.Errorf("%w: %s", types.ErrUnknownDomain, key)
	}
	return d, nil
}

// TypeIDs returns the registered type identities in ascending order.
func (r *StaticResolver) TypeIDs() []string {
	ids := make([]string, 0, len(r.types))
	for id := range r.types {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ChainResolver consults each resolver in order; the first hit wins.
type ChainResolver []Resolver

// NewChainResolver returns a ChainResolver over the non-nil resolvers given.
func NewChainResolver(resolvers ...Resolver) ChainResolver {
	chain := make(ChainResolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			chain = append(chain, r)
		}
	}
	return chain
}

// Resolve implements Resolver.
func (c ChainResolver) Resolve(id string) (types.TypeInfo, error) {
	for _, r := range c {
		info, err := r.Resolve(id)
		if err == nil {
			return info, nil
		}
		if !errors.Is(err, types.ErrUnresolvedType) {
			return types.TypeInfo{}, err
		}
	}
	return types.TypeInfo{}, fmt.Errorf("%w: %s", types.ErrUnresolvedType, id)
}

// Domain implements Resolver.
func (c ChainResolver) Domain(key string) (types.Domain, error) {
	for _, r := range c {
		d, err := r.Domain(key)
		if err == nil {
			return d, nil
		}
		if !errors.Is(err, types.ErrUnknownDomain) {
			return types.Domain{}, err
		}
	}
	return types.Domain{}, fmt.Errorf("%w: %s", types.ErrUnknownDomain, key)
}
