package metadata

import (
	"fmt"
	"sort"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// Hierarchy is the collected set of types needed to declare every bound
// tag's full inheritance chain.
type Hierarchy struct {
	// Types holds every bound type and all of its ancestors, without the
	// universal root, ordered by depth and then identity.
	Types []types.TypeInfo

	depth map[string]int
	index map[string]int
}

// Depth returns the number of ancestor steps from id to the universal root.
// A type whose ancestor is the root has depth 1. Unknown ids report 0.
func (h *Hierarchy) Depth(id string) int {
	return h.depth[id]
}

// Lookup returns the collected type with the given identity.
func (h *Hierarchy) Lookup(id string) (types.TypeInfo, bool) {
	i, ok := h.index[id]
	if !ok {
		return types.TypeInfo{}, false
	}
	return h.Types[i], true
}

// IsContainer reports whether id is, or descends from, a type flagged as a
// container.
func (h *Hierarchy) IsContainer(id string) bool {
	for id != types.RootType {
		info, ok := h.Lookup(id)
		if !ok {
			return false
		}
		if info.Container {
			return true
		}
		id = info.BaseID()
	}
	return false
}

// Collect resolves every type bound in reg together with its ancestors and
// orders them so each ancestor precedes its descendants: by depth ascending,
// then by identity ascending. Any unresolvable type or hierarchy cycle aborts
// the whole collection.
func Collect(reg *Registry) (*Hierarchy, error) {
	c := collector{
		resolver: reg.Resolver(),
		infos:    make(map[string]types.TypeInfo),
		depth:    make(map[string]int),
	}

	for _, b := range reg.Bindings() {
		if _, err := c.visit(b.Type, nil); err != nil {
			return nil, fmt.Errorf("collect tag %q: %w", b.Tag, err)
		}
	}

	h := &Hierarchy{
		Types: make([]types.TypeInfo, 0, len(c.infos)),
		depth: c.depth,
		index: make(map[string]int, len(c.infos)),
	}
	for _, info := range c.infos {
		h.Types = append(h.Types, info)
	}
	sort.Slice(h.Types, func(i, j int) bool {
		di, dj := c.depth[h.Types[i].ID], c.depth[h.Types[j].ID]
		if di != dj {
			return di < dj
		}
		return h.Types[i].ID < h.Types[j].ID
	})
	for i, info := range h.Types {
		h.index[info.ID] = i
	}
	return h, nil
}

type collector struct {
	resolver Resolver
	infos    map[string]types.TypeInfo
	depth    map[string]int
}

// visit resolves id and its ancestors, memoizing depths. path holds the
// identities on the current descent and detects cycles.
func (c *collector) visit(id string, path []string) (int, error) {
	if id == types.RootType {
		return 0, nil
	}
	if d, ok := c.depth[id]; ok {
		return d, nil
	}
	for _, p := range path {
		if p == id {
			return 0, fmt.Errorf("%w: %v -> %s", types.ErrTypeCycle, path, id)
		}
	}

	info, err := c.resolver.Resolve(id)
	if err != nil {
		return 0, err
	}

	d, err := c.visit(info.BaseID(), append(path, id))
	if err != nil {
		return 0, err
	}

	c.infos[id] = info
	c.depth[id] = d + 1
	return d + 1, nil
}
