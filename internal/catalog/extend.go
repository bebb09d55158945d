package catalog

import (
	"github.com/mesh-intelligence/sierra/internal/metadata"
)

// Extend returns a copy of reg whose types also resolve from the catalogs on
// searchPath and whose bindings are overridden by the bindings file. Catalog
// types shadow types of the same identity in reg. Empty arguments are
// skipped.
func Extend(reg *metadata.Registry, bindingsPath, searchPath string) (*metadata.Registry, error) {
	out := reg.WithResolver(reg.Resolver())

	if searchPath != "" {
		dir, err := NewDirResolver(searchPath)
		if err != nil {
			return nil, err
		}
		out = out.WithResolver(metadata.NewChainResolver(dir, reg.Resolver()))
	}

	if bindingsPath != "" {
		bindings, err := LoadBindings(bindingsPath)
		if err != nil {
			return nil, err
		}
		if err := out.BindAll(bindings); err != nil {
			return nil, err
		}
	}
	return out, nil
}
