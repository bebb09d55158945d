// Package catalog reads the files that extend the built-in component
// metadata: a bindings file mapping tags to type identities, and a search path
// of type catalogs that describe additional component types.
package catalog

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/sierra/pkg/types"
)

// keyDelimiter replaces viper's default "." so dotted type identities are not
// split into nested keys.
const keyDelimiter = "::"

// LoadBindings reads a flat tag→type map from path. The format follows the
// file extension: yaml, yml, json, toml or env. Bindings are returned ordered
// by tag.
func LoadBindings(path string) ([]types.Binding, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter(keyDelimiter))
	v.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read bindings %s: %w", path, err)
	}

	keys := v.AllKeys()
	sort.Strings(keys)

	bindings := make([]types.Binding, 0, len(keys))
	for _, tag := range keys {
		if strings.Contains(tag, keyDelimiter) {
			return nil, fmt.Errorf("%w: %s: tag %q is not a flat key", types.ErrCatalogFormat, path, tag)
		}
		raw := v.Get(tag)
		typeID, ok := raw.(string)
		if !ok || strings.TrimSpace(typeID) == "" {
			return nil, fmt.Errorf("%w: %s: tag %q needs a type identity, got %v", types.ErrCatalogFormat, path, tag, raw)
		}
		bindings = append(bindings, types.Binding{Tag: tag, Type: strings.TrimSpace(typeID)})
	}
	return bindings, nil
}
