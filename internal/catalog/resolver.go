package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/sierra/internal/metadata"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// File is the on-disk shape of a type catalog.
type File struct {
	Domains []types.Domain   `yaml:"domains"`
	Types   []types.TypeInfo `yaml:"types"`
}

// DirResolver resolves types described by the catalogs found on a search
// path. Every catalog is read and validated up front.
type DirResolver struct {
	static *metadata.StaticResolver
	files  []string
	origin map[string]string
}

// NewDirResolver loads every *.yaml and *.yml file under each directory of
// searchPath, a list separated by os.PathListSeparator. A type or domain
// defined in two catalogs is an error.
func NewDirResolver(searchPath string) (*DirResolver, error) {
	r := &DirResolver{
		static: metadata.NewStaticResolver(),
		origin: make(map[string]string),
	}

	for _, dir := range filepath.SplitList(searchPath) {
		if dir == "" {
			continue
		}
		if err := r.walk(dir); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *DirResolver) walk(dir string) error {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yaml", ".yml":
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk search path %s: %w", dir, err)
	}

	sort.Strings(found)
	for _, path := range found {
		if err := r.load(path); err != nil {
			return err
		}
	}
	return nil
}

func (r *DirResolver) load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", path, err)
	}

	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for _, d := range f.Domains {
		if prev, dup := r.origin["domain:"+d.Key]; dup {
			return fmt.Errorf("%w: %s: domain %q already defined in %s", types.ErrCatalogFormat, path, d.Key, prev)
		}
		if err := r.static.RegisterDomain(d); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrCatalogFormat, path, err)
		}
		r.origin["domain:"+d.Key] = path
	}
	for _, info := range f.Types {
		if prev, dup := r.origin["type:"+info.ID]; dup {
			return fmt.Errorf("%w: %s: type %q already defined in %s", types.ErrCatalogFormat, path, info.ID, prev)
		}
		if err := r.static.Register(info); err != nil {
			return fmt.Errorf("%w: %s: %v", types.ErrCatalogFormat, path, err)
		}
		r.origin["type:"+info.ID] = path
	}

	r.files = append(r.files, path)
	return nil
}

// Decode parses one catalog. Unknown fields are rejected.
func Decode(rd io.Reader) (*File, error) {
	dec := yaml.NewDecoder(rd)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("%w: %v", types.ErrCatalogFormat, err)
	}
	return &f, nil
}

// Resolve implements metadata.Resolver.
func (r *DirResolver) Resolve(id string) (types.TypeInfo, error) {
	return r.static.Resolve(id)
}

// Domain implements metadata.Resolver.
func (r *DirResolver) Domain(key string) (types.Domain, error) {
	return r.static.Domain(key)
}

// Files returns the catalogs that were loaded, in load order.
func (r *DirResolver) Files() []string {
	out := make([]string, len(r.files))
	copy(out, r.files)
	return out
}

// TypeIDs returns the identities of every catalogued type in ascending order.
func (r *DirResolver) TypeIDs() []string {
	return r.static.TypeIDs()
}
