package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sierra/internal/catalog"
	"github.com/mesh-intelligence/sierra/internal/dtd"
	"github.com/mesh-intelligence/sierra/internal/metadata"
	"github.com/mesh-intelligence/sierra/internal/sqlite"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

type compileOptions struct {
	bindings   string
	searchPath string
	output     string
	store      bool
}

// compileResult is the --json output of compile.
type compileResult struct {
	Output    string `json:"output"`
	Tags      int    `json:"tags"`
	GrammarID string `json:"grammar_id,omitempty"`
}

func newCompileCmd(a *app) *cobra.Command {
	var opts compileOptions
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile component metadata into the markup grammar",
		Long: `Compile collects every bound component type with its ancestors, derives
attribute types from the metadata table and writes the grammar file.

A bindings file (yaml, json, toml or env) adds or overrides tag bindings.
A search path of type catalogs supplies types the built-in table lacks.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCompile(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.bindings, "bindings", "", "tag bindings file")
	cmd.Flags().StringVar(&opts.searchPath, "search-path", "", "type catalog directories, separated by the OS list separator")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "grammar file to write (default: config grammar or sierra.dtd)")
	cmd.Flags().BoolVar(&opts.store, "store", false, "also record the grammar in the grammar store")
	return cmd
}

func (a *app) runCompile(cmd *cobra.Command, opts compileOptions) error {
	bindings := a.stringSetting(opts.bindings, cfgKeyBindings)
	searchPath := a.stringSetting(opts.searchPath, cfgKeySearchPath)
	output := a.stringSetting(opts.output, cfgKeyGrammar)

	reg, err := catalog.Extend(metadata.Builtin(), bindings, searchPath)
	if err != nil {
		return userError(err)
	}
	a.log.Debug("registry ready", "tags", len(reg.Tags()), "bindings", bindings, "search_path", searchPath)

	g, err := dtd.NewCompiler(reg).CompileFile(output)
	if err != nil {
		return classifyCompileError(err)
	}
	a.log.Info("grammar compiled", "output", output, "tags", len(g.Elements), "types", len(g.Nodes))

	res := compileResult{Output: output, Tags: len(g.Elements)}

	if opts.store {
		id, err := a.storeGrammar(g)
		if err != nil {
			return err
		}
		res.GrammarID = id
		a.log.Info("grammar stored", "grammar_id", id)
	}

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), res)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Compiled %d tags to %s\n", res.Tags, res.Output)
	if res.GrammarID != "" {
		fmt.Fprintf(out, "Stored grammar %s\n", res.GrammarID)
	}
	return nil
}

func (a *app) storeGrammar(g *dtd.Grammar) (string, error) {
	var buf bytes.Buffer
	if err := g.Encode(&buf); err != nil {
		return "", sysError(err)
	}

	store, err := a.attachStore()
	if err != nil {
		return "", err
	}
	defer store.Detach()

	id, err := store.SaveGrammar(buf.String(), len(g.Elements))
	if err != nil {
		return "", sysError(fmt.Errorf("save grammar: %w", err))
	}
	return id, nil
}

// attachStore resolves the store configuration and attaches a backend. The
// caller must Detach it.
func (a *app) attachStore() (*sqlite.Backend, error) {
	cfg, err := a.storeConfig()
	if err != nil {
		return nil, userError(err)
	}
	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, sysError(fmt.Errorf("attach grammar store: %w", err))
	}
	a.log.Debug("grammar store attached", "data_dir", cfg.DataDir)
	return store, nil
}

// classifyCompileError separates metadata problems the user can fix from
// I/O failures.
func classifyCompileError(err error) error {
	for _, target := range []error{
		types.ErrUnresolvedType,
		types.ErrTypeCycle,
		types.ErrUnknownDomain,
		types.ErrCatalogFormat,
		types.ErrInvalidName,
	} {
		if errors.Is(err, target) {
			return userError(err)
		}
	}
	return sysError(err)
}
