package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sierra/internal/complete"
	"github.com/mesh-intelligence/sierra/internal/dtd"
	"github.com/mesh-intelligence/sierra/pkg/types"
)

// grammarOptions select the grammar a command reads.
type grammarOptions struct {
	path   string
	latest bool
}

func (o *grammarOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.path, "grammar", "g", "", "grammar file (default: config grammar or sierra.dtd)")
	cmd.Flags().BoolVar(&o.latest, "latest", false, "use the most recently stored grammar")
	cmd.MarkFlagsMutuallyExclusive("grammar", "latest")
}

// loadSchema parses the selected grammar.
func (a *app) loadSchema(opts grammarOptions) (*dtd.Schema, error) {
	if opts.latest {
		store, err := a.attachStore()
		if err != nil {
			return nil, err
		}
		defer store.Detach()

		rec, err := store.LatestGrammar()
		if errors.Is(err, types.ErrNotFound) {
			return nil, userError(errors.New("no stored grammar; run sierra compile --store"))
		}
		if err != nil {
			return nil, sysError(fmt.Errorf("load stored grammar: %w", err))
		}
		s, err := dtd.Parse(strings.NewReader(rec.Content))
		if err != nil {
			return nil, userError(fmt.Errorf("stored grammar %s: %w", rec.GrammarID, err))
		}
		a.log.Debug("grammar loaded", "grammar_id", rec.GrammarID, "tags", len(s.Tags()))
		return s, nil
	}

	path := a.stringSetting(opts.path, cfgKeyGrammar)
	s, err := dtd.ParseFile(path)
	if err != nil {
		return nil, classifyGrammarError(err)
	}
	a.log.Debug("grammar loaded", "path", path, "tags", len(s.Tags()))
	return s, nil
}

// classifyGrammarError separates a missing or malformed grammar, which the
// user can fix, from read failures.
func classifyGrammarError(err error) error {
	if errors.Is(err, types.ErrGrammarFormat) || errors.Is(err, fs.ErrNotExist) {
		return userError(err)
	}
	return sysError(err)
}

type completeOptions struct {
	grammar grammarOptions
	file    string
	offset  int
}

// completeResult is the --json output of complete.
type completeResult struct {
	Context    string               `json:"context"`
	Tag        string               `json:"tag,omitempty"`
	Prefix     string               `json:"prefix"`
	Candidates []complete.Candidate `json:"candidates"`
}

func newCompleteCmd(a *app) *cobra.Command {
	var opts completeOptions
	cmd := &cobra.Command{
		Use:   "complete",
		Short: "Suggest tag or attribute names at a caret offset",
		Long: `Complete reads a markup buffer from --file or stdin and prints the tag or
attribute names valid at the byte offset given by --offset, one per line.

Example:
  printf '<button n' | sierra complete --offset 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runComplete(cmd, opts)
		},
	}
	opts.grammar.register(cmd)
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "markup buffer to read (default: stdin)")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "caret byte offset into the buffer")
	_ = cmd.MarkFlagRequired("offset")
	return cmd
}

func (a *app) runComplete(cmd *cobra.Command, opts completeOptions) error {
	text, err := readBuffer(cmd.InOrStdin(), opts.file)
	if err != nil {
		return userError(err)
	}

	schema, err := a.loadSchema(opts.grammar)
	if err != nil {
		return err
	}

	engine := complete.NewEngine(schema)
	ctx := complete.Analyze(text, opts.offset)
	candidates := engine.CompleteContext(ctx)
	a.log.Debug("completion", "context", ctx.Kind, "tag", ctx.Tag, "prefix", ctx.Prefix, "candidates", len(candidates))

	if a.flags.jsonMode {
		return writeJSON(cmd.OutOrStdout(), completeResult{
			Context:    ctx.Kind.String(),
			Tag:        ctx.Tag,
			Prefix:     ctx.Prefix,
			Candidates: candidates,
		})
	}
	out := cmd.OutOrStdout()
	for _, c := range candidates {
		fmt.Fprintln(out, c.Text)
	}
	return nil
}

func readBuffer(stdin io.Reader, file string) (string, error) {
	if file != "" && file != "-" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read buffer: %w", err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return sysError(fmt.Errorf("marshal output: %w", err))
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
