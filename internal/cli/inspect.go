package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/sierra/internal/dtd"
)

// attrResult is one row of the attrs --json output.
type attrResult struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

func newTagsCmd(a *app) *cobra.Command {
	var opts grammarOptions
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List the tags a grammar declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.loadSchema(opts)
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), schema.Tags())
			}
			for _, tag := range schema.Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

func newAttrsCmd(a *app) *cobra.Command {
	var opts grammarOptions
	cmd := &cobra.Command{
		Use:   "attrs TAG",
		Short: "List the attributes a tag accepts",
		Long: `Attrs prints every attribute of TAG with its value type: "Type: String"
for free text or "Values: a, b" for an enumerated list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := a.loadSchema(opts)
			if err != nil {
				return err
			}
			tag := args[0]
			if !schema.HasTag(tag) {
				return userError(fmt.Errorf("unknown tag %q", tag))
			}

			names := schema.Attributes(tag)
			rows := make([]attrResult, 0, len(names))
			for _, name := range names {
				vt, _ := schema.AttributeType(tag, name)
				rows = append(rows, attrResult{Name: name, Type: vt, Description: dtd.DescribeType(vt)})
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			for _, r := range rows {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", r.Name, r.Description)
			}
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}
