package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

// grammarSummary is one row of the grammars --json output.
type grammarSummary struct {
	GrammarID string `json:"grammar_id"`
	CreatedAt string `json:"created_at"`
	TagCount  int    `json:"tag_count"`
	Digest    string `json:"digest"`
}

func newGrammarsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List grammars recorded in the grammar store, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.attachStore()
			if err != nil {
				return err
			}
			defer store.Detach()

			records, err := store.ListGrammars()
			if err != nil {
				return sysError(fmt.Errorf("list grammars: %w", err))
			}

			rows := make([]grammarSummary, 0, len(records))
			for _, r := range records {
				rows = append(rows, grammarSummary{
					GrammarID: r.GrammarID,
					CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
					TagCount:  r.TagCount,
					Digest:    r.Digest,
				})
			}

			if a.flags.jsonMode {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No grammars stored")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCREATED\tTAGS")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", r.GrammarID, r.CreatedAt, r.TagCount)
			}
			return tw.Flush()
		},
	}
}
