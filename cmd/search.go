package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/store"
)

var searchLimit int

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "most occurrences to return, 0 for all")
	rootCmd.AddCommand(searchCmd, reportCmd)
}

var searchCmd = &cobra.Command{
	Use:     "search SYMBOL",
	Short:   "Finds indexed files containing a chord",
	Example: `  tonal search CM7`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer st.Close()

		meta, err := metadataClient()
		if err != nil {
			return err
		}

		res, err := Search(st, meta, args[0], searchLimit)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d matches in %d files\n", res.Symbol, res.NumMatches, res.NumFiles)
		for _, r := range res.Results {
			fmt.Fprintf(out, "  %s %v", r.Path, r.Offsets)
			if md := r.MidiMetadata; md != nil {
				fmt.Fprintf(out, " (%s - %s)", md.Artist, md.Title)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes the chord index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer st.Close()

		stats, err := st.Stats()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "files: %v\n", stats.Files)
		fmt.Fprintf(out, "occurrences: %v\n", stats.Occurrences)
		fmt.Fprintf(out, "distinct symbols: %v\n", stats.Symbols)
		return nil
	},
}
