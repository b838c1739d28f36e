package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/midi"
)

var (
	excerptAt    int64
	excerptNotes int
	excerptOut   string
)

func init() {
	inspectCmd.Flags().Int64Var(&excerptAt, "excerpt-at", -1, "also cut a preview starting at this tick")
	inspectCmd.Flags().IntVar(&excerptNotes, "excerpt-notes", 20, "note events per track in the preview")
	inspectCmd.Flags().StringVar(&excerptOut, "excerpt-out", "excerpt.mid", "where to write the preview")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect FILE",
	Short: "Lists the chords found in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := midi.ReadMidiFile(args[0])
		if err != nil {
			return err
		}
		chords, err := midi.ExtractChords(s)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, c := range chords {
			notes := make([]string, len(c.Notes))
			for i, n := range c.Notes {
				notes[i] = fmt.Sprint(n)
			}
			fmt.Fprintf(out, "%8dms  %-12s %s\n", c.OffsetMs, c.Symbol, strings.Join(notes, " "))
		}

		if excerptAt < 0 {
			return nil
		}
		f, err := os.Create(excerptOut)
		if err != nil {
			return errors.Wrap(err, "creating excerpt file")
		}
		defer f.Close()
		if _, err := midi.Excerpt(s, uint64(excerptAt), excerptNotes).WriteTo(f); err != nil {
			return errors.Wrap(err, "writing excerpt")
		}
		fmt.Fprintf(out, "wrote %s\n", excerptOut)
		return nil
	},
}
