package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
)

var (
	transposeSimplify bool
	scaleOctaves      int
	scaleSevenths     bool
	chordInversion    int
	chordVoicing      string
)

func init() {
	transposeCmd.Flags().BoolVar(&transposeSimplify, "simplify", false, "respell the result with the fewest accidentals")
	scaleCmd.Flags().IntVar(&scaleOctaves, "octaves", 0, "extra octaves to generate")
	scaleCmd.Flags().BoolVar(&scaleSevenths, "sevenths", false, "list seventh chords instead of triads")
	chordCmd.Flags().IntVar(&chordInversion, "invert", 0, "inversion, 0 to 3")
	chordCmd.Flags().StringVar(&chordVoicing, "voicing", "close", "close, open, drop2, drop3 or cluster")

	rootCmd.AddCommand(intervalCmd, transposeCmd, simplifyCmd, scaleCmd, chordCmd, analyzeCmd)
}

var intervalCmd = &cobra.Command{
	Use:   "interval NAME | interval LOW HIGH",
	Short: "Describes an interval, or names the one between two pitches",
	Example: `  tonal interval Aug4
  tonal interval C4 G#4`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var i interval.Interval
		var err error
		if len(args) == 2 {
			var notes []tuning.Tuning
			if notes, err = parseTunings(args); err != nil {
				return err
			}
			i, err = tuning.IntervalBetween(notes[0], notes[1])
		} else {
			i, err = interval.Parse(args[0])
		}
		if err != nil {
			return err
		}
		v := intervalView(i)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s %d, %d semitones, %s, inverts to %s\n",
			v.Name, v.Quality, v.Degree, v.Semitones, strings.ToLower(v.Consonance), v.Inversion)
		return nil
	},
}

var transposeCmd = &cobra.Command{
	Use:     "transpose NOTE INTERVAL",
	Short:   "Moves a pitch by a spelled interval",
	Example: `  tonal transpose C#4 M3
  tonal transpose Eb4 -P5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := tuning.Parse(args[0])
		if err != nil {
			return err
		}
		i, err := interval.Parse(args[1])
		if err != nil {
			return err
		}
		res, err := t.AddInterval(i)
		if err != nil {
			return err
		}
		if transposeSimplify {
			if res, err = res.Simple(); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), res)
		return nil
	},
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify NOTE...",
	Short: "Respells pitches with the fewest accidentals",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseTunings(args)
		if err != nil {
			return err
		}
		out := make([]string, len(notes))
		for i, n := range notes {
			s, err := n.Simple()
			if err != nil {
				return err
			}
			out[i] = s.String()
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, " "))
		return nil
	},
}

var scaleCmd = &cobra.Command{
	Use:     "scale ROOT TYPE",
	Short:   "Spells a scale and the chords on its degrees",
	Example: `  tonal scale A harmonic-minor --sevenths`,
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := parseScale(args[0], args[1])
		if err != nil {
			return err
		}
		notes, err := s.Generate(scaleOctaves)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", s, strings.Join(names(notes), " "))

		build := s.DegreeChord
		if scaleSevenths {
			build = s.DegreeSeventh
		}
		for n := 1; n <= s.IntervalCount(); n++ {
			c, err := build(n)
			if err != nil {
				fmt.Fprintf(out, "  %d: -\n", n)
				continue
			}
			fmt.Fprintf(out, "  %d: %s\n", n, c)
		}
		if i, ok := s.CharacteristicInterval(); ok {
			fmt.Fprintf(out, "characteristic interval: %s\n", i)
		}
		return nil
	},
}

var chordCmd = &cobra.Command{
	Use:   "chord SYMBOL",
	Short: "Spells a chord symbol",
	Example: `  tonal chord "G7(b9)/B"
  tonal chord Cmaj7 --voicing drop2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := chord.Parse(args[0])
		if err != nil {
			return err
		}
		if chordInversion != 0 {
			c = c.Invert(chord.Inversion(chordInversion))
		}
		v, err := chord.ParseVoicing(chordVoicing)
		if err != nil {
			return err
		}
		view, err := chordView(c.Revoice(v))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%v)\n", view.Symbol, strings.Join(view.Notes, " "), view.Numbers)
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:     "analyze NOTE...",
	Short:   "Names the chord formed by a set of pitches",
	Example: `  tonal analyze E4 G4 C5`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := parseTunings(args)
		if err != nil {
			return err
		}
		c, err := chord.AnalyzeFrom(notes)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), c)
		return nil
	},
}
