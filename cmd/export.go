package cmd

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/midi"
	"github.com/jsphweid/tonal/musicxml"
)

var (
	exportOut     string
	exportFormat  string
	exportScale   bool
	exportOctaves int
	exportTempo   float64
	exportBeats   int
)

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to stdout)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "midi", "midi or musicxml")
	exportCmd.Flags().BoolVar(&exportScale, "scale", false, "treat the arguments as ROOT TYPE of a scale")
	exportCmd.Flags().IntVar(&exportOctaves, "octaves", 0, "extra scale octaves")
	exportCmd.Flags().Float64Var(&exportTempo, "tempo", 0, "beats per minute for midi output")
	exportCmd.Flags().IntVar(&exportBeats, "beats", 0, "quarter notes per chord or scale note for midi output")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export SYMBOL... | export --scale ROOT TYPE",
	Short: "Writes a chord progression or a scale as MIDI or MusicXML",
	Example: `  tonal export C Am F G7 -o prog.mid
  tonal export --scale D dorian --format musicxml -o dorian.musicxml`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportFormat != "midi" && exportFormat != "musicxml" {
			return errors.Errorf("unknown format %q", exportFormat)
		}

		var w io.Writer = cmd.OutOrStdout()
		if exportOut != "" {
			f, err := os.Create(exportOut)
			if err != nil {
				return errors.Wrap(err, "creating output file")
			}
			defer f.Close()
			w = f
		}

		if exportScale {
			if len(args) != 2 {
				return errors.New("--scale takes ROOT TYPE")
			}
			return exportScaleTo(w, args[0], args[1])
		}
		chords := make([]chord.Chord, 0, len(args))
		for _, a := range args {
			c, err := chord.Parse(a)
			if err != nil {
				return err
			}
			chords = append(chords, c)
		}
		return exportProgressionTo(w, chords)
	},
}

func exportOptions() midi.ExportOptions {
	opts := midi.DefaultExportOptions()
	if exportTempo > 0 {
		opts.Tempo = exportTempo
	}
	if exportBeats > 0 {
		opts.Beats = exportBeats
	}
	return opts
}

func exportScaleTo(w io.Writer, root, typ string) error {
	s, err := parseScale(root, typ)
	if err != nil {
		return err
	}
	if exportFormat == "midi" {
		return midi.WriteScale(w, s, exportOctaves, exportOptions())
	}
	doc, err := musicxml.Scale(s, exportOctaves, s.String())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return errors.Wrap(err, "writing musicxml")
}

func exportProgressionTo(w io.Writer, chords []chord.Chord) error {
	if exportFormat == "midi" {
		return midi.WriteProgression(w, chords, exportOptions())
	}
	doc, err := musicxml.Progression(chords, "Progression")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, doc)
	return errors.Wrap(err, "writing musicxml")
}
