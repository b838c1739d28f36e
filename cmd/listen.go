package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/midi"
)

var (
	listenPort     int
	listenDebounce time.Duration
)

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port number")
	listenCmd.Flags().DurationVar(&listenDebounce, "debounce", 80*time.Millisecond, "quiet time before naming the held notes")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Names the chords played on a MIDI input as they are held",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		defer gomidi.CloseDriver()
		in, err := gomidi.InPort(listenPort)
		if err != nil {
			return errors.Wrapf(err, "can't open midi input %d", listenPort)
		}
		log := logger.GetLogger().With("listen")
		log.Infof("listening on %v", in)

		out := cmd.OutOrStdout()
		l := midi.NewListener(listenDebounce, func(d midi.Detection) {
			notes := make([]string, len(d.Notes))
			for i, n := range d.Notes {
				notes[i] = n.String()
			}
			if d.Err != nil {
				log.Debugf("%s: %v", strings.Join(notes, " "), d.Err)
				return
			}
			fmt.Fprintf(out, "%-12s %s\n", d.Chord, strings.Join(notes, " "))
		})

		stop, err := gomidi.ListenTo(in, l.Handle)
		if err != nil {
			return errors.Wrap(err, "listening")
		}
		defer stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		return nil
	},
}
