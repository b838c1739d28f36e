package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/logger"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "tonal",
	Short: "Tonal music theory toolkit",
	Long: `tonal spells pitches, intervals, scales and chords, and indexes the chords
found in MIDI files so they can be searched by symbol.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel != "" {
			logger.GetLogger().SetLevel(logger.ParseLevel(logLevel))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "DEBUG, INFO, WARN or ERROR (defaults to $LOG_LEVEL)")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
