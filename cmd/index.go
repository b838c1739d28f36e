package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/db"
	"github.com/jsphweid/tonal/logger"
	"github.com/jsphweid/tonal/midi"
	"github.com/jsphweid/tonal/store"
	"github.com/jsphweid/tonal/util"
)

var (
	dbPath   string
	mediaDir string
)

func init() {
	indexCmd.Flags().StringVar(&mediaDir, "media", "", "MIDI corpus root (defaults to $MEDIA_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "chord index database (defaults to $TONAL_DB_PATH)")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [MAX_FILES]",
	Short: "Indexes the chords of every MIDI file under the media directory",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrapf(err, "bad file limit %q", args[0])
			}
			maxNum = n
		}

		root := mediaDir
		if root == "" {
			var err error
			if root, err = constants.GetMediaDir(); err != nil {
				return err
			}
		}

		st, err := store.Open(resolveDBPath())
		if err != nil {
			return err
		}
		defer st.Close()

		meta, err := metadataClient()
		if err != nil {
			return err
		}

		_, err = Index(st, meta, root, maxNum)
		return err
	},
}

func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return constants.GetDBPath()
}

// metadataClient is nil when no metadata endpoint is configured.
func metadataClient() (*db.MetadataClient, error) {
	endpoint := constants.GetMetadataEndpoint()
	if endpoint == "" {
		return nil, nil
	}
	return db.NewMetadataClient(endpoint)
}

// IndexReport counts what one Index run did.
type IndexReport struct {
	RunID   string
	Files   int
	Skipped int
	Chords  int
}

// Index extracts the chords of every MIDI file below root into st. Files that
// fail to parse are logged and skipped. meta may be nil.
func Index(st *store.Store, meta *db.MetadataClient, root string, maxNum int) (IndexReport, error) {
	log := logger.GetLogger().With("index")
	paths, err := util.GatherAllMidiPaths(root, maxNum)
	if err != nil {
		return IndexReport{}, err
	}

	report := IndexReport{RunID: store.NewRunID()}
	for i, path := range paths {
		log.Infof("Processing %v of %v midi files", i+1, len(paths))
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}

		parsed, err := midi.ReadMidiFile(path)
		if err != nil {
			log.Warnf("Skipping %v because: %v", rel, err)
			report.Skipped++
			continue
		}
		chords, err := midi.ExtractChords(parsed)
		if err != nil {
			log.Warnf("Skipping %v because: %v", rel, err)
			report.Skipped++
			continue
		}

		hasMetadata := false
		if meta != nil {
			if hasMetadata, err = meta.HasMetadata(rel); err != nil {
				log.Warnf("No metadata for %v: %v", rel, err)
			}
		}

		if _, err := st.AddFile(rel, report.RunID, hasMetadata, chords); err != nil {
			return report, errors.Wrapf(err, "storing %s", rel)
		}
		report.Files++
		report.Chords += len(chords)
	}
	log.Infof("Indexed %d chords from %d files (%d skipped), run %s",
		report.Chords, report.Files, report.Skipped, report.RunID)
	return report, nil
}
