package constants

import (
	"os"

	"github.com/pkg/errors"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetDBPath is where the chord index lives.
func GetDBPath() string {
	return getenv("TONAL_DB_PATH", "./out/tonal.db")
}

func GetMediaDir() (string, error) {
	path := os.Getenv("MEDIA_PATH")
	if path == "" {
		return "", errors.New("MEDIA_PATH environment variable is not set")
	}
	return path, nil
}

func GetAddr() string {
	return getenv("TONAL_ADDR", ":8080")
}

// GetMetadataEndpoint is the DynamoDB endpoint holding per-file metadata.
// Empty means metadata lookups are skipped.
func GetMetadataEndpoint() string {
	return os.Getenv("METADATA_ENDPOINT")
}

const MetadataTable = "tonal-metadata"

const TicksPerQuarter = 960

const DefaultTempo = 120.0

// MaxChordNotes bounds the sounding sets worth indexing.
const MaxChordNotes = 16
