package model

type MidiMetadata struct {
	Year    uint   `json:"year,omitempty"`
	Artist  string `json:"artist"`
	Release string `json:"release"`
	Title   string `json:"title"`
}
