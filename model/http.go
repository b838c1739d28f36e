package model

type IntervalResponse struct {
	Name       string `json:"name"`
	Quality    string `json:"quality"`
	Degree     int    `json:"degree"`
	Semitones  int    `json:"semitones"`
	Consonance string `json:"consonance"`
	Inversion  string `json:"inversion"`
}

type ChordResponse struct {
	Symbol  string   `json:"symbol"`
	Root    string   `json:"root"`
	Quality string   `json:"quality"`
	Notes   []string `json:"notes"`
	Numbers []int    `json:"numbers"`
}

type ScaleResponse struct {
	Name   string   `json:"name"`
	Notes  []string `json:"notes"`
	Chords []string `json:"chords"`
}

type AnalyzeRequestBody struct {
	Notes []string `json:"notes"`
}

type SearchRequestBody struct {
	Chord string `json:"chord"`
	Limit int    `json:"limit,omitempty"`
}

type SearchResult struct {
	FileId       uint          `json:"file_id"`
	Path         string        `json:"path"`
	Offsets      []uint32      `json:"offsets"`
	MidiMetadata *MidiMetadata `json:"metadata"`
}

type SearchResponse struct {
	Symbol     string         `json:"symbol"`
	NumMatches int            `json:"num_matches"`
	NumFiles   int            `json:"num_files"`
	Results    []SearchResult `json:"results"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
