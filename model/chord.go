package model

type Notes = []uint8

// ChordEvent is one sounding set found in a MIDI file.
type ChordEvent struct {
	OffsetMs uint32
	Notes    Notes
	Symbol   string
}

// ReducedEvent is a note-on or note-off with its absolute time in microseconds.
type ReducedEvent struct {
	Offset    int64
	IsNoteOff bool
	Note      uint8
}
