package midi

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("parsing %s panicked: %v", filepath, r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return ReadMidi(dat)
}

// ReadMidi parses an in-memory standard MIDI file.
func ReadMidi(dat []byte) (s *smf.SMF, e error) {
	defer func() {
		if r := recover(); r != nil {
			s, e = nil, errors.Errorf("parsing midi panicked: %v", r)
		}
	}()

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}
