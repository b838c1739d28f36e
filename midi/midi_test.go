package midi

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/scale"
	"github.com/jsphweid/tonal/tuning"
)

func progression(t *testing.T, symbols ...string) []byte {
	t.Helper()
	var chords []chord.Chord
	for _, s := range symbols {
		chords = append(chords, chord.MustParse(s))
	}
	var buf bytes.Buffer
	require.Nil(t, WriteProgression(&buf, chords, DefaultExportOptions()))
	return buf.Bytes()
}

func noteEvents(tr smf.Track) int {
	var n int
	for _, evt := range tr {
		msg := gomidi.Message(evt.Message)
		if msg.Is(gomidi.NoteOnMsg) || msg.Is(gomidi.NoteOffMsg) {
			n++
		}
	}
	return n
}

func TestAnalyzeNotes(t *testing.T) {
	assert := assert.New(t)

	c, tunings, err := AnalyzeNotes([]uint8{67, 60, 64})
	assert.Nil(err)
	assert.Equal("C", c.String())
	assert.Len(tunings, 3)

	_, _, err = AnalyzeNotes([]uint8{61})
	assert.True(errors.Is(err, errs.ErrUnsupportedChord))
}

func TestWriteAndExtract(t *testing.T) {
	assert := assert.New(t)

	s, err := ReadMidi(progression(t, "C", "F", "G7"))
	require.Nil(t, err)
	assert.Len(s.Tracks, 2)

	chords, err := ExtractChords(s)
	assert.Nil(err)
	assert.Equal([]model.ChordEvent{
		{OffsetMs: 0, Notes: []uint8{60, 64, 67}, Symbol: "C"},
		{OffsetMs: 500, Notes: []uint8{65, 69, 72}, Symbol: "F"},
		{OffsetMs: 1000, Notes: []uint8{67, 71, 74, 77}, Symbol: "G7"},
	}, chords)
}

func TestWriteScale(t *testing.T) {
	var buf bytes.Buffer
	s := scale.MustNew(tuning.MustParse("C4"), scale.Major)
	require.Nil(t, WriteScale(&buf, s, 0, DefaultExportOptions()))

	parsed, err := ReadMidi(buf.Bytes())
	require.Nil(t, err)
	assert.Equal(t, 8*2, noteEvents(parsed.Tracks[1]))

	// single notes never form a chord
	chords, err := ExtractChords(parsed)
	assert.Nil(t, err)
	assert.Empty(t, chords)
}

func TestWriteRejectsOutOfRange(t *testing.T) {
	var buf bytes.Buffer
	high := chord.New(tuning.MustParse("C10"), chord.Major)
	err := WriteProgression(&buf, []chord.Chord{high}, DefaultExportOptions())
	assert.NotNil(t, err)
}

func TestReadMidiFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "cfg.mid")
	require.Nil(t, os.WriteFile(path, progression(t, "C", "F", "G"), 0o644))
	s, err := ReadMidiFile(path)
	assert.Nil(err)
	assert.NotNil(s)

	_, err = ReadMidiFile(filepath.Join(dir, "missing.mid"))
	assert.NotNil(err)

	bad := filepath.Join(dir, "bad.mid")
	require.Nil(t, os.WriteFile(bad, []byte("not midi at all"), 0o644))
	_, err = ReadMidiFile(bad)
	assert.NotNil(err)
}

func TestExcerpt(t *testing.T) {
	s, err := ReadMidi(progression(t, "C", "F", "G7"))
	require.Nil(t, err)

	ex := Excerpt(s, 960, 3)
	assert.Len(t, ex.Tracks, 2)
	assert.Equal(t, 0, noteEvents(ex.Tracks[0]))
	assert.Equal(t, 3, noteEvents(ex.Tracks[1]))
}

func TestListener(t *testing.T) {
	assert := assert.New(t)
	got := make(chan Detection, 4)
	l := NewListener(20*time.Millisecond, func(d Detection) { got <- d })

	for _, key := range []uint8{60, 64, 67} {
		l.Handle(gomidi.NoteOn(0, key, 100), 0)
	}
	l.Handle(gomidi.ProgramChange(0, 3), 0)
	assert.Equal([]uint8{60, 64, 67}, l.Held())

	select {
	case d := <-got:
		assert.Nil(d.Err)
		assert.Equal("C", d.Chord.String())
	case <-time.After(2 * time.Second):
		t.Fatal("no chord reported")
	}

	l.Handle(gomidi.NoteOff(0, 64), 0)
	select {
	case d := <-got:
		assert.Equal("C(no 3)", d.Chord.String())
	case <-time.After(2 * time.Second):
		t.Fatal("no chord reported")
	}

	l.Handle(gomidi.NoteOff(0, 60), 0)
	select {
	case d := <-got:
		assert.True(errors.Is(d.Err, errs.ErrUnsupportedChord))
	case <-time.After(2 * time.Second):
		t.Fatal("no report for a single note")
	}
}
