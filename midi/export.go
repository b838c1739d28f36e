package midi

import (
	"io"

	"github.com/pkg/errors"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/constants"
	"github.com/jsphweid/tonal/scale"
)

type ExportOptions struct {
	Name     string
	Tempo    float64
	Channel  uint8
	Velocity uint8
	// Beats is the length of each chord or scale note in quarter notes.
	Beats int
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		Name:     "tonal",
		Tempo:    constants.DefaultTempo,
		Velocity: 100,
		Beats:    1,
	}
}

func (o ExportOptions) ticks() uint32 {
	beats := o.Beats
	if beats < 1 {
		beats = 1
	}
	return uint32(beats * constants.TicksPerQuarter)
}

// newSong builds the tempo track every export starts with.
func newSong(opts ExportOptions) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	tempo := opts.Tempo
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	var meta smf.Track
	meta.Add(0, smf.MetaTrackSequenceName(opts.Name))
	meta.Add(0, smf.MetaMeter(4, 4))
	meta.Add(0, smf.MetaTempo(tempo))
	meta.Close(0)
	if err := s.Add(meta); err != nil {
		return nil, errors.Wrap(err, "adding tempo track")
	}
	return s, nil
}

// addBlocks writes each group of note numbers as one block lasting opts.Beats.
func addBlocks(s *smf.SMF, blocks [][]int, opts ExportOptions) error {
	var tr smf.Track
	length := opts.ticks()
	for _, notes := range blocks {
		for _, n := range notes {
			tr.Add(0, gomidi.NoteOn(opts.Channel, uint8(n), opts.Velocity))
		}
		for i, n := range notes {
			var delta uint32
			if i == 0 {
				delta = length
			}
			tr.Add(delta, gomidi.NoteOff(opts.Channel, uint8(n)))
		}
	}
	tr.Close(0)
	return errors.Wrap(s.Add(tr), "adding note track")
}

// WriteProgression writes the chords one after another as a type 1 SMF.
func WriteProgression(w io.Writer, chords []chord.Chord, opts ExportOptions) error {
	blocks := make([][]int, 0, len(chords))
	for _, c := range chords {
		numbers, err := c.Numbers()
		if err != nil {
			return errors.Wrapf(err, "exporting %s", c)
		}
		blocks = append(blocks, numbers)
	}
	return write(w, blocks, opts)
}

// WriteScale writes the scale ascending over the given number of extra octaves.
func WriteScale(w io.Writer, s scale.Scale, octaves int, opts ExportOptions) error {
	notes, err := s.Generate(octaves)
	if err != nil {
		return errors.Wrapf(err, "exporting %s", s)
	}
	blocks := make([][]int, len(notes))
	for i, n := range notes {
		blocks[i] = []int{n.Number()}
	}
	return write(w, blocks, opts)
}

func write(w io.Writer, blocks [][]int, opts ExportOptions) error {
	for _, notes := range blocks {
		for _, n := range notes {
			if n < 0 || n > 127 {
				return errors.Errorf("note %d is outside the MIDI range", n)
			}
		}
	}
	s, err := newSong(opts)
	if err != nil {
		return err
	}
	if err := addBlocks(s, blocks, opts); err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return errors.Wrap(err, "writing midi")
}
