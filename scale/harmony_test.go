package scale

import (
	"errors"
	"testing"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
	"github.com/stretchr/testify/assert"
)

func chordNames(t *testing.T, c chord.Chord) []string {
	t.Helper()
	notes, err := c.Components()
	assert.Nil(t, err)
	return names(notes)
}

func TestDegreeChord(t *testing.T) {
	assert := assert.New(t)
	c := MustNew(tuning.MustParse("C4"), Major)

	want := []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim", "C"}
	for i, sym := range want {
		got, err := c.DegreeChord(i + 1)
		assert.Nil(err)
		assert.Equal(sym, got.String(), i+1)
	}

	g, err := c.DegreeChord(5)
	assert.Nil(err)
	assert.Equal([]string{"G4", "B4", "D5"}, chordNames(t, g))

	a := MustNew(tuning.MustParse("A4"), HarmonicMinor)
	e, err := a.DegreeChord(5)
	assert.Nil(err)
	assert.Equal([]string{"E5", "G#5", "B5"}, chordNames(t, e))
	e7, err := a.DegreeSeventh(5)
	assert.Nil(err)
	assert.Equal("E7", e7.String())

	_, err = c.DegreeChord(0)
	assert.True(errors.Is(err, errs.ErrInvalidScaleDegree))
	_, err = MustNew(tuning.MustParse("C4"), PentatonicMajor).DegreeChord(3)
	assert.True(errors.Is(err, errs.ErrInvalidScaleDegree))
	_, err = MustNew(tuning.MustParse("C4"), Chromatic).DegreeChord(1)
	assert.True(errors.Is(err, errs.ErrInvalidScaleDegree))
	_, err = MustNew(tuning.MustParse("C4"), Blues).DegreeSeventh(1)
	assert.True(errors.Is(err, errs.ErrInvalidScaleDegree))
}

func TestDegreeSeventh(t *testing.T) {
	assert := assert.New(t)
	c := MustNew(tuning.MustParse("C4"), Major)
	want := []string{"Cmaj7", "Dm7", "Em7", "Fmaj7", "G7", "Am7", "Bm7b5"}
	for i, sym := range want {
		got, err := c.DegreeSeventh(i + 1)
		assert.Nil(err)
		assert.Equal(sym, got.String(), i+1)
	}
}

// every chord a scale offers must be built from its own tones
func TestDegreeChordsStayInScale(t *testing.T) {
	for _, typ := range Types {
		s := MustNew(tuning.MustParse("C4"), typ)
		for n := 1; n <= s.IntervalCount(); n++ {
			for _, build := range []func(int) (chord.Chord, error){s.DegreeChord, s.DegreeSeventh} {
				c, err := build(n)
				if err != nil {
					assert.True(t, errors.Is(err, errs.ErrInvalidScaleDegree), "%s %d", typ, n)
					continue
				}
				notes, err := c.Components()
				assert.Nil(t, err)
				for _, note := range notes {
					assert.True(t, s.Contains(note), "%s degree %d: %s not in scale", typ, n, note)
				}
			}
		}
	}
}

func TestCharacteristicInterval(t *testing.T) {
	assert := assert.New(t)
	root := tuning.MustParse("C4")

	i, ok := MustNew(root, Dorian).CharacteristicInterval()
	assert.True(ok)
	assert.Equal(interval.MajorSixth, i)

	i, ok = MustNew(root, Lydian).CharacteristicInterval()
	assert.True(ok)
	assert.Equal(interval.AugmentedFourth, i)

	_, ok = MustNew(root, Major).CharacteristicInterval()
	assert.False(ok)
	_, ok = MustNew(root, Blues).CharacteristicInterval()
	assert.False(ok)
}

func TestFunction(t *testing.T) {
	assert := assert.New(t)
	c := MustNew(tuning.MustParse("C4"), Major)

	assert.Equal(Tonic, c.Function(chord.New(tuning.MustParse("C2"), chord.Major)))
	assert.Equal(Subdominant, c.Function(chord.New(tuning.MustParse("F5"), chord.Major7)))
	assert.Equal(Dominant, c.Function(chord.New(tuning.MustParse("G3"), chord.Dominant7)))
	assert.Equal(Unknown, c.Function(chord.New(tuning.MustParse("D4"), chord.Minor)))
	// spelling matters, not just the pitch
	assert.Equal(Unknown, c.Function(chord.New(tuning.MustParse("E#4"), chord.Major)))
	assert.Equal("Dominant", Dominant.String())
}

func TestContaining(t *testing.T) {
	assert := assert.New(t)
	scales, err := Containing(chord.MustParse("C"))
	assert.Nil(err)

	found := map[string]bool{}
	for _, s := range scales {
		found[s.String()] = true
	}
	assert.True(found["C Major"])
	assert.True(found["F Major"])
	assert.True(found["G Major"])
	assert.True(found["A NaturalMinor"])
	assert.False(found["C WholeTone"])
	assert.False(found["D Major"])
	assert.False(found["C Chromatic"])
}

func TestCommon(t *testing.T) {
	assert := assert.New(t)
	c, err := Common(tuning.MustParse("C4"), 5)
	assert.Nil(err)
	assert.Equal("G", c.String())

	c, err = Common(tuning.MustParse("Eb4"), 2)
	assert.Nil(err)
	assert.Equal("Fm", c.String())
}
