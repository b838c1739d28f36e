package chord

import (
	"errors"
	"testing"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/tuning"
	"github.com/stretchr/testify/assert"
)

func names(notes []tuning.Tuning) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func components(t *testing.T, c Chord) []string {
	t.Helper()
	notes, err := c.Components()
	assert.Nil(t, err)
	return names(notes)
}

func TestTriadComponents(t *testing.T) {
	c4 := tuning.MustParse("C4")
	assert := assert.New(t)
	assert.Equal([]string{"C4", "E4", "G4"}, components(t, New(c4, Major)))
	assert.Equal([]string{"C4", "Eb4", "G4"}, components(t, New(c4, Minor)))
	assert.Equal([]string{"C4", "Eb4", "Gb4"}, components(t, New(c4, Diminished)))
	assert.Equal([]string{"C4", "E4", "G#4"}, components(t, New(c4, Augmented)))
}

func TestSeventhComponents(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"G4", "B4", "D5", "F5"}, components(t, New(tuning.MustParse("G4"), Dominant7)))
	assert.Equal([]string{"B4", "D5", "F5", "Ab5"}, components(t, New(tuning.MustParse("B4"), Diminished7)))
	assert.Equal([]string{"C4", "E4", "G#4", "Bb4"}, components(t, New(tuning.MustParse("C4"), Augmented7)))
	assert.Equal([]string{"F#4", "A4", "C5", "E5"}, components(t, New(tuning.MustParse("F#4"), HalfDiminished7)))
	assert.Equal([]string{"D4", "F4", "A4", "C5", "E5"}, components(t, New(tuning.MustParse("D4"), Minor9)))
}

func TestNumbers(t *testing.T) {
	n, err := New(tuning.MustParse("C4"), Major).Numbers()
	assert.Nil(t, err)
	assert.Equal(t, []int{60, 64, 67}, n)
}

func TestInversions(t *testing.T) {
	assert := assert.New(t)
	cmaj := New(tuning.MustParse("C4"), Major)

	assert.Equal([]string{"E4", "G4", "C5"}, components(t, cmaj.Invert(First)))
	assert.Equal([]string{"G4", "C5", "E5"}, components(t, cmaj.Invert(Second)))

	_, err := cmaj.Invert(Third).Components()
	assert.True(errors.Is(err, errs.ErrUnsupportedChord))

	c7 := New(tuning.MustParse("C4"), Dominant7)
	assert.Equal([]string{"Bb4", "C5", "E5", "G5"}, components(t, c7.Invert(Third)))
}

func TestVoicings(t *testing.T) {
	assert := assert.New(t)
	c4 := tuning.MustParse("C4")
	cmaj7 := New(c4, Major7)

	assert.Equal([]string{"C4", "E5", "G4", "B5"}, components(t, cmaj7.Revoice(Open)))
	assert.Equal([]string{"G3", "C4", "E4", "B4"}, components(t, cmaj7.Revoice(Drop2)))
	assert.Equal([]string{"E3", "C4", "G4", "B4"}, components(t, cmaj7.Revoice(Drop3)))

	spread := New(c4, Major).Add(tuning.MustParse("E6"))
	assert.Equal([]string{"C4", "E4", "G4", "E5"}, components(t, spread.Revoice(Close)))

	assert.Equal([]string{"C4", "D4", "E4", "G4", "Bb4"}, components(t, New(c4, Dominant9).Revoice(Cluster)))

	_, err := New(c4, Suspended2).No(tuning.MustParse("G4")).Revoice(Drop3).Components()
	assert.True(errors.Is(err, errs.ErrUnsupportedChord))
}

func TestBuilders(t *testing.T) {
	assert := assert.New(t)
	c := New(tuning.MustParse("C4"), Major)

	maj7, err := c.Maj(7)
	assert.Nil(err)
	assert.Equal("Cmaj7", maj7.String())
	assert.Equal([]string{"C4", "E4", "G4", "B4"}, components(t, maj7))

	dom9, err := c.Dom(9)
	assert.Nil(err)
	assert.Equal("C9", dom9.String())

	min7, err := c.Min(7)
	assert.Nil(err)
	assert.Equal("Cm7", min7.String())
	assert.Equal([]string{"C4", "Eb4", "G4", "Bb4"}, components(t, min7))

	_, err = c.Dom(8)
	assert.True(errors.Is(err, errs.ErrInvalidIntervalDegree))

	// builders never touch the receiver
	assert.Equal([]string{"C4", "E4", "G4"}, components(t, c))
}

func TestExtensions(t *testing.T) {
	assert := assert.New(t)
	c7 := New(tuning.MustParse("C4"), Dominant7)

	flat9 := c7.Add(tuning.MustParse("Db5"))
	assert.Equal([]string{"C4", "E4", "G4", "Bb4", "Db5"}, components(t, flat9))
	assert.Equal("C7(b9)", flat9.String())

	// an existing tone is not doubled
	same := c7.Add(tuning.MustParse("G4"))
	assert.Equal([]string{"C4", "E4", "G4", "Bb4"}, components(t, same))

	no5 := c7.No(tuning.MustParse("G4"))
	assert.Equal([]string{"C4", "E4", "Bb4"}, components(t, no5))
	assert.Equal("C7(no 5)", no5.String())

	// extensions keep their spelling
	sharp9 := New(tuning.MustParse("C4"), Major).Add(tuning.MustParse("D#5"))
	assert.Equal([]string{"C4", "E4", "G4", "D#5"}, components(t, sharp9))
	assert.Equal("C(#9)", sharp9.String())

	// a second tone on an occupied degree is ignored
	minorOverMajor := New(tuning.MustParse("C4"), Major).Add(tuning.MustParse("Eb4"))
	assert.Equal([]string{"C4", "E4", "G4"}, components(t, minorOverMajor))
	assert.Equal("C", minorOverMajor.String())

	// the same tone an octave up is a free compound degree
	tenth := New(tuning.MustParse("C4"), Major).Add(tuning.MustParse("Eb5"))
	assert.Equal([]string{"C4", "E4", "G4", "Eb5"}, components(t, tenth))

	// analysis keeps every input tone by raising the clashing one
	found, err := AnalyzeFrom([]tuning.Tuning{
		tuning.MustParse("C4"), tuning.MustParse("Eb4"), tuning.MustParse("E4"), tuning.MustParse("G4"),
	})
	assert.Nil(err)
	assert.Equal(Major, found.Quality())
	assert.Equal([]string{"C4", "E4", "G4", "Eb5"}, components(t, found))
}

func TestDuality(t *testing.T) {
	for _, root := range []string{"C4", "F#3", "Bb4", "Eb4"} {
		for _, q := range Qualities {
			t.Run(root+q.String(), func(t *testing.T) {
				notes, err := New(tuning.MustParse(root), q).Components()
				assert.Nil(t, err)
				got, err := AnalyzeFrom(notes)
				assert.Nil(t, err)
				assert.Equal(t, q, got.Quality())
				assert.Equal(t, tuning.MustParse(root), got.Root())
			})
		}
	}
}

func TestAnalyzeFrom(t *testing.T) {
	assert := assert.New(t)

	notes := []tuning.Tuning{
		tuning.MustParse("Db5"), tuning.MustParse("G4"), tuning.MustParse("C4"),
		tuning.MustParse("Bb4"), tuning.MustParse("E4"),
	}
	c, err := AnalyzeFrom(notes)
	assert.Nil(err)
	assert.Equal(Dominant7, c.Quality())
	assert.Equal("C7(b9)", c.String())

	c, err = AnalyzeFrom([]tuning.Tuning{tuning.MustParse("C4"), tuning.MustParse("E4"), tuning.MustParse("Bb4")})
	assert.Nil(err)
	assert.Equal("C7(no 5)", c.String())
	assert.Equal([]string{"C4", "E4", "Bb4"}, components(t, c))

	_, err = AnalyzeFrom(nil)
	assert.True(errors.Is(err, errs.ErrInvalidPitch))

	_, err = AnalyzeFrom([]tuning.Tuning{tuning.MustParse("C4")})
	assert.True(errors.Is(err, errs.ErrUnsupportedChord))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	c, err := Parse("Cmaj7")
	assert.Nil(err)
	assert.Equal(Major7, c.Quality())
	assert.Equal(tuning.MustParse("C4"), c.Root())

	c, err = Parse("F#m7b5")
	assert.Nil(err)
	assert.Equal(HalfDiminished7, c.Quality())
	assert.Equal("F#", c.Root().Name())

	c, err = Parse("Db dim7")
	assert.Nil(err)
	assert.Equal(Diminished7, c.Quality())
	assert.Equal("Db", c.Root().Name())

	c, err = Parse("G7/B")
	assert.Nil(err)
	assert.Equal(First, c.Inversion())
	assert.Equal([]string{"B4", "D5", "F5", "G5"}, components(t, c))
	assert.Equal("G7/B", c.String())

	c, err = Parse("C7(b9)")
	assert.Nil(err)
	assert.Equal([]string{"C4", "E4", "G4", "Bb4", "Db5"}, components(t, c))

	c, err = Parse("C7(no 5)")
	assert.Nil(err)
	assert.Equal([]string{"C4", "E4", "Bb4"}, components(t, c))

	c, err = Parse("C7(b5)")
	assert.Nil(err)
	assert.Equal([]string{"C4", "E4", "Gb4", "Bb4"}, components(t, c))
	assert.Equal("C7(b5)", c.String())

	c, err = Parse("Cadd9")
	assert.Nil(err)
	assert.Equal([]string{"C4", "E4", "G4", "D5"}, components(t, c))

	c, err = Parse("C/F#")
	assert.Nil(err)
	assert.Equal([]string{"F#3", "C4", "E4", "G4"}, components(t, c))
	assert.Equal("C/F#", c.String())

	for _, bad := range []string{"", "H7", "/C"} {
		_, err := Parse(bad)
		assert.True(errors.Is(err, errs.ErrInvalidPitch), bad)
	}
	for _, bad := range []string{"Cxyz", "C7(b9", "C7(q)"} {
		_, err := Parse(bad)
		assert.True(errors.Is(err, errs.ErrInvalidChordQuality), bad)
	}
}

func TestStringParsesBack(t *testing.T) {
	for _, root := range []string{"C4", "Eb4", "F#4", "Bb4"} {
		for _, q := range Qualities {
			sym := New(tuning.MustParse(root), q).String()
			c, err := Parse(sym)
			assert.Nil(t, err, sym)
			assert.Equal(t, q, c.Quality(), sym)
			assert.Equal(t, tuning.MustParse(root), c.Root(), sym)
		}
	}
}

func TestSimple(t *testing.T) {
	c, err := New(tuning.MustParse("B#3"), Major).Add(tuning.MustParse("Fbb4")).Simple()
	assert.Nil(t, err)
	assert.Equal(t, "C4", c.Root().String())
	assert.Equal(t, "Eb4", c.Extensions()[0].Tone.String())

	c, err = MustParse("C#m").Simple()
	assert.Nil(t, err)
	assert.Equal(t, "C#m", c.String())
}
