package scale

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
)

// none marks a scale step that carries no chord built from the scale's own tones.
const none chord.Quality = -1

var (
	majorTriads   = []chord.Quality{chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Major, chord.Minor, chord.Diminished}
	majorSevenths = []chord.Quality{chord.Major7, chord.Minor7, chord.Minor7, chord.Major7, chord.Dominant7, chord.Minor7, chord.HalfDiminished7}
)

func repeat(q chord.Quality, n int) []chord.Quality {
	out := make([]chord.Quality, n)
	for i := range out {
		out[i] = q
	}
	return out
}

func triadsOf(t Type) []chord.Quality {
	if k, ok := modeIndex[t]; ok {
		return rotate(majorTriads, k)
	}
	switch t {
	case HarmonicMinor:
		return []chord.Quality{chord.Minor, chord.Diminished, chord.Augmented, chord.Minor, chord.Major, chord.Major, chord.Diminished}
	case MelodicMinor:
		return []chord.Quality{chord.Minor, chord.Minor, chord.Augmented, chord.Major, chord.Major, chord.Diminished, chord.Diminished}
	case PentatonicMajor:
		return []chord.Quality{chord.Major, chord.Suspended4, none, chord.Suspended2, chord.Minor}
	case PentatonicMinor:
		return []chord.Quality{chord.Minor, chord.Major, chord.Suspended4, none, chord.Suspended2}
	case Blues:
		return []chord.Quality{chord.Minor, chord.Major, chord.Suspended4, none, none, chord.Suspended2}
	case WholeTone:
		return repeat(chord.Augmented, 6)
	case Octatonic:
		return repeat(chord.Diminished, 8)
	case BebopDominant:
		return []chord.Quality{chord.Major, chord.Minor, chord.Diminished, chord.Major, chord.Minor, chord.Minor, chord.Major, chord.Diminished}
	case Hijaz:
		return []chord.Quality{chord.Major, chord.Major, chord.Major, chord.Minor, none, chord.Augmented, none}
	case Hirajoshi:
		return []chord.Quality{chord.Minor, none, none, chord.Suspended4, chord.Major}
	case InSen:
		return []chord.Quality{chord.Suspended4, none, chord.Suspended4, chord.Diminished, chord.Minor}
	}
	return nil
}

func seventhsOf(t Type) []chord.Quality {
	if k, ok := modeIndex[t]; ok {
		return rotate(majorSevenths, k)
	}
	switch t {
	case HarmonicMinor:
		return []chord.Quality{chord.MinorMajor7, chord.HalfDiminished7, chord.AugmentedMajor7, chord.Minor7, chord.Dominant7, chord.Major7, chord.Diminished7}
	case MelodicMinor:
		return []chord.Quality{chord.MinorMajor7, chord.Minor7, chord.AugmentedMajor7, chord.Dominant7, chord.Dominant7, chord.HalfDiminished7, chord.HalfDiminished7}
	case WholeTone:
		return repeat(chord.Augmented7, 6)
	case Octatonic:
		return repeat(chord.Diminished7, 8)
	case BebopDominant:
		return []chord.Quality{chord.Dominant7, chord.Minor7, chord.HalfDiminished7, chord.Major7, chord.Minor7, chord.Minor7, chord.Major7, chord.HalfDiminished7}
	}
	return nil
}

func (s Scale) chordAt(n int, table []chord.Quality, kind string) (chord.Chord, error) {
	if n < 1 {
		return chord.Chord{}, errs.New(errs.InvalidScaleDegree, "degree %d", n)
	}
	if len(table) == 0 {
		return chord.Chord{}, errs.New(errs.InvalidScaleDegree, "%s has no %s table", s.typ, kind)
	}
	q := table[(n-1)%len(table)]
	if q == none {
		return chord.Chord{}, errs.New(errs.InvalidScaleDegree, "%s has no %s on degree %d", s.typ, kind, n)
	}
	root, err := s.Degree(n)
	if err != nil {
		return chord.Chord{}, err
	}
	return chord.New(root, q), nil
}

// DegreeChord is the triad built from the scale's own tones on degree n.
// Degrees past the first octave wrap onto the same table.
func (s Scale) DegreeChord(n int) (chord.Chord, error) {
	return s.chordAt(n, triadsOf(s.typ), "triad")
}

// DegreeSeventh is DegreeChord with the diatonic seventh stacked on top.
func (s Scale) DegreeSeventh(n int) (chord.Chord, error) {
	return s.chordAt(n, seventhsOf(s.typ), "seventh chord")
}

var characteristic = map[Type]interval.Interval{
	Dorian:        interval.MajorSixth,
	Phrygian:      interval.MinorSecond,
	Lydian:        interval.AugmentedFourth,
	Mixolydian:    interval.MinorSeventh,
	Aeolian:       interval.MinorSixth,
	NaturalMinor:  interval.MinorSixth,
	Locrian:       interval.DiminishedFifth,
	HarmonicMinor: interval.MajorSeventh,
	MelodicMinor:  interval.MajorSixth,
}

// CharacteristicInterval is the interval above the root that sets a mode
// apart from major or natural minor. Major itself and the non-modal scales
// have none.
func (s Scale) CharacteristicInterval() (interval.Interval, bool) {
	i, ok := characteristic[s.typ]
	return i, ok
}

type Function int

const (
	Unknown Function = iota
	Tonic
	Subdominant
	Dominant
)

func (f Function) String() string {
	switch f {
	case Tonic:
		return "Tonic"
	case Subdominant:
		return "Subdominant"
	case Dominant:
		return "Dominant"
	}
	return "Unknown"
}

// Function compares the spelled chord root with degrees 1, 4 and 5, ignoring
// octaves. Enharmonic respellings do not match.
func (s Scale) Function(c chord.Chord) Function {
	for _, f := range []struct {
		degree int
		fn     Function
	}{{1, Tonic}, {4, Subdominant}, {5, Dominant}} {
		t, err := s.Degree(f.degree)
		if err != nil {
			continue
		}
		if t.SameClass(c.Root()) {
			return f.fn
		}
	}
	return Unknown
}

// Containing lists every named scale, on each of the twelve canonically
// spelled roots, whose pitch classes cover all of the chord's tones.
// Chromatic is left out since it contains everything.
func Containing(c chord.Chord) ([]Scale, error) {
	notes, err := c.Components()
	if err != nil {
		return nil, errors.Wrapf(err, "scales containing %s", c)
	}
	var out []Scale
	for n := 60; n < 72; n++ {
		root, err := tuning.FromNumber(n)
		if err != nil {
			return nil, err
		}
		for _, t := range Types {
			if t == Chromatic {
				continue
			}
			s, err := New(root, t)
			if err != nil {
				return nil, err
			}
			if containsAll(s, notes) {
				out = append(out, s)
			}
		}
	}
	return out, nil
}

func containsAll(s Scale, notes []tuning.Tuning) bool {
	classes := s.pitchClasses()
	for _, n := range notes {
		if !classes[n.PitchClass()] {
			return false
		}
	}
	return true
}

// Common is the diatonic triad on a degree of the major scale over root,
// e.g. Common(C, 5) is G major.
func Common(root tuning.Tuning, degree int) (chord.Chord, error) {
	s, err := New(root, Major)
	if err != nil {
		return chord.Chord{}, err
	}
	return s.DegreeChord(degree)
}
