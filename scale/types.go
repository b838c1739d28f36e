package scale

import (
	"fmt"
	"strings"

	"github.com/jsphweid/tonal/errs"
)

type Type int

const (
	Major Type = iota
	NaturalMinor
	HarmonicMinor
	MelodicMinor
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	PentatonicMajor
	PentatonicMinor
	Blues
	WholeTone
	Octatonic
	Chromatic
	BebopDominant
	Hijaz
	Hirajoshi
	InSen
	Custom
)

// Types lists every named pattern; Custom is built with NewCustom.
var Types = []Type{
	Major, NaturalMinor, HarmonicMinor, MelodicMinor,
	Ionian, Dorian, Phrygian, Lydian, Mixolydian, Aeolian, Locrian,
	PentatonicMajor, PentatonicMinor, Blues,
	WholeTone, Octatonic, Chromatic, BebopDominant,
	Hijaz, Hirajoshi, InSen,
}

var typeNames = map[Type]string{
	Major:           "Major",
	NaturalMinor:    "NaturalMinor",
	HarmonicMinor:   "HarmonicMinor",
	MelodicMinor:    "MelodicMinor",
	Ionian:          "Ionian",
	Dorian:          "Dorian",
	Phrygian:        "Phrygian",
	Lydian:          "Lydian",
	Mixolydian:      "Mixolydian",
	Aeolian:         "Aeolian",
	Locrian:         "Locrian",
	PentatonicMajor: "PentatonicMajor",
	PentatonicMinor: "PentatonicMinor",
	Blues:           "Blues",
	WholeTone:       "WholeTone",
	Octatonic:       "Octatonic",
	Chromatic:       "Chromatic",
	BebopDominant:   "BebopDominant",
	Hijaz:           "Hijaz",
	Hirajoshi:       "Hirajoshi",
	InSen:           "InSen",
	Custom:          "Custom",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType accepts names case-insensitively, ignoring '-', '_' and spaces,
// so "harmonic-minor" and "HarmonicMinor" are the same. "minor" is the
// natural minor.
func ParseType(s string) (Type, error) {
	key := normalize(s)
	if key == "minor" {
		return NaturalMinor, nil
	}
	for _, t := range Types {
		if normalize(t.String()) == key {
			return t, nil
		}
	}
	return 0, errs.New(errs.InvalidScaleDegree, "unknown scale type %q", s)
}

func normalize(s string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
}

// step is one move along a pattern: semitones climbed and letters advanced.
type step struct {
	semitones int
	letters   int
}

func uniform(semitones ...int) []step {
	out := make([]step, len(semitones))
	for i, s := range semitones {
		out[i] = step{semitones: s, letters: 1}
	}
	return out
}

func spelled(semitones, letters []int) []step {
	out := make([]step, len(semitones))
	for i := range semitones {
		out[i] = step{semitones: semitones[i], letters: letters[i]}
	}
	return out
}

var naturalMajor = []int{2, 2, 1, 2, 2, 2, 1}

func rotate[T any](s []T, k int) []T {
	out := make([]T, 0, len(s))
	out = append(out, s[k:]...)
	return append(out, s[:k]...)
}

// modeIndex is the rotation of the major pattern each mode starts on.
var modeIndex = map[Type]int{
	Major:        0,
	Ionian:       0,
	Dorian:       1,
	Phrygian:     2,
	Lydian:       3,
	Mixolydian:   4,
	NaturalMinor: 5,
	Aeolian:      5,
	Locrian:      6,
}

func patternOf(t Type) []step {
	if k, ok := modeIndex[t]; ok {
		return uniform(rotate(naturalMajor, k)...)
	}
	switch t {
	case HarmonicMinor:
		return uniform(2, 1, 2, 2, 1, 3, 1)
	case MelodicMinor:
		return uniform(2, 1, 2, 2, 2, 2, 1)
	case PentatonicMajor:
		return spelled([]int{2, 2, 3, 2, 3}, []int{1, 1, 2, 1, 2})
	case PentatonicMinor:
		return spelled([]int{3, 2, 2, 3, 2}, []int{2, 1, 1, 2, 1})
	case Blues:
		return spelled([]int{3, 2, 1, 1, 3, 2}, []int{2, 1, 1, 0, 2, 1})
	case WholeTone:
		return spelled([]int{2, 2, 2, 2, 2, 2}, []int{1, 1, 1, 1, 1, 2})
	case Octatonic:
		return spelled([]int{2, 1, 2, 1, 2, 1, 2, 1}, []int{1, 1, 1, 1, 1, 0, 1, 1})
	case Chromatic:
		return spelled(
			[]int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			[]int{0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 1},
		)
	case BebopDominant:
		return spelled([]int{2, 2, 1, 2, 2, 1, 1, 1}, []int{1, 1, 1, 1, 1, 1, 0, 1})
	case Hijaz:
		return uniform(1, 3, 1, 2, 1, 3, 1)
	case Hirajoshi:
		return spelled([]int{2, 1, 4, 1, 4}, []int{1, 1, 2, 1, 2})
	case InSen:
		return spelled([]int{1, 4, 2, 3, 2}, []int{1, 2, 1, 2, 1})
	}
	return nil
}
