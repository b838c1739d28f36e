package tuning

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/tonal/errs"
)

const DefaultOctave = 4

// Parse reads a full pitch name such as "C#4", "Ebb3" or "B10".
func Parse(s string) (Tuning, error) {
	t, rest, err := ParsePrefix(strings.TrimSpace(s))
	if err != nil {
		return Tuning{}, err
	}
	if rest == "" {
		return Tuning{}, errs.New(errs.InvalidPitch, "%q has no octave", s)
	}
	octave, err := strconv.Atoi(rest)
	if err != nil || strings.HasPrefix(rest, "+") {
		return Tuning{}, errs.New(errs.InvalidPitch, "%q has a malformed octave", s)
	}
	return t.WithOctave(octave)
}

func MustParse(s string) Tuning {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseRoot is Parse with an optional octave, defaulting to octave 4.
func ParseRoot(s string) (Tuning, error) {
	s = strings.TrimSpace(s)
	t, rest, err := ParsePrefix(s)
	if err != nil {
		return Tuning{}, err
	}
	if rest == "" {
		return t, nil
	}
	return Parse(s)
}

// ParsePrefix reads a letter and its accidentals from the front of s and
// returns the tuning in octave 4 together with whatever follows. Digits are
// left alone so chord symbols like "C7" keep their quality.
func ParsePrefix(s string) (Tuning, string, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return Tuning{}, "", errs.New(errs.InvalidPitch, "empty pitch name")
	}
	letter, err := ParseLetter(r)
	if err != nil {
		return Tuning{}, "", err
	}
	rest := s[size:]
	accidentals := 0
scan:
	for rest != "" {
		r, size := utf8.DecodeRuneInString(rest)
		switch r {
		case '#', '♯':
			accidentals++
		case 'b', '♭':
			accidentals--
		case 'x', '𝄪':
			accidentals += 2
		default:
			break scan
		}
		rest = rest[size:]
	}
	t := Tuning{letter: letter, accidentals: accidentals, octave: DefaultOctave}
	if err := t.validate(); err != nil {
		return Tuning{}, "", err
	}
	return t, rest, nil
}
