package tuning

import (
	"fmt"
	"unicode"

	"github.com/jsphweid/tonal/errs"
)

// Letter is a natural pitch name ordered by diatonic degree (C=0 .. B=6).
type Letter int

const (
	C Letter = iota
	D
	E
	F
	G
	A
	B
)

var letterSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

var letterNames = [7]string{"C", "D", "E", "F", "G", "A", "B"}

// Degree is the 1-based diatonic degree counted from C.
func (l Letter) Degree() int {
	return int(l) + 1
}

// Semitone is the natural offset above C within one octave.
func (l Letter) Semitone() int {
	return letterSemitones[l]
}

func (l Letter) String() string {
	if l < C || l > B {
		return fmt.Sprintf("Letter(%d)", int(l))
	}
	return letterNames[l]
}

func ParseLetter(r rune) (Letter, error) {
	switch unicode.ToUpper(r) {
	case 'C':
		return C, nil
	case 'D':
		return D, nil
	case 'E':
		return E, nil
	case 'F':
		return F, nil
	case 'G':
		return G, nil
	case 'A':
		return A, nil
	case 'B':
		return B, nil
	}
	return 0, errs.New(errs.InvalidPitch, "%q is not a pitch letter", r)
}
