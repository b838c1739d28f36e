// Package tuning models spelled pitches. Every transposition goes through
// AddInterval so that the letter name a musician would write is preserved.
package tuning

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/util"
)

const (
	MinOctave = 0
	MaxOctave = 10

	// absolute numbers of C0 and C10
	MinNumber = 12
	MaxNumber = 132

	ConcertA     = 440.0
	ConcertANote = 69
)

// Tuning is an immutable spelled pitch. The zero value is C0.
type Tuning struct {
	letter      Letter
	accidentals int
	octave      int
	frequency   float64
}

// New builds a spelled pitch. The octave must be 0..10 and the sounding pitch
// must lie within C0..C10, so D10 is rejected with InvalidOctave.
func New(letter Letter, accidentals, octave int) (Tuning, error) {
	t := Tuning{letter: letter, accidentals: accidentals, octave: octave}
	if letter < C || letter > B {
		return Tuning{}, errs.New(errs.InvalidPitch, "unknown letter %d", int(letter))
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func MustNew(letter Letter, accidentals, octave int) Tuning {
	t, err := New(letter, accidentals, octave)
	if err != nil {
		panic(err)
	}
	return t
}

type spelling struct {
	letter      Letter
	accidentals int
}

// canonical spelling of each pitch class
var canonical = [12]spelling{
	{C, 0}, {C, 1}, {D, 0}, {E, -1}, {E, 0}, {F, 0},
	{F, 1}, {G, 0}, {A, -1}, {A, 0}, {B, -1}, {B, 0},
}

var sharpSpelling = [12]spelling{
	{C, 0}, {C, 1}, {D, 0}, {D, 1}, {E, 0}, {F, 0},
	{F, 1}, {G, 0}, {G, 1}, {A, 0}, {A, 1}, {B, 0},
}

var flatSpelling = [12]spelling{
	{C, 0}, {D, -1}, {D, 0}, {E, -1}, {E, 0}, {F, 0},
	{G, -1}, {G, 0}, {A, -1}, {A, 0}, {B, -1}, {B, 0},
}

// FromNumber spells an absolute pitch number (C4 = 60) canonically.
func FromNumber(n int) (Tuning, error) {
	if n < MinNumber || n > MaxNumber {
		return Tuning{}, errs.New(errs.InvalidOctave, "pitch number %d is outside %d..%d", n, MinNumber, MaxNumber)
	}
	c := canonical[util.Mod(n, 12)]
	return Tuning{letter: c.letter, accidentals: c.accidentals, octave: util.FloorDiv(n, 12) - 1}, nil
}

func (t Tuning) validate() error {
	if t.octave < MinOctave || t.octave > MaxOctave {
		return errs.New(errs.InvalidOctave, "octave %d is outside %d..%d", t.octave, MinOctave, MaxOctave)
	}
	if n := t.Number(); n < MinNumber || n > MaxNumber {
		return errs.New(errs.InvalidOctave, "%s sounds outside C0..C10", t)
	}
	return nil
}

func (t Tuning) Letter() Letter {
	return t.letter
}

func (t Tuning) Accidentals() int {
	return t.accidentals
}

func (t Tuning) Octave() int {
	return t.octave
}

// Number is the absolute semitone number, MIDI style (C4 = 60).
func (t Tuning) Number() int {
	return (t.octave+1)*12 + t.letter.Semitone() + t.accidentals
}

// PitchClass is Number folded into 0..11.
func (t Tuning) PitchClass() int {
	return util.Mod(t.Number(), 12)
}

// Enharmonic reports whether both tunings sound the same pitch.
func (t Tuning) Enharmonic(o Tuning) bool {
	return t.Number() == o.Number()
}

// SameClass compares spelling while ignoring the octave.
func (t Tuning) SameClass(o Tuning) bool {
	return t.letter == o.letter && t.accidentals == o.accidentals
}

func (t Tuning) WithOctave(octave int) (Tuning, error) {
	out := Tuning{letter: t.letter, accidentals: t.accidentals, octave: octave}
	if err := out.validate(); err != nil {
		return Tuning{}, err
	}
	return out, nil
}

// WithFrequency pins the frequency reported by Frequency.
func (t Tuning) WithFrequency(hz float64) Tuning {
	t.frequency = hz
	return t
}

// Frequency is the equal tempered frequency (A4 = 440Hz) unless overridden.
func (t Tuning) Frequency() float64 {
	if t.frequency > 0 {
		return t.frequency
	}
	return ConcertA * math.Pow(2, float64(t.Number()-ConcertANote)/12)
}

// AddInterval steps the letter by the interval's degree and then spells the
// accidentals needed to land on the target pitch.
func (t Tuning) AddInterval(i interval.Interval) (Tuning, error) {
	index := int(t.letter) + i.Steps()
	letter := Letter(util.Mod(index, 7))
	octave := t.octave + util.FloorDiv(index, 7)
	target := t.Number() + i.Semitones()
	out := Tuning{
		letter:      letter,
		accidentals: target - ((octave+1)*12 + letter.Semitone()),
		octave:      octave,
	}
	if err := out.validate(); err != nil {
		return Tuning{}, errors.Wrapf(err, "%s + %s", t, i)
	}
	return out, nil
}

// SubInterval is AddInterval with the interval negated.
func (t Tuning) SubInterval(i interval.Interval) (Tuning, error) {
	return t.AddInterval(i.Negate())
}

// Simple respells the same pitch with at most one accidental. Sharps stay on
// the sharp side and flats on the flat side, so C# and Bb are already simple
// while E# becomes F and Cbb becomes Bb.
func (t Tuning) Simple() (Tuning, error) {
	if t.accidentals == 0 {
		return t, nil
	}
	table := flatSpelling
	if t.accidentals > 0 {
		table = sharpSpelling
	}
	n := t.Number()
	c := table[util.Mod(n, 12)]
	out := Tuning{letter: c.letter, accidentals: c.accidentals, octave: util.FloorDiv(n, 12) - 1, frequency: t.frequency}
	if err := out.validate(); err != nil {
		return Tuning{}, err
	}
	return out, nil
}

func (t Tuning) Sharp() (Tuning, error) {
	return t.AddInterval(interval.AugmentedUnison)
}

func (t Tuning) Flat() (Tuning, error) {
	return t.AddInterval(interval.AugmentedUnison.Negate())
}

// Up moves the pitch n octaves higher.
func (t Tuning) Up(octaves int) (Tuning, error) {
	return t.Transpose(12 * octaves)
}

func (t Tuning) Down(octaves int) (Tuning, error) {
	return t.Transpose(-12 * octaves)
}

// Transpose moves by a raw semitone count using the canonical interval for it.
func (t Tuning) Transpose(semitones int) (Tuning, error) {
	i, err := interval.FromSemitones(semitones)
	if err != nil {
		return Tuning{}, err
	}
	return t.AddInterval(i)
}

// IntervalBetween spells the interval from a up to b, keeping the letter
// distance so that C to D# is an augmented second rather than a minor third.
func IntervalBetween(a, b Tuning) (interval.Interval, error) {
	steps := (b.octave*7 + int(b.letter)) - (a.octave*7 + int(a.letter))
	i, err := interval.FromSteps(steps, b.Number()-a.Number())
	if err != nil {
		return interval.Interval{}, errors.Wrapf(err, "%s to %s", a, b)
	}
	return i, nil
}

// Name is the spelling without the octave, e.g. "F#".
func (t Tuning) Name() string {
	return t.letter.String() + accidentalString(t.accidentals)
}

func (t Tuning) String() string {
	return t.Name() + strconv.Itoa(t.octave)
}

func accidentalString(n int) string {
	if n > 0 {
		return strings.Repeat("#", n)
	}
	return strings.Repeat("b", -n)
}
