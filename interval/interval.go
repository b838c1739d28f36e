// Package interval implements the quality/degree interval calculus: building
// intervals from a quality and a diatonic degree or from a raw semitone count,
// inverting and combining them, and classifying their consonance.
package interval

import (
	"fmt"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/util"
)

type Quality int

const (
	Perfect Quality = iota
	Major
	Minor
	Augmented
	Diminished
)

func (q Quality) String() string {
	switch q {
	case Perfect:
		return "Perfect"
	case Major:
		return "Major"
	case Minor:
		return "Minor"
	case Augmented:
		return "Augmented"
	case Diminished:
		return "Diminished"
	default:
		return fmt.Sprintf("Quality(%d)", int(q))
	}
}

// Symbol is the prefix used in interval names: P, M, m, Aug, Dim.
func (q Quality) Symbol() string {
	switch q {
	case Perfect:
		return "P"
	case Major:
		return "M"
	case Minor:
		return "m"
	case Augmented:
		return "Aug"
	case Diminished:
		return "Dim"
	default:
		return "?"
	}
}

type Consonance int

const (
	Consonant Consonance = iota
	Imperfect
	Dissonant
)

func (c Consonance) String() string {
	switch c {
	case Consonant:
		return "Consonant"
	case Imperfect:
		return "Imperfect"
	default:
		return "Dissonant"
	}
}

const MaxDegree = 127

// natural semitone span of each degree within the octave (major or perfect)
var naturalSemitones = [7]int{0, 2, 4, 5, 7, 9, 11}

// consonance indexed by [reduced degree - 1][quality]
var consonanceTable = [7][5]Consonance{
	{Consonant, Dissonant, Dissonant, Dissonant, Dissonant},
	{Dissonant, Dissonant, Dissonant, Dissonant, Dissonant},
	{Dissonant, Imperfect, Imperfect, Dissonant, Dissonant},
	{Consonant, Dissonant, Dissonant, Dissonant, Dissonant},
	{Consonant, Dissonant, Dissonant, Dissonant, Dissonant},
	{Dissonant, Imperfect, Imperfect, Dissonant, Dissonant},
	{Dissonant, Dissonant, Dissonant, Dissonant, Dissonant},
}

// canonical spelling of each pitch class above a root; the tritone is
// decided by direction in FromSemitones
var classTable = [12]struct {
	quality Quality
	degree  int
}{
	{Perfect, 1},
	{Minor, 2},
	{Major, 2},
	{Minor, 3},
	{Major, 3},
	{Perfect, 4},
	{Augmented, 4},
	{Perfect, 5},
	{Minor, 6},
	{Major, 6},
	{Minor, 7},
	{Major, 7},
}

type Interval struct {
	quality    Quality
	degree     int
	semitones  int
	descending bool
}

func reduce(degree int) (reduced, octaves int) {
	return (degree-1)%7 + 1, (degree - 1) / 7
}

func perfectCapable(reduced int) bool {
	return reduced == 1 || reduced == 4 || reduced == 5
}

func adjustment(q Quality, reduced int) (int, bool) {
	perfect := perfectCapable(reduced)
	switch q {
	case Perfect:
		if perfect {
			return 0, true
		}
	case Major:
		if !perfect {
			return 0, true
		}
	case Minor:
		if !perfect {
			return -1, true
		}
	case Augmented:
		return 1, true
	case Diminished:
		if perfect {
			return -1, true
		}
		return -2, true
	}
	return 0, false
}

func qualityFor(adj int, reduced int) (Quality, bool) {
	if perfectCapable(reduced) {
		switch adj {
		case 0:
			return Perfect, true
		case 1:
			return Augmented, true
		case -1:
			return Diminished, true
		}
		return 0, false
	}
	switch adj {
	case 0:
		return Major, true
	case -1:
		return Minor, true
	case 1:
		return Augmented, true
	case -2:
		return Diminished, true
	}
	return 0, false
}

func checkDegree(degree int) error {
	if degree < 1 || degree > MaxDegree {
		return errs.New(errs.InvalidIntervalDegree, "degree %d is outside 1..%d", degree, MaxDegree)
	}
	return nil
}

// New builds an ascending interval from a quality and a 1-based degree.
func New(q Quality, degree int) (Interval, error) {
	if err := checkDegree(degree); err != nil {
		return Interval{}, err
	}
	reduced, octaves := reduce(degree)
	adj, ok := adjustment(q, reduced)
	if !ok {
		return Interval{}, errs.New(errs.InvalidIntervalQuality, "%s is not a valid quality for degree %d", q, degree)
	}
	return Interval{
		quality:   q,
		degree:    degree,
		semitones: 12*octaves + naturalSemitones[reduced-1] + adj,
	}, nil
}

// FromSemitones picks the canonical interval for a signed semitone count.
func FromSemitones(semitones int) (Interval, error) {
	abs := util.Abs(semitones)
	class, octaves := abs%12, abs/12
	descending := semitones < 0

	entry := classTable[class]
	if class == 6 && descending {
		entry.quality, entry.degree = Diminished, 5
	}
	degree := entry.degree + 7*octaves
	if err := checkDegree(degree); err != nil {
		return Interval{}, err
	}
	return Interval{
		quality:    entry.quality,
		degree:     degree,
		semitones:  semitones,
		descending: descending,
	}, nil
}

// FromDegree names the interval spanning the given diatonic degree and signed
// semitone count, e.g. (2, 3) is an augmented second.
func FromDegree(degree, semitones int) (Interval, error) {
	if err := checkDegree(degree); err != nil {
		return Interval{}, err
	}
	dir := 1
	if semitones < 0 {
		dir = -1
	}
	return FromSteps((degree-1)*dir, semitones)
}

// FromSteps builds an interval from signed diatonic (letter) steps and signed
// semitones. The direction follows the steps, or the semitones for unisons.
func FromSteps(steps, semitones int) (Interval, error) {
	descending := steps < 0 || (steps == 0 && semitones < 0)
	span := semitones
	if descending {
		span = -semitones
	}
	degree := util.Abs(steps) + 1
	if err := checkDegree(degree); err != nil {
		return Interval{}, err
	}
	reduced, octaves := reduce(degree)
	adj := span - 12*octaves - naturalSemitones[reduced-1]
	q, ok := qualityFor(adj, reduced)
	if !ok {
		return Interval{}, errs.New(errs.InvalidIntervalQuality,
			"%d semitones cannot span degree %d", semitones, degree)
	}
	return Interval{quality: q, degree: degree, semitones: semitones, descending: descending}, nil
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) Degree() int {
	return i.degree
}

// ReducedDegree folds compound degrees into 1..7.
func (i Interval) ReducedDegree() int {
	r, _ := reduce(i.degree)
	return r
}

func (i Interval) Semitones() int {
	return i.semitones
}

// SemitonesMod is the pitch-class distance in [0, 12).
func (i Interval) SemitonesMod() int {
	return util.Mod(i.semitones, 12)
}

func (i Interval) Descending() bool {
	return i.descending
}

// Steps is the signed number of letter names the interval moves.
func (i Interval) Steps() int {
	if i.descending {
		return -(i.degree - 1)
	}
	return i.degree - 1
}

func (i Interval) IsCompound() bool {
	return i.degree > 8
}

// Simple folds a compound interval into its single-octave form, keeping
// direction. Octaves stay octaves.
func (i Interval) Simple() Interval {
	if !i.IsCompound() {
		return i
	}
	reduced, octaves := reduce(i.degree)
	dir := 1
	if i.descending {
		dir = -1
	}
	return Interval{
		quality:    i.quality,
		degree:     reduced,
		semitones:  i.semitones - dir*12*octaves,
		descending: i.descending,
	}
}

func (i Interval) Negate() Interval {
	return Interval{
		quality:    i.quality,
		degree:     i.degree,
		semitones:  -i.semitones,
		descending: !i.descending,
	}
}

// Invert returns the complementary interval (M3 -> m6) in the opposite
// direction. Compound intervals are reduced first. Semitones are those of the
// complement with the new sign (M3 gives -8), not the original's negated.
func (i Interval) Invert() Interval {
	var q Quality
	switch i.quality {
	case Major:
		q = Minor
	case Minor:
		q = Major
	case Augmented:
		q = Diminished
	case Diminished:
		q = Augmented
	default:
		q = Perfect
	}
	reduced, _ := reduce(i.degree)
	degree := 9 - reduced
	adj, _ := adjustment(q, util.Mod(degree-1, 7)+1)
	span := naturalSemitones[util.Mod(degree-1, 7)] + adj
	if degree == 8 {
		span += 12
	}
	semitones := span
	if !i.descending {
		semitones = -span
	}
	return Interval{quality: q, degree: degree, semitones: semitones, descending: !i.descending}
}

func (i Interval) Add(o Interval) (Interval, error) {
	return FromSteps(i.Steps()+o.Steps(), i.semitones+o.semitones)
}

func (i Interval) Sub(o Interval) (Interval, error) {
	return i.Add(o.Negate())
}

// Scale multiplies the interval, e.g. an octave scaled by 2 is a fifteenth.
func (i Interval) Scale(n int) (Interval, error) {
	return FromSteps(i.Steps()*n, i.semitones*n)
}

func (i Interval) Consonance() Consonance {
	reduced, _ := reduce(i.degree)
	return consonanceTable[reduced-1][i.quality]
}

func (i Interval) Name() string {
	return fmt.Sprintf("%s%d", i.quality.Symbol(), i.degree)
}

func (i Interval) String() string {
	if i.descending {
		return "-" + i.Name()
	}
	return i.Name()
}
