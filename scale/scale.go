// Package scale generates spelled note sequences from interval patterns and
// answers degree and harmonic-function questions about them.
package scale

import (
	"github.com/pkg/errors"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
	"github.com/jsphweid/tonal/util"
)

type Scale struct {
	root  tuning.Tuning
	typ   Type
	steps []step
}

func New(root tuning.Tuning, t Type) (Scale, error) {
	steps := patternOf(t)
	if steps == nil {
		return Scale{}, errs.New(errs.InvalidScaleDegree, "%s needs an explicit pattern", t)
	}
	return Scale{root: root, typ: t, steps: steps}, nil
}

func MustNew(root tuning.Tuning, t Type) Scale {
	s, err := New(root, t)
	if err != nil {
		panic(err)
	}
	return s
}

// NewCustom builds a scale from semitone steps; letters follow the canonical
// spelling of each step.
func NewCustom(root tuning.Tuning, semitones []int) (Scale, error) {
	if len(semitones) == 0 {
		return Scale{}, errs.New(errs.InvalidScaleDegree, "custom scale has no steps")
	}
	steps := make([]step, len(semitones))
	for i, s := range semitones {
		if s <= 0 {
			return Scale{}, errs.New(errs.InvalidScaleDegree, "custom step %d must be positive", s)
		}
		iv, err := interval.FromSemitones(s)
		if err != nil {
			return Scale{}, err
		}
		steps[i] = step{semitones: s, letters: iv.Steps()}
	}
	return Scale{root: root, typ: Custom, steps: steps}, nil
}

func (s Scale) Root() tuning.Tuning {
	return s.root
}

func (s Scale) Type() Type {
	return s.typ
}

// Steps is the pattern in semitones.
func (s Scale) Steps() []int {
	out := make([]int, len(s.steps))
	for i, st := range s.steps {
		out[i] = st.semitones
	}
	return out
}

// IntervalCount is the number of notes per octave of the pattern.
func (s Scale) IntervalCount() int {
	return len(s.steps)
}

// SemitoneCount is the span of one full pass of the pattern.
func (s Scale) SemitoneCount() int {
	total := 0
	for _, st := range s.steps {
		total += st.semitones
	}
	return total
}

// Intervals is the pattern as spelled intervals between neighbours.
func (s Scale) Intervals() ([]interval.Interval, error) {
	out := make([]interval.Interval, len(s.steps))
	for i, st := range s.steps {
		iv, err := interval.FromSteps(st.letters, st.semitones)
		if err != nil {
			return nil, errors.Wrapf(err, "%s step %d", s.typ, i+1)
		}
		out[i] = iv
	}
	return out, nil
}

// Generate walks the pattern octaves+1 times from the root and returns every
// note passed, root and final note included.
func (s Scale) Generate(octaves int) ([]tuning.Tuning, error) {
	if octaves < 0 {
		return nil, errs.New(errs.InvalidScaleDegree, "negative octave count %d", octaves)
	}
	ivs, err := s.Intervals()
	if err != nil {
		return nil, err
	}
	cur := s.root
	out := make([]tuning.Tuning, 0, len(ivs)*(octaves+1)+1)
	out = append(out, cur)
	for o := 0; o <= octaves; o++ {
		for _, iv := range ivs {
			if cur, err = cur.AddInterval(iv); err != nil {
				return nil, err
			}
			out = append(out, cur)
		}
	}
	return out, nil
}

// Degree is the nth note of the scale counted from 1 at the root, running on
// into higher octaves.
func (s Scale) Degree(n int) (tuning.Tuning, error) {
	if n < 1 {
		return tuning.Tuning{}, errs.New(errs.InvalidScaleDegree, "degree %d", n)
	}
	ivs, err := s.Intervals()
	if err != nil {
		return tuning.Tuning{}, err
	}
	cur := s.root
	for k := 0; k < n-1; k++ {
		if cur, err = cur.AddInterval(ivs[k%len(ivs)]); err != nil {
			return tuning.Tuning{}, errors.Wrapf(err, "%s degree %d", s, n)
		}
	}
	return cur, nil
}

// Contains compares pitch classes, so enharmonic spellings match.
func (s Scale) Contains(t tuning.Tuning) bool {
	return s.pitchClasses()[t.PitchClass()]
}

func (s Scale) pitchClasses() map[int]bool {
	classes := map[int]bool{}
	pc := s.root.PitchClass()
	classes[pc] = true
	for _, st := range s.steps {
		pc = util.Mod(pc+st.semitones, 12)
		classes[pc] = true
	}
	return classes
}

// WithRoot keeps the pattern and moves the scale onto another root.
func (s Scale) WithRoot(root tuning.Tuning) Scale {
	s.root = root
	return s
}

// Shift moves the root by n scale steps, e.g. C major shifted by 4 is G major.
func (s Scale) Shift(n int) (Scale, error) {
	base := s
	if n < 0 {
		k := (-n + len(s.steps) - 1) / len(s.steps)
		var err error
		if base, err = s.Octave(-k); err != nil {
			return Scale{}, err
		}
		n += k * len(s.steps)
	}
	root, err := base.Degree(n + 1)
	if err != nil {
		return Scale{}, err
	}
	return base.WithRoot(root), nil
}

// Octave moves the root by whole passes of the pattern.
func (s Scale) Octave(n int) (Scale, error) {
	root, err := s.root.Transpose(n * s.SemitoneCount())
	if err != nil {
		return Scale{}, err
	}
	return s.WithRoot(root), nil
}

func (s Scale) String() string {
	return s.root.Name() + " " + s.typ.String()
}

// Iterator walks the degrees of a scale upward until the pitch range ends.
type Iterator struct {
	scale  Scale
	degree int
}

func (s Scale) Iter() *Iterator {
	return &Iterator{scale: s, degree: 1}
}

func (it *Iterator) Next() (tuning.Tuning, bool) {
	t, err := it.scale.Degree(it.degree)
	if err != nil {
		return tuning.Tuning{}, false
	}
	it.degree++
	return t, true
}
