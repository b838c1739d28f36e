// Package chord builds chords as interval stacks over a spelled root and
// recovers chord symbols from loose sets of pitches.
package chord

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
)

type ExtensionKind int

const (
	Add ExtensionKind = iota
	No
)

// Extension adds or removes a tone. Tones are kept as spelled pitches so an
// added D# stays a D# rather than becoming an Eb.
type Extension struct {
	Kind ExtensionKind
	Tone tuning.Tuning
}

type Inversion int

const (
	RootPosition Inversion = iota
	First
	Second
	Third
)

type Voicing int

const (
	Close Voicing = iota
	Open
	Drop2
	Drop3
	Cluster
)

func (v Voicing) String() string {
	switch v {
	case Close:
		return "close"
	case Open:
		return "open"
	case Drop2:
		return "drop2"
	case Drop3:
		return "drop3"
	case Cluster:
		return "cluster"
	}
	return "unknown"
}

func ParseVoicing(s string) (Voicing, error) {
	for _, v := range []Voicing{Close, Open, Drop2, Drop3, Cluster} {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, errs.New(errs.UnsupportedChord, "unknown voicing %q", s)
}

// Chord is immutable; every builder returns a modified copy.
type Chord struct {
	root       tuning.Tuning
	quality    Quality
	extensions []Extension
	inversion  Inversion
	voicing    Voicing
	bass       *tuning.Tuning
}

func New(root tuning.Tuning, quality Quality) Chord {
	return Chord{root: root, quality: quality}
}

func (c Chord) Root() tuning.Tuning {
	return c.root
}

func (c Chord) Quality() Quality {
	return c.quality
}

func (c Chord) Inversion() Inversion {
	return c.inversion
}

func (c Chord) Voicing() Voicing {
	return c.voicing
}

func (c Chord) Extensions() []Extension {
	out := make([]Extension, len(c.extensions))
	copy(out, c.extensions)
	return out
}

// Bass reports the slash bass, if one was set.
func (c Chord) Bass() (tuning.Tuning, bool) {
	if c.bass == nil {
		return tuning.Tuning{}, false
	}
	return *c.bass, true
}

func (c Chord) with(ext Extension) Chord {
	exts := make([]Extension, len(c.extensions), len(c.extensions)+1)
	copy(exts, c.extensions)
	c.extensions = append(exts, ext)
	return c
}

func (c Chord) Add(tone tuning.Tuning) Chord {
	return c.with(Extension{Kind: Add, Tone: tone})
}

func (c Chord) No(tone tuning.Tuning) Chord {
	return c.with(Extension{Kind: No, Tone: tone})
}

// AddInterval adds the tone the interval reaches above the root.
func (c Chord) AddInterval(i interval.Interval) (Chord, error) {
	tone, err := c.root.AddInterval(i)
	if err != nil {
		return Chord{}, err
	}
	return c.Add(tone), nil
}

// NoDegree drops the template tone of the given reduced degree, e.g. 5 for
// the fifth. Degrees the template lacks are a no-op.
func (c Chord) NoDegree(reduced int) (Chord, error) {
	for _, i := range c.quality.Intervals() {
		if i.ReducedDegree() == reduced {
			tone, err := c.root.AddInterval(i)
			if err != nil {
				return Chord{}, err
			}
			return c.No(tone), nil
		}
	}
	return c, nil
}

func stackedExtensions(seventh interval.Interval, n int) ([]interval.Interval, error) {
	if n < 7 || n > 13 || n%2 == 0 {
		return nil, errs.New(errs.InvalidIntervalDegree, "extension %d is not one of 7, 9, 11, 13", n)
	}
	upper := []interval.Interval{seventh, interval.MajorNinth, interval.PerfectEleventh, interval.MajorThirteenth}
	return upper[:(n-7)/2+1], nil
}

func (c Chord) stack(seventh interval.Interval, n int) (Chord, error) {
	ivs, err := stackedExtensions(seventh, n)
	if err != nil {
		return Chord{}, err
	}
	out := c
	for _, i := range ivs {
		if out, err = out.AddInterval(i); err != nil {
			return Chord{}, err
		}
	}
	return out, nil
}

// Maj stacks a major seventh and the natural upper extensions up to n.
func (c Chord) Maj(n int) (Chord, error) {
	return c.stack(interval.MajorSeventh, n)
}

// Dom stacks a minor seventh and the natural upper extensions up to n.
func (c Chord) Dom(n int) (Chord, error) {
	return c.stack(interval.MinorSeventh, n)
}

// Min is Dom with the major third swapped for a minor third.
func (c Chord) Min(n int) (Chord, error) {
	out, err := c.stack(interval.MinorSeventh, n)
	if err != nil {
		return Chord{}, err
	}
	if out, err = out.NoDegree(3); err != nil {
		return Chord{}, err
	}
	return out.AddInterval(interval.MinorThird)
}

func (c Chord) Invert(inv Inversion) Chord {
	c.inversion = inv
	return c
}

func (c Chord) Revoice(v Voicing) Chord {
	c.voicing = v
	return c
}

// WithBass sets a slash bass that sounds below the rest of the chord.
func (c Chord) WithBass(bass tuning.Tuning) Chord {
	c.bass = &bass
	return c
}

func (c Chord) WithRoot(root tuning.Tuning) Chord {
	c.root = root
	return c
}

func (c Chord) WithOctave(octave int) (Chord, error) {
	root, err := c.root.WithOctave(octave)
	if err != nil {
		return Chord{}, err
	}
	c.root = root
	return c, nil
}

// extensionInterval measures a tone from the root, lifting it by octaves
// until it sits at or above the root.
func extensionInterval(root, tone tuning.Tuning) (interval.Interval, error) {
	for tone.Number() < root.Number() {
		up, err := tone.WithOctave(tone.Octave() + 1)
		if err != nil {
			return interval.Interval{}, err
		}
		tone = up
	}
	return tuning.IntervalBetween(root, tone)
}

// Intervals resolves the template plus extensions into intervals above the
// root, ordered by size.
func (c Chord) Intervals() ([]interval.Interval, error) {
	ivs := c.quality.Intervals()
	for _, ext := range c.extensions {
		i, err := extensionInterval(c.root, ext.Tone)
		if err != nil {
			return nil, errors.Wrapf(err, "extension %s", ext.Tone)
		}
		switch ext.Kind {
		case Add:
			ivs = addExtension(ivs, i)
		case No:
			ivs = removeDegree(ivs, i.ReducedDegree())
		}
	}
	sort.SliceStable(ivs, func(a, b int) bool {
		return ivs[a].Semitones() < ivs[b].Semitones()
	})
	return ivs, nil
}

// addExtension appends i unless an interval of the same diatonic degree is
// already there.
func addExtension(ivs []interval.Interval, i interval.Interval) []interval.Interval {
	if hasDegree(ivs, i.Degree()) {
		return ivs
	}
	return append(ivs, i)
}

func hasDegree(ivs []interval.Interval, degree int) bool {
	for _, i := range ivs {
		if i.Degree() == degree {
			return true
		}
	}
	return false
}

func removeDegree(ivs []interval.Interval, reduced int) []interval.Interval {
	out := ivs[:0:0]
	for _, i := range ivs {
		if i.ReducedDegree() != reduced {
			out = append(out, i)
		}
	}
	return out
}

// Components spells the chord from the bass up, with inversion, voicing and
// slash bass applied in that order.
func (c Chord) Components() ([]tuning.Tuning, error) {
	ivs, err := c.Intervals()
	if err != nil {
		return nil, err
	}
	notes := []tuning.Tuning{c.root}
	for _, i := range ivs {
		t, err := c.root.AddInterval(i)
		if err != nil {
			return nil, err
		}
		notes = append(notes, t)
	}
	if notes, err = invert(notes, c.inversion); err != nil {
		return nil, err
	}
	if notes, err = voice(notes, c.voicing); err != nil {
		return nil, err
	}
	if c.bass != nil {
		if notes, err = slash(notes, *c.bass); err != nil {
			return nil, err
		}
	}
	return notes, nil
}

// Numbers is Components as absolute pitch numbers.
func (c Chord) Numbers() ([]int, error) {
	notes, err := c.Components()
	if err != nil {
		return nil, err
	}
	out := make([]int, len(notes))
	for i, n := range notes {
		out[i] = n.Number()
	}
	return out, nil
}

// Simple respells the root and every extension tone with the fewest
// accidentals.
func (c Chord) Simple() (Chord, error) {
	root, err := c.root.Simple()
	if err != nil {
		return Chord{}, err
	}
	out := c
	out.root = root
	out.extensions = make([]Extension, len(c.extensions))
	for i, ext := range c.extensions {
		tone, err := ext.Tone.Simple()
		if err != nil {
			return Chord{}, err
		}
		out.extensions[i] = Extension{Kind: ext.Kind, Tone: tone}
	}
	return out, nil
}
