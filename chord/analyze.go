package chord

import (
	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
	"github.com/jsphweid/tonal/util"
)

// AnalyzeFrom names an unordered set of pitches. Every pitch class is tried as
// the root; a candidate rooted on the lowest input pitch is preferred,
// otherwise the first candidate in pitch-class order wins. Tones the matched
// quality does not cover become Add extensions spelled as given, raised an
// octave when their degree is taken, and template tones missing from the
// input become No extensions.
func AnalyzeFrom(tunings []tuning.Tuning) (Chord, error) {
	if len(tunings) == 0 {
		return Chord{}, errs.New(errs.InvalidPitch, "no pitches to analyze")
	}

	lowest := tunings[0]
	byClass := map[int]tuning.Tuning{}
	for _, t := range tunings {
		if t.Number() < lowest.Number() {
			lowest = t
		}
		if _, ok := byClass[t.PitchClass()]; !ok {
			byClass[t.PitchClass()] = t
		}
	}
	byClass[lowest.PitchClass()] = lowest
	classes := util.GetKeys(byClass)

	var candidates []Chord
	for _, rc := range classes {
		var ivs []interval.Interval
		for _, c := range classes {
			if c == rc {
				continue
			}
			i, err := interval.FromSemitones(util.Mod(c-rc, 12))
			if err != nil {
				continue
			}
			ivs = append(ivs, i)
		}
		q, residual, err := Analyze(ivs)
		if err != nil {
			continue
		}
		ch := New(byClass[rc], q)
		present := map[int]bool{}
		for _, c := range classes {
			present[util.Mod(c-rc, 12)] = true
		}
		for _, i := range q.Intervals() {
			if present[i.SemitonesMod()] {
				continue
			}
			if ch, err = ch.NoDegree(i.ReducedDegree()); err != nil {
				break
			}
		}
		if err != nil {
			continue
		}
		for _, r := range residual {
			if ch, err = ch.addResidual(byClass[util.Mod(rc+r.SemitonesMod(), 12)]); err != nil {
				break
			}
		}
		if err != nil {
			continue
		}
		candidates = append(candidates, ch)
	}

	if len(candidates) == 0 {
		return Chord{}, errs.New(errs.UnsupportedChord, "no root explains %v", tunings)
	}
	for _, ch := range candidates {
		if ch.root.PitchClass() == lowest.PitchClass() {
			return ch, nil
		}
	}
	return candidates[0], nil
}

// addResidual adds tone, raising it by octaves while a different tone holds
// its degree so that it survives as a compound extension (b10 over a major
// third).
func (c Chord) addResidual(tone tuning.Tuning) (Chord, error) {
	for {
		ivs, err := c.Intervals()
		if err != nil {
			return Chord{}, err
		}
		i, err := extensionInterval(c.root, tone)
		if err != nil {
			return Chord{}, err
		}
		if !hasDegree(ivs, i.Degree()) {
			return c.Add(tone), nil
		}
		for _, have := range ivs {
			if have == i {
				return c, nil
			}
		}
		if tone, err = tone.Up(1); err != nil {
			return Chord{}, err
		}
	}
}
