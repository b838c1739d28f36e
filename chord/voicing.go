package chord

import (
	"sort"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/tuning"
	"github.com/jsphweid/tonal/util"
)

// invert rotates the notes left and lifts every wrapped note an octave.
func invert(notes []tuning.Tuning, inv Inversion) ([]tuning.Tuning, error) {
	k := int(inv)
	if k == 0 {
		return notes, nil
	}
	if k < 0 || k >= len(notes) {
		return nil, errs.New(errs.UnsupportedChord, "a %d note chord has no inversion %d", len(notes), k)
	}
	out := make([]tuning.Tuning, 0, len(notes))
	out = append(out, notes[k:]...)
	for _, n := range notes[:k] {
		up, err := n.Up(1)
		if err != nil {
			return nil, err
		}
		out = append(out, up)
	}
	return out, nil
}

func voice(notes []tuning.Tuning, v Voicing) ([]tuning.Tuning, error) {
	switch v {
	case Close:
		return closeVoicing(notes)
	case Open:
		return openVoicing(notes)
	case Drop2:
		return dropVoicing(notes, 2)
	case Drop3:
		return dropVoicing(notes, 3)
	case Cluster:
		return clusterVoicing(notes)
	}
	return nil, errs.New(errs.UnsupportedChord, "unknown voicing %d", int(v))
}

// closeVoicing keeps every upper note within an octave of the bass octave.
func closeVoicing(notes []tuning.Tuning) ([]tuning.Tuning, error) {
	out := append([]tuning.Tuning(nil), notes...)
	bass := out[0].Octave()
	for i := 1; i < len(out); i++ {
		for out[i].Octave() > bass+1 {
			down, err := out[i].Down(1)
			if err != nil {
				return nil, err
			}
			out[i] = down
		}
	}
	return out, nil
}

// openVoicing lifts every second note (index 1, 3, ...) an octave.
func openVoicing(notes []tuning.Tuning) ([]tuning.Tuning, error) {
	out := append([]tuning.Tuning(nil), notes...)
	for i := 1; i < len(out); i += 2 {
		up, err := out[i].Up(1)
		if err != nil {
			return nil, err
		}
		out[i] = up
	}
	return out, nil
}

// dropVoicing lowers the nth voice from the top an octave, making it the bass.
func dropVoicing(notes []tuning.Tuning, nth int) ([]tuning.Tuning, error) {
	if len(notes) < nth {
		return nil, errs.New(errs.UnsupportedChord, "drop %d needs at least %d notes", nth, nth)
	}
	idx := len(notes) - nth
	dropped, err := notes[idx].Down(1)
	if err != nil {
		return nil, err
	}
	out := make([]tuning.Tuning, 0, len(notes))
	out = append(out, dropped)
	out = append(out, notes[:idx]...)
	out = append(out, notes[idx+1:]...)
	return out, nil
}

// clusterVoicing packs the upper notes as tightly as possible above the bass,
// ordered by their distance from it.
func clusterVoicing(notes []tuning.Tuning) ([]tuning.Tuning, error) {
	bass := notes[0]
	upper := append([]tuning.Tuning(nil), notes[1:]...)
	sort.SliceStable(upper, func(i, j int) bool {
		return util.Mod(upper[i].Number()-bass.Number(), 12) < util.Mod(upper[j].Number()-bass.Number(), 12)
	})
	out := []tuning.Tuning{bass}
	prev := bass
	for _, n := range upper {
		placed, err := placeAbove(n, prev)
		if err != nil {
			return nil, err
		}
		out = append(out, placed)
		prev = placed
	}
	return out, nil
}

// placeAbove moves n by octaves to the lowest position not below floor.
func placeAbove(n, floor tuning.Tuning) (tuning.Tuning, error) {
	var err error
	for n.Number() < floor.Number() {
		if n, err = n.Up(1); err != nil {
			return tuning.Tuning{}, err
		}
	}
	for n.Number()-12 >= floor.Number() {
		if n, err = n.Down(1); err != nil {
			return tuning.Tuning{}, err
		}
	}
	return n, nil
}

// slash drops any copy of the bass pitch class and puts the bass directly
// under the lowest remaining note.
func slash(notes []tuning.Tuning, bass tuning.Tuning) ([]tuning.Tuning, error) {
	rest := make([]tuning.Tuning, 0, len(notes))
	for _, n := range notes {
		if n.PitchClass() != bass.PitchClass() {
			rest = append(rest, n)
		}
	}
	if len(rest) == 0 {
		return []tuning.Tuning{bass}, nil
	}
	b, err := bass.WithOctave(rest[0].Octave())
	if err != nil {
		return nil, err
	}
	for b.Number() >= rest[0].Number() {
		if b, err = b.Down(1); err != nil {
			return nil, err
		}
	}
	for b.Number()+12 < rest[0].Number() {
		if b, err = b.Up(1); err != nil {
			return nil, err
		}
	}
	return append([]tuning.Tuning{b}, rest...), nil
}
