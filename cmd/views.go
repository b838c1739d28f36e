package cmd

import (
	"github.com/jsphweid/tonal/chord"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/model"
	"github.com/jsphweid/tonal/scale"
	"github.com/jsphweid/tonal/tuning"
)

func names(notes []tuning.Tuning) []string {
	out := make([]string, len(notes))
	for i, n := range notes {
		out[i] = n.String()
	}
	return out
}

func intervalView(i interval.Interval) model.IntervalResponse {
	return model.IntervalResponse{
		Name:       i.String(),
		Quality:    i.Quality().String(),
		Degree:     i.Degree(),
		Semitones:  i.Semitones(),
		Consonance: i.Consonance().String(),
		Inversion:  i.Invert().String(),
	}
}

func chordView(c chord.Chord) (model.ChordResponse, error) {
	notes, err := c.Components()
	if err != nil {
		return model.ChordResponse{}, err
	}
	numbers, err := c.Numbers()
	if err != nil {
		return model.ChordResponse{}, err
	}
	return model.ChordResponse{
		Symbol:  c.String(),
		Root:    c.Root().String(),
		Quality: c.Quality().String(),
		Notes:   names(notes),
		Numbers: numbers,
	}, nil
}

// scaleView lists one octave of the scale and the triad on each degree; a
// degree without a triad gets an empty symbol.
func scaleView(s scale.Scale) (model.ScaleResponse, error) {
	notes, err := s.Generate(0)
	if err != nil {
		return model.ScaleResponse{}, err
	}
	res := model.ScaleResponse{Name: s.String(), Notes: names(notes)}
	for n := 1; n <= s.IntervalCount(); n++ {
		c, err := s.DegreeChord(n)
		if err != nil {
			res.Chords = append(res.Chords, "")
			continue
		}
		res.Chords = append(res.Chords, c.String())
	}
	return res, nil
}

func parseScale(root, typ string) (scale.Scale, error) {
	r, err := tuning.ParseRoot(root)
	if err != nil {
		return scale.Scale{}, err
	}
	t, err := scale.ParseType(typ)
	if err != nil {
		return scale.Scale{}, err
	}
	return scale.New(r, t)
}

func parseTunings(texts []string) ([]tuning.Tuning, error) {
	out := make([]tuning.Tuning, 0, len(texts))
	for _, s := range texts {
		t, err := tuning.Parse(s)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
