package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/jsphweid/tonal/tuning"
)

// Parse reads chord symbols such as "Cmaj7", "F#m7b5", "G7(b9)", "Cadd9",
// "C7(no 5)" or "G7/B". Whitespace is ignored and the root lands in octave 4.
// A slash bass that is a chord tone becomes an inversion.
func Parse(symbol string) (Chord, error) {
	s := strings.Join(strings.Fields(symbol), "")
	if s == "" {
		return Chord{}, errs.New(errs.InvalidPitch, "empty chord symbol")
	}

	var bassText string
	if idx := strings.LastIndex(s, "/"); idx >= 0 {
		s, bassText = s[:idx], s[idx+1:]
	}

	root, rest, err := tuning.ParsePrefix(s)
	if err != nil {
		return Chord{}, err
	}
	qualityText, annotations, err := splitAnnotations(rest)
	if err != nil {
		return Chord{}, err
	}
	q, err := ParseQuality(qualityText)
	if err != nil {
		return Chord{}, err
	}

	c := New(root, q)
	for _, a := range annotations {
		if c, err = applyAnnotation(c, a); err != nil {
			return Chord{}, err
		}
	}

	if bassText != "" {
		bass, extra, err := tuning.ParsePrefix(bassText)
		if err != nil {
			return Chord{}, err
		}
		if extra != "" {
			return Chord{}, errs.New(errs.InvalidPitch, "bad slash bass %q", bassText)
		}
		if c, err = c.withSlash(bass); err != nil {
			return Chord{}, err
		}
	}
	return c, nil
}

func MustParse(symbol string) Chord {
	c, err := Parse(symbol)
	if err != nil {
		panic(err)
	}
	return c
}

func splitAnnotations(rest string) (string, []string, error) {
	cut := len(rest)
	if i := strings.Index(rest, "("); i >= 0 {
		cut = i
	}
	if i := strings.Index(rest, "add"); i >= 0 && i < cut {
		cut = i
	}
	qualityText, tail := rest[:cut], rest[cut:]

	var out []string
	for tail != "" {
		if strings.HasPrefix(tail, "(") {
			end := strings.Index(tail, ")")
			if end < 0 {
				return "", nil, errs.New(errs.InvalidChordQuality, "unclosed annotation in %q", rest)
			}
			for _, a := range strings.Split(tail[1:end], ",") {
				if a != "" {
					out = append(out, a)
				}
			}
			tail = tail[end+1:]
			continue
		}
		end := strings.Index(tail, "(")
		if end < 0 {
			end = len(tail)
		}
		out = append(out, tail[:end])
		tail = tail[end:]
	}
	return qualityText, out, nil
}

// applyAnnotation handles one of "b9", "#11", "add9", "13" or "no5".
func applyAnnotation(c Chord, a string) (Chord, error) {
	switch {
	case strings.HasPrefix(a, "no"):
		degree, err := strconv.Atoi(a[2:])
		if err != nil || degree < 1 {
			return Chord{}, errs.New(errs.InvalidChordQuality, "bad annotation %q", a)
		}
		return c.NoDegree((degree-1)%7 + 1)
	case strings.HasPrefix(a, "add"):
		a = a[3:]
	}

	alter := 0
	digits := strings.TrimLeftFunc(a, func(r rune) bool {
		switch r {
		case '#', '♯':
			alter++
			return true
		case 'b', '♭':
			alter--
			return true
		}
		return false
	})
	degree, err := strconv.Atoi(digits)
	if err != nil || degree < 1 {
		return Chord{}, errs.New(errs.InvalidChordQuality, "bad annotation %q", a)
	}
	natural, err := naturalInterval(degree)
	if err != nil {
		return Chord{}, err
	}
	i, err := interval.FromDegree(degree, natural.Semitones()+alter)
	if err != nil {
		return Chord{}, err
	}
	if alter != 0 && degree < 8 {
		if c, err = c.NoDegree(i.ReducedDegree()); err != nil {
			return Chord{}, err
		}
	}
	return c.AddInterval(i)
}

func naturalInterval(degree int) (interval.Interval, error) {
	if i, err := interval.New(interval.Perfect, degree); err == nil {
		return i, nil
	}
	return interval.New(interval.Major, degree)
}

// withSlash turns a chord-tone bass into an inversion and keeps any other
// bass as a slash bass.
func (c Chord) withSlash(bass tuning.Tuning) (Chord, error) {
	ivs, err := c.Intervals()
	if err != nil {
		return Chord{}, err
	}
	if bass.PitchClass() == c.root.PitchClass() {
		return c, nil
	}
	for k, i := range ivs {
		if k+1 > int(Third) {
			break
		}
		tone, err := c.root.AddInterval(i)
		if err != nil {
			return Chord{}, err
		}
		if tone.PitchClass() == bass.PitchClass() {
			return c.Invert(Inversion(k + 1)), nil
		}
	}
	return c.WithBass(bass), nil
}

// annotation spells an extra tone the way it is written in a symbol, e.g. b9,
// #11 or 13. Added seconds, fourths and sixths are written as 9, 11 and 13.
func annotation(i interval.Interval) string {
	degree := i.Degree()
	reduced := i.ReducedDegree()
	if degree < 8 && (reduced == 2 || reduced == 4 || reduced == 6) {
		degree += 7
	}
	perfect := reduced == 1 || reduced == 4 || reduced == 5
	var prefix string
	switch i.Quality() {
	case interval.Minor:
		prefix = "b"
	case interval.Augmented:
		prefix = "#"
	case interval.Diminished:
		prefix = "b"
		if !perfect {
			prefix = "bb"
		}
	}
	return prefix + strconv.Itoa(degree)
}

// String renders the chord symbol without octave, e.g. "G7(b9)/B".
func (c Chord) String() string {
	out := c.root.Name()
	ivs, err := c.Intervals()
	if err != nil {
		return out + c.quality.Symbol()
	}
	q, residual, err := Analyze(ivs)
	if err != nil {
		q, residual = c.quality, nil
	}
	out += q.Symbol()

	present := map[int]bool{}
	for _, i := range ivs {
		present[i.SemitonesMod()] = true
	}
	altered := map[int]bool{}
	for _, r := range residual {
		altered[r.ReducedDegree()] = true
	}
	for _, i := range q.Intervals() {
		if !present[i.SemitonesMod()] && !altered[i.ReducedDegree()] {
			out += "(no " + strconv.Itoa(i.ReducedDegree()) + ")"
		}
	}
	for _, r := range residual {
		out += "(" + annotation(r) + ")"
	}

	if c.bass != nil {
		out += "/" + c.bass.Name()
	} else if c.inversion != RootPosition {
		if notes, err := c.Components(); err == nil {
			out += "/" + notes[0].Name()
		}
	}
	return out
}
