package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
)

type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	Major7
	Dominant7
	Minor7
	MinorMajor7
	HalfDiminished7
	Diminished7
	Augmented7
	AugmentedMajor7
	Major6
	Minor6
	Suspended2
	Suspended4
	Dominant9
	Major9
	Minor9
)

// Qualities is the catalog in matching order. Ties during analysis go to the
// earlier entry.
var Qualities = []Quality{
	Major, Minor, Diminished, Augmented,
	Major7, Dominant7, Minor7, MinorMajor7,
	HalfDiminished7, Diminished7, Augmented7, AugmentedMajor7,
	Major6, Minor6, Suspended2, Suspended4,
	Dominant9, Major9, Minor9,
}

type qualityInfo struct {
	name      string
	symbol    string
	aliases   []string
	intervals []interval.Interval
}

var qualityTable = map[Quality]qualityInfo{
	Major: {
		name: "Major", symbol: "",
		aliases:   []string{"M", "maj", "Maj", "major"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth},
	},
	Minor: {
		name: "Minor", symbol: "m",
		aliases:   []string{"min", "minor", "-"},
		intervals: []interval.Interval{interval.MinorThird, interval.PerfectFifth},
	},
	Diminished: {
		name: "Diminished", symbol: "dim",
		aliases:   []string{"diminished", "°", "o"},
		intervals: []interval.Interval{interval.MinorThird, interval.DiminishedFifth},
	},
	Augmented: {
		name: "Augmented", symbol: "aug",
		aliases:   []string{"augmented", "+"},
		intervals: []interval.Interval{interval.MajorThird, interval.AugmentedFifth},
	},
	Major7: {
		name: "Major7", symbol: "maj7",
		aliases:   []string{"M7", "Maj7", "major7", "Δ", "Δ7"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh},
	},
	Dominant7: {
		name: "Dominant7", symbol: "7",
		aliases:   []string{"dom7", "dominant7"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh},
	},
	Minor7: {
		name: "Minor7", symbol: "m7",
		aliases:   []string{"min7", "minor7", "-7"},
		intervals: []interval.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh},
	},
	MinorMajor7: {
		name: "MinorMajor7", symbol: "mM7",
		aliases:   []string{"minM7", "mMaj7", "minorMajor7", "-Δ7"},
		intervals: []interval.Interval{interval.MinorThird, interval.PerfectFifth, interval.MajorSeventh},
	},
	HalfDiminished7: {
		name: "HalfDiminished7", symbol: "m7b5",
		aliases:   []string{"Ø", "ø", "Ø7", "ø7", "min7b5", "-7b5", "half-diminished7"},
		intervals: []interval.Interval{interval.MinorThird, interval.DiminishedFifth, interval.MinorSeventh},
	},
	Diminished7: {
		name: "Diminished7", symbol: "dim7",
		aliases:   []string{"°7", "o7", "diminished7"},
		intervals: []interval.Interval{interval.MinorThird, interval.DiminishedFifth, interval.DiminishedSeventh},
	},
	Augmented7: {
		name: "Augmented7", symbol: "aug7",
		aliases:   []string{"+7", "7#5", "augmented7"},
		intervals: []interval.Interval{interval.MajorThird, interval.AugmentedFifth, interval.MinorSeventh},
	},
	AugmentedMajor7: {
		name: "AugmentedMajor7", symbol: "augMaj7",
		aliases:   []string{"augM7", "+M7", "maj7#5", "augmentedMajor7"},
		intervals: []interval.Interval{interval.MajorThird, interval.AugmentedFifth, interval.MajorSeventh},
	},
	Major6: {
		name: "Major6", symbol: "6",
		aliases:   []string{"M6", "maj6", "major6"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSixth},
	},
	Minor6: {
		name: "Minor6", symbol: "m6",
		aliases:   []string{"min6", "minor6", "-6"},
		intervals: []interval.Interval{interval.MinorThird, interval.PerfectFifth, interval.MajorSixth},
	},
	Suspended2: {
		name: "Suspended2", symbol: "sus2",
		intervals: []interval.Interval{interval.MajorSecond, interval.PerfectFifth},
	},
	Suspended4: {
		name: "Suspended4", symbol: "sus4",
		aliases:   []string{"sus"},
		intervals: []interval.Interval{interval.PerfectFourth, interval.PerfectFifth},
	},
	Dominant9: {
		name: "Dominant9", symbol: "9",
		aliases:   []string{"dom9", "dominant9"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth},
	},
	Major9: {
		name: "Major9", symbol: "maj9",
		aliases:   []string{"M9", "Maj9", "major9", "Δ9"},
		intervals: []interval.Interval{interval.MajorThird, interval.PerfectFifth, interval.MajorSeventh, interval.MajorNinth},
	},
	Minor9: {
		name: "Minor9", symbol: "m9",
		aliases:   []string{"min9", "minor9", "-9"},
		intervals: []interval.Interval{interval.MinorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MajorNinth},
	},
}

var qualityBySymbol = func() map[string]Quality {
	m := make(map[string]Quality)
	for _, q := range Qualities {
		info := qualityTable[q]
		m[info.symbol] = q
		m[info.name] = q
		for _, a := range info.aliases {
			m[a] = q
		}
	}
	return m
}()

func (q Quality) info() qualityInfo {
	return qualityTable[q]
}

// Intervals is the template above the root, in stacking order.
func (q Quality) Intervals() []interval.Interval {
	src := q.info().intervals
	out := make([]interval.Interval, len(src))
	copy(out, src)
	return out
}

// Symbol is the shorthand written after the root, e.g. "m7".
func (q Quality) Symbol() string {
	return q.info().symbol
}

func (q Quality) String() string {
	if info, ok := qualityTable[q]; ok {
		return info.name
	}
	return fmt.Sprintf("Quality(%d)", int(q))
}

// BaseQuality is the triad a seventh, sixth or ninth quality is built on.
// Triads and suspended chords are their own base.
func (q Quality) BaseQuality() Quality {
	switch q {
	case Major7, Dominant7, Major6, Dominant9, Major9:
		return Major
	case Minor7, MinorMajor7, Minor6, Minor9:
		return Minor
	case HalfDiminished7, Diminished7:
		return Diminished
	case Augmented7, AugmentedMajor7:
		return Augmented
	}
	return q
}

// Classes is the octave-reduced template including the root (class 0).
func (q Quality) Classes() map[int]bool {
	classes := map[int]bool{0: true}
	for _, i := range q.info().intervals {
		classes[i.SemitonesMod()] = true
	}
	return classes
}

// HasDegree reports whether the template holds an interval of the given
// reduced degree (3 for the third, 5 for the fifth, ...).
func (q Quality) HasDegree(reduced int) bool {
	for _, i := range q.info().intervals {
		if i.ReducedDegree() == reduced {
			return true
		}
	}
	return false
}

func ParseQuality(s string) (Quality, error) {
	if q, ok := qualityBySymbol[s]; ok {
		return q, nil
	}
	return 0, errs.New(errs.InvalidChordQuality, "unknown chord quality %q", s)
}

type candidate struct {
	quality Quality
	order   int
	absent  int
	shared  int
}

// Analyze matches a set of intervals above a root against the catalog. The
// root itself is always assumed present. An exact class match wins outright;
// otherwise the template explaining the most input tones wins, then the one
// sharing the most tones, then catalog order. Input tones the winner does not
// explain come back as residual intervals.
func Analyze(intervals []interval.Interval) (Quality, []interval.Interval, error) {
	if len(intervals) == 0 {
		return 0, nil, errs.New(errs.InvalidChordQuality, "no intervals to analyze")
	}

	input := map[int]interval.Interval{}
	var order []int
	for _, i := range intervals {
		c := i.SemitonesMod()
		if c == 0 {
			continue
		}
		if _, ok := input[c]; !ok {
			input[c] = i
			order = append(order, c)
		}
	}

	candidates := make([]candidate, 0, len(Qualities))
	for n, q := range Qualities {
		tmpl := q.Classes()
		if len(tmpl) == len(input)+1 && containsAll(tmpl, order) {
			return q, nil, nil
		}
		cand := candidate{quality: q, order: n}
		for _, c := range order {
			if tmpl[c] {
				cand.shared++
			} else {
				cand.absent++
			}
		}
		candidates = append(candidates, cand)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.absent != b.absent {
			return a.absent < b.absent
		}
		if a.shared != b.shared {
			return a.shared > b.shared
		}
		return a.order < b.order
	})

	best := candidates[0]
	if best.shared == 0 {
		return 0, nil, errs.New(errs.InvalidChordQuality, "no chord quality shares a tone with %v", intervals)
	}
	tmpl := best.quality.Classes()
	var residual []interval.Interval
	for _, c := range order {
		if !tmpl[c] {
			residual = append(residual, input[c])
		}
	}
	return best.quality, residual, nil
}

func containsAll(set map[int]bool, classes []int) bool {
	for _, c := range classes {
		if !set[c] {
			return false
		}
	}
	return true
}
