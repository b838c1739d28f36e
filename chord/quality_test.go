package chord

import (
	"errors"
	"testing"

	"github.com/jsphweid/tonal/errs"
	"github.com/jsphweid/tonal/interval"
	"github.com/stretchr/testify/assert"
)

func TestEveryTemplateAnalyzesToItself(t *testing.T) {
	for _, q := range Qualities {
		t.Run(q.String(), func(t *testing.T) {
			got, residual, err := Analyze(q.Intervals())
			assert.Nil(t, err)
			assert.Equal(t, q, got)
			assert.Empty(t, residual)
		})
	}
}

func TestTemplatesAreDistinct(t *testing.T) {
	seen := map[string]Quality{}
	for _, q := range Qualities {
		key := ""
		for c := 0; c < 12; c++ {
			if q.Classes()[c] {
				key += "x"
			} else {
				key += "."
			}
		}
		prev, dup := seen[key]
		assert.False(t, dup, "%s duplicates %s", q, prev)
		seen[key] = q
	}
}

func TestAnalyzeFailures(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Analyze(nil)
	assert.True(errors.Is(err, errs.ErrInvalidChordQuality))

	_, _, err = Analyze([]interval.Interval{interval.MinorSecond})
	assert.True(errors.Is(err, errs.ErrInvalidChordQuality))

	_, _, err = Analyze([]interval.Interval{interval.PerfectUnison, interval.Octave})
	assert.True(errors.Is(err, errs.ErrInvalidChordQuality))
}

func TestAnalyzeTieBreaks(t *testing.T) {
	assert := assert.New(t)

	// both Dominant7 and Augmented7 explain every tone; catalog order decides
	q, residual, err := Analyze([]interval.Interval{interval.MajorThird, interval.MinorSeventh})
	assert.Nil(err)
	assert.Equal(Dominant7, q)
	assert.Empty(residual)

	q, residual, err = Analyze([]interval.Interval{
		interval.MajorThird, interval.PerfectFifth, interval.MinorSeventh, interval.MinorNinth,
	})
	assert.Nil(err)
	assert.Equal(Dominant7, q)
	assert.Equal([]interval.Interval{interval.MinorNinth}, residual)

	// the fifth alone is shared with every triad; the first one wins
	q, residual, err = Analyze([]interval.Interval{interval.PerfectFifth})
	assert.Nil(err)
	assert.Equal(Major, q)
	assert.Empty(residual)
}

func TestParseQuality(t *testing.T) {
	tests := map[string]Quality{
		"":      Major,
		"M":     Major,
		"m":     Minor,
		"min":   Minor,
		"dim":   Diminished,
		"°":     Diminished,
		"+":     Augmented,
		"maj7":  Major7,
		"M7":    Major7,
		"Δ":     Major7,
		"7":     Dominant7,
		"m7":    Minor7,
		"mM7":   MinorMajor7,
		"ø":     HalfDiminished7,
		"Ø":     HalfDiminished7,
		"m7b5":  HalfDiminished7,
		"°7":    Diminished7,
		"dim7":  Diminished7,
		"aug7":  Augmented7,
		"augM7": AugmentedMajor7,
		"M6":    Major6,
		"6":     Major6,
		"m6":    Minor6,
		"sus2":  Suspended2,
		"sus":   Suspended4,
		"9":     Dominant9,
		"maj9":  Major9,
		"m9":    Minor9,
	}
	for text, want := range tests {
		got, err := ParseQuality(text)
		assert.Nil(t, err, text)
		assert.Equal(t, want, got, text)
	}

	_, err := ParseQuality("xyz")
	assert.True(t, errors.Is(err, errs.ErrInvalidChordQuality))
}

func TestSymbolsParseBack(t *testing.T) {
	for _, q := range Qualities {
		got, err := ParseQuality(q.Symbol())
		assert.Nil(t, err)
		assert.Equal(t, q, got)
	}
}

func TestHasDegree(t *testing.T) {
	assert := assert.New(t)
	assert.True(Dominant7.HasDegree(7))
	assert.False(Major.HasDegree(7))
	assert.True(Suspended4.HasDegree(4))
	assert.False(Suspended4.HasDegree(3))
	assert.True(Minor9.HasDegree(2))
}

func TestBaseQuality(t *testing.T) {
	assert := assert.New(t)
	for _, q := range Qualities {
		base := q.BaseQuality()
		assert.Equal(base, base.BaseQuality())
		// the base triad's tones are all in the richer template
		for c := range base.Classes() {
			assert.True(q.Classes()[c], "%s is missing %d of %s", q, c, base)
		}
	}
	assert.Equal(Minor, Minor9.BaseQuality())
	assert.Equal(Diminished, HalfDiminished7.BaseQuality())
	assert.Equal(Suspended4, Suspended4.BaseQuality())
}
