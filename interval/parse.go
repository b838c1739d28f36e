package interval

import (
	"strconv"
	"strings"

	"github.com/jsphweid/tonal/errs"
)

// longest prefixes first so "Aug" is not read as "A..."
var qualityPrefixes = []struct {
	prefix  string
	quality Quality
}{
	{"Aug", Augmented},
	{"Dim", Diminished},
	{"P", Perfect},
	{"M", Major},
	{"m", Minor},
}

// Parse reads names like "P5", "m3", "Aug4" or "Dim7". A leading "-" makes
// the interval descending.
func Parse(s string) (Interval, error) {
	name := strings.TrimSpace(s)
	descending := strings.HasPrefix(name, "-")
	name = strings.TrimPrefix(name, "-")

	var (
		q     Quality
		found bool
	)
	for _, p := range qualityPrefixes {
		if strings.HasPrefix(name, p.prefix) {
			q, found = p.quality, true
			name = name[len(p.prefix):]
			break
		}
	}
	if !found || !allDigits(name) {
		return Interval{}, errs.New(errs.IntervalParseError, "%q", s)
	}
	degree, err := strconv.Atoi(name)
	if err != nil {
		return Interval{}, errs.New(errs.IntervalParseError, "%q", s)
	}
	i, err := New(q, degree)
	if err != nil {
		return Interval{}, errs.New(errs.IntervalParseError, "%q: %v", s, err)
	}
	if descending {
		return i.Negate(), nil
	}
	return i, nil
}

func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
