package util

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

func IsMidiPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".mid") || strings.HasSuffix(lower, ".midi")
}

// GatherAllMidiPaths walks root and returns every MIDI file below it, sorted.
// maxNum of 0 means no limit.
func GatherAllMidiPaths(root string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Wrapf(err, "walking %s", s)
		}
		if !d.IsDir() && IsMidiPath(s) {
			if maxNum == 0 || len(res) < maxNum {
				res = append(res, s)
			}
		}
		return nil
	}
	if err := filepath.WalkDir(root, walk); err != nil {
		return nil, err
	}
	sort.Strings(res)
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Min[A constraints.Integer](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Sum[A constraints.Integer](nums []A) int64 {
	var total int64
	for _, v := range nums {
		total += int64(v)
	}
	return total
}

func Abs[A constraints.Signed](n A) A {
	if n < 0 {
		return -n
	}
	return n
}

func Sign[A constraints.Signed](n A) A {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// FloorDiv rounds toward negative infinity, unlike Go's / operator.
func FloorDiv[A constraints.Signed](a, b A) A {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Mod is always in [0, b) for positive b.
func Mod[A constraints.Signed](a, b A) A {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
