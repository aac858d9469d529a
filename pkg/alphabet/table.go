package alphabet

import (
	"github.com/matzehuels/wordsearch/pkg/errors"
)

// Source is the randomness a Table draws from. *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Table is the sampling table for one (language, case) pair.
//
// Counts, Probabilities and Accumulated are parallel to Ranges. The last
// accumulated value is exactly 1.0 so a draw in [0, 1) always lands in some
// range.
type Table struct {
	Language      string
	Case          Case
	Ranges        []Range
	Counts        []int
	Probabilities []float64
	Accumulated   []float64

	total int
}

// NewTable derives a sampling table from ranges. Each range is weighted by
// the number of code points it holds.
func NewTable(language string, c Case, ranges []Range) (*Table, error) {
	if len(ranges) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCatalog, "alphabet %s/%s has no ranges", language, c)
	}

	t := &Table{
		Language:      language,
		Case:          c,
		Ranges:        ranges,
		Counts:        make([]int, len(ranges)),
		Probabilities: make([]float64, len(ranges)),
		Accumulated:   make([]float64, len(ranges)),
	}
	for i, r := range ranges {
		if err := r.validate(); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCatalog, err, "alphabet %s/%s range %d", language, c, i)
		}
		t.Counts[i] = r.Count()
		t.total += t.Counts[i]
	}

	var acc float64
	for i, n := range t.Counts {
		t.Probabilities[i] = float64(n) / float64(t.total)
		acc += t.Probabilities[i]
		t.Accumulated[i] = acc
	}
	t.Accumulated[len(t.Accumulated)-1] = 1.0

	return t, nil
}

// Total returns the number of code points in the alphabet.
func (t *Table) Total() int { return t.total }

// Sample draws one code point. Every code point in the table is equally
// likely.
func (t *Table) Sample(src Source) (rune, error) {
	u := src.Float64()
	for i, acc := range t.Accumulated {
		if u < acc {
			r := t.Ranges[i]
			return r.At(src.IntN(t.Counts[i])), nil
		}
	}
	return 0, errors.New(errors.ErrCodeSamplingExhausted,
		"draw %v fell outside alphabet %s/%s", u, t.Language, t.Case)
}

// Char draws one code point and returns it as a string.
func (t *Table) Char(src Source) (string, error) {
	r, err := t.Sample(src)
	if err != nil {
		return "", err
	}
	return string(r), nil
}

// Contains reports whether p is one of the table's code points.
func (t *Table) Contains(p rune) bool {
	for _, r := range t.Ranges {
		if r.IsSet() {
			for _, q := range r.Set {
				if q == p {
					return true
				}
			}
			continue
		}
		if p >= r.Min && p <= r.Max {
			return true
		}
	}
	return false
}
