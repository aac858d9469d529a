package alphabet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// Range is a group of code points sampled together: either the inclusive
// interval [Min, Max] or, when Set is non-nil, an explicit list.
type Range struct {
	Min, Max rune
	Set      []rune
}

// Interval returns the range [lo, hi].
func Interval(lo, hi rune) Range {
	return Range{Min: lo, Max: hi}
}

// SetOf returns a range holding exactly the given code points.
func SetOf(points ...rune) Range {
	if points == nil {
		points = []rune{}
	}
	return Range{Set: points}
}

// IsSet reports whether r is an explicit set rather than an interval.
func (r Range) IsSet() bool { return r.Set != nil }

// Count returns the number of code points in r.
func (r Range) Count() int {
	if r.IsSet() {
		return len(r.Set)
	}
	if r.Max < r.Min {
		return 0
	}
	return int(r.Max-r.Min) + 1
}

// At returns the i-th code point of r, 0 <= i < Count().
func (r Range) At(i int) rune {
	if r.IsSet() {
		return r.Set[i]
	}
	return r.Min + rune(i)
}

// validate checks that r is non-empty and holds only encodable code points.
func (r Range) validate() error {
	if r.Count() == 0 {
		return fmt.Errorf("empty range %v", r)
	}
	if r.IsSet() {
		for _, p := range r.Set {
			if !utf8.ValidRune(p) {
				return fmt.Errorf("invalid code point %d", p)
			}
		}
		return nil
	}
	if !utf8.ValidRune(r.Min) || !utf8.ValidRune(r.Max) {
		return fmt.Errorf("invalid interval [%d, %d]", r.Min, r.Max)
	}
	if r.Min <= 0xDFFF && r.Max >= 0xD800 {
		return fmt.Errorf("interval [%d, %d] covers surrogates", r.Min, r.Max)
	}
	return nil
}

// String renders r as "[min-max]" or "{a,b,c}" with hex code points.
func (r Range) String() string {
	if !r.IsSet() {
		return fmt.Sprintf("[%04X-%04X]", r.Min, r.Max)
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, p := range r.Set {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%04X", p)
	}
	b.WriteByte('}')
	return b.String()
}

type setObject struct {
	Set []rune `json:"set"`
}

// UnmarshalJSON accepts [min, max], [a, b, c, ...] and {"set": [...]}.
func (r *Range) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		var obj setObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = SetOf(obj.Set...)
		return nil
	}

	var points []rune
	if err := json.Unmarshal(data, &points); err != nil {
		return fmt.Errorf("range must be an array of code points: %w", err)
	}
	if len(points) == 2 {
		*r = Interval(points[0], points[1])
		return nil
	}
	*r = SetOf(points...)
	return nil
}

// MarshalJSON writes the form UnmarshalJSON reads back to the same range.
func (r Range) MarshalJSON() ([]byte, error) {
	switch {
	case !r.IsSet():
		return json.Marshal([]rune{r.Min, r.Max})
	case len(r.Set) == 2:
		return json.Marshal(setObject{Set: r.Set})
	default:
		return json.Marshal(r.Set)
	}
}
