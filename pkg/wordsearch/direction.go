package wordsearch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/wordsearch/pkg/errors"
)

// Direction is the reading direction of a placed word.
type Direction int

const (
	Horizontal Direction = iota
	Vertical
	DiagonalDownRight
	DiagonalDownLeft
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Horizontal, Vertical, DiagonalDownRight, DiagonalDownLeft}

var directionNames = [...]string{"horizontal", "vertical", "down-right", "down-left"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "direction(" + strconv.Itoa(int(d)) + ")"
	}
	return directionNames[d]
}

// ParseDirection parses a direction name as printed by String.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if s == d.String() {
			return d, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown direction %q", s)
}

// Step returns the offset between consecutive cells of a word.
func (d Direction) Step() (dx, dy int) {
	switch d {
	case Horizontal:
		return 1, 0
	case Vertical:
		return 0, 1
	case DiagonalDownRight:
		return 1, 1
	case DiagonalDownLeft:
		return -1, 1
	}
	panic(fmt.Sprintf("wordsearch: invalid direction %d", int(d)))
}

// At returns the i-th cell of a word anchored at p.
func (d Direction) At(p Point, i int) Point {
	dx, dy := d.Step()
	return Point{X: p.X + i*dx, Y: p.Y + i*dy}
}

// Fits reports whether a word of n cells fits a w×h grid in direction d.
func (d Direction) Fits(w, h, n int) bool {
	switch d {
	case Horizontal:
		return n <= w
	case Vertical:
		return n <= h
	default:
		return n <= w && n <= h
	}
}

// anchorRange returns the inclusive ranges of valid anchors for a word of n
// cells. Down-left words are anchored on their right end.
func (d Direction) anchorRange(w, h, n int) (xlo, xhi, ylo, yhi int) {
	switch d {
	case Horizontal:
		return 0, w - n, 0, h - 1
	case Vertical:
		return 0, w - 1, 0, h - n
	case DiagonalDownRight:
		return 0, w - n, 0, h - n
	default:
		return n - 1, w - 1, 0, h - n
	}
}

// anchor draws a uniform anchor such that the whole word stays on the grid.
func (d Direction) anchor(src Source, w, h, n int) Point {
	xlo, xhi, ylo, yhi := d.anchorRange(w, h, n)
	return Point{
		X: xlo + src.IntN(xhi-xlo+1),
		Y: ylo + src.IntN(yhi-ylo+1),
	}
}

// Weights biases the direction chosen for a word, indexed by Direction.
// The zero value weighs every direction equally.
type Weights [4]float64

// EqualWeights returns weights of 1 for every direction.
func EqualWeights() Weights { return Weights{1, 1, 1, 1} }

// ParseWeights parses "horizontal=2,vertical=1". Directions not named get
// weight 0. The empty string yields the zero value.
func ParseWeights(s string) (Weights, error) {
	var w Weights
	s = strings.TrimSpace(s)
	if s == "" {
		return w, nil
	}
	for _, part := range strings.Split(s, ",") {
		name, value, ok := strings.Cut(part, "=")
		if !ok {
			return w, errors.New(errors.ErrCodeInvalidInput, "weight %q must be direction=value", part)
		}
		d, err := ParseDirection(name)
		if err != nil {
			return w, err
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || f < 0 {
			return w, errors.New(errors.ErrCodeInvalidInput, "weight for %s must be a non-negative number", d)
		}
		w[d] = f
	}
	if w == (Weights{}) {
		return w, errors.New(errors.ErrCodeInvalidInput, "at least one direction weight must be positive")
	}
	return w, nil
}

func (w Weights) validate() error {
	for d, f := range w {
		if f < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "negative weight for %s", Direction(d))
		}
	}
	return nil
}

// Pick chooses one of allowed with probability proportional to its weight.
// It reports false when no allowed direction has positive weight.
func (w Weights) Pick(src Source, allowed []Direction) (Direction, bool) {
	if w == (Weights{}) {
		w = EqualWeights()
	}
	var total float64
	for _, d := range allowed {
		if w[d] > 0 {
			total += w[d]
		}
	}
	if total <= 0 {
		return 0, false
	}

	u := src.Float64() * total
	var last Direction
	for _, d := range allowed {
		if w[d] <= 0 {
			continue
		}
		if u < w[d] {
			return d, true
		}
		u -= w[d]
		last = d
	}
	return last, true
}
