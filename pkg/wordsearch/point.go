package wordsearch

import "fmt"

// Point is a grid coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// String renders p as "x,y".
func (p Point) String() string { return fmt.Sprintf("%d,%d", p.X, p.Y) }

// Span is a pair of word end cells.
type Span struct {
	A, B Point
}

// Reverse returns s with its ends swapped.
func (s Span) Reverse() Span { return Span{A: s.B, B: s.A} }

// String renders s as "x,y-x,y".
func (s Span) String() string { return s.A.String() + "-" + s.B.String() }

// less orders spans by A then B, rows first.
func (s Span) less(o Span) bool {
	if s.A != o.A {
		return pointLess(s.A, o.A)
	}
	return pointLess(s.B, o.B)
}

func pointLess(a, b Point) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}
