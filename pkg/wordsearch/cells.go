package wordsearch

import (
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// Cells splits word into the strings that fill one grid cell each: the
// grapheme clusters of its NFC form. Placement and collision checks both use
// this decomposition, and joining the result gives back the NFC word.
func Cells(word string) []string {
	s := norm.NFC.String(word)
	cells := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cells = append(cells, g.Str())
	}
	return cells
}

// CellCount returns len(Cells(word)).
func CellCount(word string) int {
	return uniseg.GraphemeClusterCount(norm.NFC.String(word))
}
