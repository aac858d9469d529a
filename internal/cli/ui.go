package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCell   = lipgloss.NewStyle().Foreground(colorWhite)
	styleAnswer = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleCursor = lipgloss.NewStyle().Bold(true).Reverse(true)
	styleMarked = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Puzzle Rendering
// =============================================================================

// cellStyler picks the style of one grid cell.
type cellStyler func(p wordsearch.Point) lipgloss.Style

// cellWidth returns the display width of the widest cell plus a gap.
func cellWidth(grid [][]string) int {
	w := 1
	for _, row := range grid {
		for _, c := range row {
			w = max(w, lipgloss.Width(c))
		}
	}
	return w + 1
}

// renderGrid draws the grid with every cell padded to the same width.
func renderGrid(gen *wordsearch.Generator, style cellStyler) string {
	grid := gen.Grid()
	width := cellWidth(grid)

	var b strings.Builder
	for y, row := range grid {
		for x, c := range row {
			cell := c + strings.Repeat(" ", width-lipgloss.Width(c))
			b.WriteString(style(wordsearch.Point{X: x, Y: y}).Render(cell))
		}
		if y < len(grid)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// answerCells returns the cells covered by any placed word.
func answerCells(gen *wordsearch.Generator) map[wordsearch.Point]bool {
	cells := make(map[wordsearch.Point]bool)
	for i := range gen.Words() {
		for _, p := range gen.WordCells(i) {
			cells[p] = true
		}
	}
	return cells
}

// renderClues lists the clues, numbered. With answers, each clue that
// differs from its word is followed by the word.
func renderClues(gen *wordsearch.Generator, answers bool, found map[int]bool) string {
	words, clues := gen.Words(), gen.Clues()
	var b strings.Builder
	for i, clue := range clues {
		num := StyleDim.Render(fmt.Sprintf("%2d.", i+1))
		line := clue
		if answers && clue != words[i] {
			line += " " + StyleDim.Render("("+words[i]+")")
		}
		switch {
		case found[i]:
			line = StyleSuccess.Render(iconSuccess + " " + clue)
		default:
			line = StyleValue.Render(line)
		}
		b.WriteString(num + " " + line)
		if i < len(clues)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
