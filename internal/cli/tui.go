package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// =============================================================================
// PuzzleModel - Interactive solver
// =============================================================================

// PuzzleModel is the bubbletea model for solving a puzzle in the terminal.
// A word is claimed by marking both of its endpoints, in either order.
// Single-cell words resolve on a single mark.
type PuzzleModel struct {
	Gen      *wordsearch.Generator
	Cursor   wordsearch.Point
	Mark     *wordsearch.Point
	Found    map[int]bool
	Reveal   bool
	Message  string
	solvedAt map[wordsearch.Point]bool
}

// NewPuzzleModel creates a solver positioned at the top-left cell.
func NewPuzzleModel(gen *wordsearch.Generator) PuzzleModel {
	return PuzzleModel{
		Gen:      gen,
		Found:    make(map[int]bool),
		solvedAt: make(map[wordsearch.Point]bool),
	}
}

// Solved reports whether every placed word has been found.
func (m PuzzleModel) Solved() bool {
	return len(m.Found) == len(m.Gen.Words())
}

func (m PuzzleModel) Init() tea.Cmd {
	return nil
}

func (m PuzzleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		m.move(0, -1)
	case "down", "j":
		m.move(0, 1)
	case "left", "h":
		m.move(-1, 0)
	case "right", "l":
		m.move(1, 0)
	case "?":
		m.Reveal = !m.Reveal
	case " ", "enter":
		m.mark()
		if m.Solved() {
			m.Message = "All words found!"
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *PuzzleModel) move(dx, dy int) {
	x := min(max(m.Cursor.X+dx, 0), m.Gen.Width()-1)
	y := min(max(m.Cursor.Y+dy, 0), m.Gen.Height()-1)
	m.Cursor = wordsearch.Point{X: x, Y: y}
}

// mark records an endpoint at the cursor. The second endpoint either claims
// the word spanning both marks or clears the selection.
func (m *PuzzleModel) mark() {
	p := m.Cursor
	if m.Mark == nil {
		if i, ok := m.Gen.Lookup(p, p); ok && !m.Found[i] {
			m.claim(i)
			return
		}
		m.Mark = &p
		m.Message = ""
		return
	}

	start := *m.Mark
	m.Mark = nil
	i, ok := m.Gen.Lookup(start, p)
	switch {
	case !ok:
		m.Message = "No word between " + start.String() + " and " + p.String()
	case m.Found[i]:
		m.Message = "Already found " + m.Gen.Words()[i]
	default:
		m.claim(i)
	}
}

func (m *PuzzleModel) claim(i int) {
	m.Found[i] = true
	for _, c := range m.Gen.WordCells(i) {
		m.solvedAt[c] = true
	}
	m.Message = "Found " + m.Gen.Words()[i]
}

func (m PuzzleModel) cellStyle(p wordsearch.Point) lipgloss.Style {
	switch {
	case p == m.Cursor:
		return styleCursor
	case m.Mark != nil && p == *m.Mark:
		return styleMarked
	case m.solvedAt[p]:
		return styleAnswer
	case m.Reveal && m.Gen.Claimed(p):
		return StyleHighlight
	}
	return styleCell
}

func (m PuzzleModel) View() string {
	var b strings.Builder

	title := m.Gen.Title()
	if title == "" {
		title = "Word Search"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("arrows/hjkl move  space mark  ? reveal  q quit"))
	b.WriteString("\n\n")

	b.WriteString(renderGrid(m.Gen, m.cellStyle))
	b.WriteString("\n\n")
	b.WriteString(renderClues(m.Gen, m.Reveal, m.Found))
	b.WriteString("\n\n")

	status := fmt.Sprintf("[%d/%d] %s", len(m.Found), len(m.Gen.Words()), m.Cursor)
	b.WriteString(StyleDim.Render(status))
	if m.Message != "" {
		b.WriteString("  " + StyleValue.Render(m.Message))
	}
	b.WriteString("\n")

	return b.String()
}
