package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

func newTestPuzzle(t *testing.T, size int, words ...string) *wordsearch.Generator {
	t.Helper()
	gen, err := wordsearch.New(context.Background(), alphabet.Builtin(), wordsearch.Options{
		Config: wordsearch.Config{Size: wordsearch.Square(size), Words: words},
		Seed:   7,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := len(gen.Words()); got != len(words) {
		t.Fatalf("placed %d of %d words", got, len(words))
	}
	return gen
}

func press(m PuzzleModel, key tea.KeyMsg) (PuzzleModel, tea.Cmd) {
	next, cmd := m.Update(key)
	return next.(PuzzleModel), cmd
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}
)

func TestPuzzleModelMovementClamps(t *testing.T) {
	m := NewPuzzleModel(newTestPuzzle(t, 3, "ab"))

	m, _ = press(m, keyUp)
	if m.Cursor != (wordsearch.Point{}) {
		t.Errorf("cursor moved above the grid: %v", m.Cursor)
	}
	for range 5 {
		m, _ = press(m, keyRight)
		m, _ = press(m, keyDown)
	}
	if want := (wordsearch.Point{X: 2, Y: 2}); m.Cursor != want {
		t.Errorf("cursor = %v, want %v", m.Cursor, want)
	}
}

func TestPuzzleModelSingleCellWord(t *testing.T) {
	m := NewPuzzleModel(newTestPuzzle(t, 1, "a"))

	m, cmd := press(m, keyEnter)
	if !m.Found[0] {
		t.Fatal("single-cell word not found on one mark")
	}
	if m.Mark != nil {
		t.Error("mark left pending after single-cell find")
	}
	if !m.Solved() || cmd == nil {
		t.Error("solving the last word should quit")
	}
}

func TestPuzzleModelEndpoints(t *testing.T) {
	gen := newTestPuzzle(t, 6, "cat", "dog")
	cells := gen.WordCells(1)
	first, last := cells[0], cells[len(cells)-1]

	// Either order of endpoints claims the word.
	m := NewPuzzleModel(gen)
	m.Cursor = last
	m, _ = press(m, keyEnter)
	if m.Mark == nil || *m.Mark != last {
		t.Fatalf("mark = %v, want %v", m.Mark, last)
	}
	m.Cursor = first
	m, cmd := press(m, keyEnter)
	if !m.Found[1] || m.Found[0] {
		t.Fatalf("found = %v, want only word 1", m.Found)
	}
	if cmd != nil {
		t.Error("quit before every word was found")
	}
	if !strings.Contains(m.Message, "dog") {
		t.Errorf("message = %q", m.Message)
	}
	if !strings.Contains(m.View(), "[1/2]") {
		t.Error("view does not show progress")
	}
}

func TestPuzzleModelMiss(t *testing.T) {
	gen := newTestPuzzle(t, 6, "cat")
	cells := gen.WordCells(0)

	m := NewPuzzleModel(gen)
	m.Cursor = cells[0]
	m, _ = press(m, keyEnter)
	m.Cursor = cells[1]
	m, _ = press(m, keyEnter)

	if len(m.Found) != 0 {
		t.Errorf("found = %v after marking a partial span", m.Found)
	}
	if m.Mark != nil {
		t.Error("a miss should clear the mark")
	}
	if !strings.HasPrefix(m.Message, "No word") {
		t.Errorf("message = %q", m.Message)
	}
}

func TestPuzzleModelQuit(t *testing.T) {
	m := NewPuzzleModel(newTestPuzzle(t, 3, "ab"))
	_, cmd := press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should quit")
	}
}
