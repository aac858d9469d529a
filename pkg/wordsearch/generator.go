package wordsearch

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/observability"
)

// DefaultMaxAttempts is the number of anchors tried per word.
const DefaultMaxAttempts = 20

// Source supplies randomness to the generator.
type Source = alphabet.Source

// Resolver returns the sampling table for a language and case.
// *alphabet.Catalog implements it.
type Resolver interface {
	Resolve(ctx context.Context, language string, c alphabet.Case) (*alphabet.Table, error)
}

// Options configures a Generator.
type Options struct {
	Config

	// MaxAttempts is the default number of anchors tried per word.
	// Zero means DefaultMaxAttempts.
	MaxAttempts int

	// Seed makes generation reproducible. Zero seeds from the clock.
	// Ignored when Source is set.
	Seed uint64

	Source  Source
	Weights Weights
	Logger  *log.Logger
}

// Failure is a word that could not be placed.
type Failure struct {
	Word string
	Err  error
}

// Result reports the outcome of a batch of words in processing order.
type Result struct {
	Placed []string
	Failed []Failure
}

// FailedWords returns the words of r.Failed.
func (r Result) FailedWords() []string {
	words := make([]string, len(r.Failed))
	for i, f := range r.Failed {
		words[i] = f.Word
	}
	return words
}

// Generator owns one puzzle grid.
type Generator struct {
	language string
	cs       alphabet.Case
	size     Size
	delim    string
	rawDelim string
	title    string

	table       *alphabet.Table
	src         Source
	weights     Weights
	maxAttempts int
	logger      *log.Logger

	grid     [][]string
	occupied [][]string

	words []string
	clues []string
	cells [][]Point
	index map[Span]int

	initial Result
}

// New resolves the alphabet, fills the grid and places opts.Words.
// It fails without a generator when the alphabet cannot be resolved.
func New(ctx context.Context, r Resolver, opts Options) (*Generator, error) {
	cfg := opts.Config.WithDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := opts.Weights.validate(); err != nil {
		return nil, err
	}
	cs, _ := alphabet.ParseCase(string(cfg.Case))
	delim, _ := cfg.Delimiter()

	table, err := r.Resolve(ctx, cfg.Language, cs)
	if err != nil {
		return nil, err
	}

	g := &Generator{
		language:    table.Language,
		cs:          cs,
		size:        cfg.Size,
		delim:       delim,
		rawDelim:    cfg.WordsDelim,
		title:       cfg.Title,
		table:       table,
		src:         opts.Source,
		weights:     opts.Weights,
		maxAttempts: opts.MaxAttempts,
		logger:      opts.Logger,
		index:       make(map[Span]int),
	}
	if g.src == nil {
		seed := opts.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.src = rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
	}
	if g.maxAttempts <= 0 {
		g.maxAttempts = DefaultMaxAttempts
	}
	if g.logger == nil {
		g.logger = log.Default()
	}

	g.grid = newCells(g.size)
	g.occupied = newCells(g.size)
	if err := g.RandomizeCells(); err != nil {
		return nil, err
	}

	if len(cfg.Words) > 0 {
		g.initial = g.AddWordClues(cfg.Words, cfg.RandomSubset, g.maxAttempts)
	}
	return g, nil
}

// FromConfig builds a generator from a persisted config. Fields of
// opts.Config are replaced by cfg.
func FromConfig(ctx context.Context, r Resolver, cfg Config, opts Options) (*Generator, error) {
	opts.Config = cfg
	return New(ctx, r, opts)
}

func newCells(s Size) [][]string {
	rows := make([][]string, s.Height)
	for y := range rows {
		rows[y] = make([]string, s.Width)
	}
	return rows
}

// Initial returns the outcome of the words passed at construction.
func (g *Generator) Initial() Result { return g.initial }

// RandomizeCells refills every cell from the alphabet, including cells of
// placed words. Call it before placing words.
func (g *Generator) RandomizeCells() error {
	for y, row := range g.grid {
		for x := range row {
			c, err := g.table.Char(g.src)
			if err != nil {
				return err
			}
			g.grid[y][x] = c
		}
	}
	return nil
}

// =============================================================================
// Placement
// =============================================================================

// AddWordClue places word with clue on the grid. A blank clue defaults to
// the word. maxAttempts <= 0 uses the generator default.
//
// The error carries INVALID_WORD, WORD_TOO_LONG or PLACEMENT_FAILED. The
// grid is unchanged when an error is returned.
func (g *Generator) AddWordClue(word, clue string, maxAttempts int) error {
	word = strings.TrimSpace(word)
	clue = strings.TrimSpace(clue)
	if clue == "" {
		clue = word
	}
	if maxAttempts <= 0 {
		maxAttempts = g.maxAttempts
	}

	err := g.place(word, clue, maxAttempts)
	if err != nil {
		observability.Generator().OnWordFailed(word, string(errors.GetCode(err)))
		g.logger.Debug("word not placed", "word", word, "error", err)
	}
	return err
}

func (g *Generator) place(word, clue string, maxAttempts int) error {
	if err := errors.ValidateWord(word); err != nil {
		return err
	}
	if g.delim != "" && strings.Contains(word, g.delim) {
		return errors.New(errors.ErrCodeInvalidWord, "word %q contains the delimiter %q", word, g.delim)
	}
	cells := Cells(word)
	for _, c := range cells {
		if strings.TrimSpace(c) == "" {
			return errors.New(errors.ErrCodeInvalidWord, "word %q contains whitespace", word)
		}
	}
	n := len(cells)
	if n > g.size.Max() {
		return errors.New(errors.ErrCodeWordTooLong, "word %q has %d letters, grid is %s", word, n, g.size)
	}

	seq := cells
	reversed := g.src.Float64() < 0.5
	if reversed {
		seq = slices.Clone(cells)
		slices.Reverse(seq)
	}

	var allowed []Direction
	for _, d := range Directions {
		if d.Fits(g.size.Width, g.size.Height, n) {
			allowed = append(allowed, d)
		}
	}
	dir, ok := g.weights.Pick(g.src, allowed)
	if !ok {
		return errors.New(errors.ErrCodePlacementFailed, "no weighted direction fits %q in a %s grid", word, g.size)
	}

	path := make([]Point, n)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		anchor := dir.anchor(g.src, g.size.Width, g.size.Height, n)
		if !g.clear(anchor, dir, seq, path) {
			continue
		}

		g.commit(word, clue, seq, path, reversed)
		observability.Generator().OnWordPlaced(word, dir.String(), attempt)
		g.logger.Debug("word placed",
			"word", word, "direction", dir, "reversed", reversed,
			"from", path[0], "to", path[n-1], "attempts", attempt)
		return nil
	}
	return errors.New(errors.ErrCodePlacementFailed, "could not place %q %s after %d attempts", word, dir, maxAttempts)
}

// clear fills path for the word at anchor and reports whether every cell is
// free or already holds the same letter, and the span is not taken.
func (g *Generator) clear(anchor Point, dir Direction, seq []string, path []Point) bool {
	for i, c := range seq {
		p := dir.At(anchor, i)
		if claimed := g.occupied[p.Y][p.X]; claimed != "" && claimed != c {
			return false
		}
		path[i] = p
	}
	_, taken := g.index[Span{A: path[0], B: path[len(path)-1]}]
	return !taken
}

func (g *Generator) commit(word, clue string, seq []string, path []Point, reversed bool) {
	for i, p := range path {
		g.grid[p.Y][p.X] = seq[i]
		g.occupied[p.Y][p.X] = seq[i]
	}

	cells := slices.Clone(path)
	if reversed {
		slices.Reverse(cells)
	}
	idx := len(g.words)
	g.words = append(g.words, word)
	g.clues = append(g.clues, clue)
	g.cells = append(g.cells, cells)

	span := Span{A: path[0], B: path[len(path)-1]}
	g.index[span] = idx
	g.index[span.Reverse()] = idx
}

// AddWordClues parses entries with the configured delimiter and places them.
// When 0 < subset < len(entries), only subset distinct entries drawn at
// random are used.
func (g *Generator) AddWordClues(entries []string, subset, maxAttempts int) Result {
	return g.AddPairs(ParseWordClues(entries, g.delim), subset, maxAttempts)
}

// AddPairs places word/clue pairs. Failures are collected, never fatal.
func (g *Generator) AddPairs(pairs []WordClue, subset, maxAttempts int) Result {
	if subset > 0 && subset < len(pairs) {
		picked := make([]WordClue, 0, subset)
		for _, i := range pickSubset(g.src, len(pairs), subset) {
			picked = append(picked, pairs[i])
		}
		pairs = picked
	}

	var res Result
	for _, wc := range pairs {
		word := strings.TrimSpace(wc.Word)
		if err := g.AddWordClue(word, wc.Clue, maxAttempts); err != nil {
			res.Failed = append(res.Failed, Failure{Word: word, Err: err})
			continue
		}
		res.Placed = append(res.Placed, word)
	}
	return res
}

// pickSubset returns k distinct indices below n in increasing order.
func pickSubset(src Source, n, k int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := range k {
		j := i + src.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	out := idx[:k]
	slices.Sort(out)
	return out
}

// =============================================================================
// Read access
// =============================================================================

// Width returns the number of columns.
func (g *Generator) Width() int { return g.size.Width }

// Height returns the number of rows.
func (g *Generator) Height() int { return g.size.Height }

// Size returns the grid dimensions.
func (g *Generator) Size() Size { return g.size }

// Title returns the puzzle title, possibly empty.
func (g *Generator) Title() string { return g.title }

// Language returns the resolved alphabet language code.
func (g *Generator) Language() string { return g.language }

// Case returns the resolved letter case.
func (g *Generator) Case() alphabet.Case { return g.cs }

// Table returns the sampling table used to fill cells.
func (g *Generator) Table() *alphabet.Table { return g.table }

// Grid returns a copy of the rows of the grid.
func (g *Generator) Grid() [][]string {
	rows := make([][]string, len(g.grid))
	for y, row := range g.grid {
		rows[y] = slices.Clone(row)
	}
	return rows
}

// Cell returns the letter at p, or "" when p is off the grid.
func (g *Generator) Cell(p Point) string {
	if !g.contains(p) {
		return ""
	}
	return g.grid[p.Y][p.X]
}

// Claimed reports whether a placed word covers p.
func (g *Generator) Claimed(p Point) bool {
	return g.contains(p) && g.occupied[p.Y][p.X] != ""
}

func (g *Generator) contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.size.Width && p.Y < g.size.Height
}

// Words returns the placed words in placement order.
func (g *Generator) Words() []string { return slices.Clone(g.words) }

// Clues returns the clues parallel to Words.
func (g *Generator) Clues() []string { return slices.Clone(g.clues) }

// WordCells returns the cells of word i in reading order.
func (g *Generator) WordCells(i int) []Point { return slices.Clone(g.cells[i]) }

// Index returns a copy of the endpoint index. Every word appears under both
// orders of its span.
func (g *Generator) Index() map[Span]int {
	m := make(map[Span]int, len(g.index))
	for k, v := range g.index {
		m[k] = v
	}
	return m
}

// Spans returns the keys of the endpoint index in row-major order.
func (g *Generator) Spans() []Span {
	spans := make([]Span, 0, len(g.index))
	for s := range g.index {
		spans = append(spans, s)
	}
	slices.SortFunc(spans, func(a, b Span) int {
		switch {
		case a.less(b):
			return -1
		case b.less(a):
			return 1
		}
		return 0
	})
	return spans
}

// Lookup returns the index of the word whose ends are a and b, in either
// order. For a one-letter word a equals b.
func (g *Generator) Lookup(a, b Point) (int, bool) {
	i, ok := g.index[Span{A: a, B: b}]
	return i, ok
}

// GridString renders the grid one row per line, cells separated by spaces,
// each line prefixed by indent.
func (g *Generator) GridString(indent string) string {
	lines := make([]string, len(g.grid))
	for y, row := range g.grid {
		lines[y] = indent + strings.Join(row, " ")
	}
	return strings.Join(lines, "\n")
}

// ExportConfig returns a config that rebuilds this puzzle's words and clues.
func (g *Generator) ExportConfig() Config {
	words := make([]string, len(g.words))
	for i := range g.words {
		words[i] = WordClue{Word: g.words[i], Clue: g.clues[i]}.String(g.delim)
	}
	return Config{
		Language:   g.language,
		Case:       g.cs,
		Size:       g.size,
		Words:      words,
		WordsDelim: g.rawDelim,
		Title:      g.title,
	}
}
