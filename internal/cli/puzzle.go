package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/errors"
	wsio "github.com/matzehuels/wordsearch/pkg/io"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// puzzleFlags are the flags shared by generate and play.
type puzzleFlags struct {
	config    string
	language  string
	alphaCase string
	size      int
	width     int
	height    int
	words     []string
	wordsFile string
	delim     string
	subset    int
	seed      uint64
	attempts  int
	title     string
	weights   string
}

func (f *puzzleFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.config, "config", "", "puzzle config file (.json or .toml)")
	fl.StringVarP(&f.language, "language", "l", "", "alphabet language code (default en)")
	fl.StringVarP(&f.alphaCase, "case", "c", "", "letter case: lower or upper (default lower)")
	fl.IntVarP(&f.size, "size", "s", 0, "grid side length for a square grid (default 10)")
	fl.IntVar(&f.width, "width", 0, "grid width (overrides --size)")
	fl.IntVar(&f.height, "height", 0, "grid height (overrides --size)")
	fl.StringArrayVarP(&f.words, "word", "w", nil, "word to hide, optionally word:clue (repeatable)")
	fl.StringVar(&f.wordsFile, "words-file", "", "file with one word[:clue] per line")
	fl.StringVarP(&f.delim, "delim", "d", "", `word/clue delimiter, escapes like \t allowed (default ":")`)
	fl.IntVar(&f.subset, "subset", 0, "place only this many randomly chosen words")
	fl.Uint64Var(&f.seed, "seed", 0, "random seed for a reproducible puzzle (default: time based)")
	fl.IntVar(&f.attempts, "attempts", wordsearch.DefaultMaxAttempts, "anchor positions tried per word")
	fl.StringVar(&f.title, "title", "", "puzzle title")
	fl.StringVar(&f.weights, "weights", "", "direction weights, e.g. horizontal=2,vertical=1,down-right=1,down-left=1")
}

// options merges the config file, if any, with explicitly set flags.
// Flags win over the file; words from --word and --words-file are appended.
func (f *puzzleFlags) options(cmd *cobra.Command) (wordsearch.Options, error) {
	var cfg wordsearch.Config
	if f.config != "" {
		var err error
		if cfg, err = wsio.ImportConfig(f.config); err != nil {
			return wordsearch.Options{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("language") {
		cfg.Language = f.language
	}
	if changed("case") {
		c, err := alphabet.ParseCase(f.alphaCase)
		if err != nil {
			return wordsearch.Options{}, err
		}
		cfg.Case = c
	}
	if changed("size") {
		cfg.Size = wordsearch.Square(f.size)
	}
	if changed("width") || changed("height") {
		base := cfg.Size
		if base == (wordsearch.Size{}) {
			base = wordsearch.Square(wordsearch.DefaultSize)
		}
		if changed("width") {
			base.Width = f.width
		}
		if changed("height") {
			base.Height = f.height
		}
		cfg.Size = base
	}
	if changed("delim") {
		cfg.WordsDelim = f.delim
	}
	if changed("subset") {
		cfg.RandomSubset = f.subset
	}
	if changed("title") {
		cfg.Title = f.title
	}

	delim, err := cfg.Delimiter()
	if err != nil {
		return wordsearch.Options{}, err
	}
	cfg.Words = append(cfg.Words, f.words...)
	if f.wordsFile != "" {
		pairs, err := wsio.ImportWordClues(f.wordsFile, delim)
		if err != nil {
			return wordsearch.Options{}, err
		}
		for _, wc := range pairs {
			cfg.Words = append(cfg.Words, wc.String(delim))
		}
	}

	weights, err := wordsearch.ParseWeights(f.weights)
	if err != nil {
		return wordsearch.Options{}, err
	}
	if f.attempts < 1 {
		return wordsearch.Options{}, errors.New(errors.ErrCodeInvalidInput, "--attempts must be at least 1")
	}

	return wordsearch.Options{
		Config:      cfg,
		MaxAttempts: f.attempts,
		Seed:        f.seed,
		Weights:     weights,
	}, nil
}

// buildPuzzle resolves the alphabet behind a spinner and generates the
// puzzle. Words that could not be placed are reported as warnings.
func (c *CLI) buildPuzzle(ctx context.Context, opts wordsearch.Options, quiet bool) (*wordsearch.Generator, error) {
	logger := loggerFromContext(ctx)
	opts.Logger = logger

	cat, store, err := c.newCatalog()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	rctx, cancel := c.resolveContext(ctx)
	defer cancel()

	prog := newProgress(logger)
	var spinner *Spinner
	if !quiet {
		spinner = newSpinnerWithContext(rctx, "Loading alphabet...")
		spinner.Start()
	}
	gen, err := wordsearch.New(rctx, cat, opts)
	if spinner != nil {
		spinner.Stop()
	}
	if err != nil {
		if rctx.Err() == context.DeadlineExceeded {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "loading alphabet took longer than %s", c.timeout)
		}
		return nil, err
	}
	prog.done("puzzle generated", "language", gen.Language(), "case", gen.Case(), "size", gen.Size())

	for _, f := range gen.Initial().Failed {
		logger.Warn("word skipped", "word", f.Word, "reason", errors.UserMessage(f.Err))
	}
	if stats, ok := currentStats(); ok {
		placed, failed, mean := stats.snapshot()
		logger.Debug("placement stats", "placed", placed, "failed", failed, "mean_attempts", fmt.Sprintf("%.1f", mean))
	}
	return gen, nil
}
