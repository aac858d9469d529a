// Package wordsearch builds word search puzzles.
//
// A [Generator] owns one rectangular grid of letters. It fills every cell
// from an alphabet [alphabet.Table], then places words along four directions
// so that players can find them by marking both ends.
//
// # Overview
//
//	gen, err := wordsearch.New(ctx, alphabet.Builtin(), wordsearch.Options{
//	    Config: wordsearch.Config{
//	        Language: "en",
//	        Size:     wordsearch.Square(8),
//	        Words:    []string{"cat:feline", "dog:canine"},
//	    },
//	})
//	if err != nil {
//	    return err // alphabet could not be resolved
//	}
//	fmt.Println(gen.GridString(""))
//
// # Placement
//
// [Generator.AddWordClue] splits a word into grid cells with [Cells] (NFC
// normalization followed by grapheme segmentation, so a letter built from
// several code points still fills a single cell). The cells are reversed
// with probability 0.5, a direction is chosen once per call, and random
// anchors are tried until the word fits or the attempts run out.
//
// A word may cross another only where both need the same letter. A word is
// committed whole or not at all.
//
// # Directions
//
//	Horizontal         →   step (+1,  0)
//	Vertical           ↓   step ( 0, +1)
//	DiagonalDownRight  ↘   step (+1, +1)
//	DiagonalDownLeft   ↙   step (-1, +1)
//
// Reversal covers the opposite four, so words can read in all eight
// directions.
//
// # Endpoint Index
//
// Every placed word registers the [Span] between its end cells in both
// orders. [Generator.Lookup] answers whether two marked cells reveal a word.
// A one-letter word has a span whose ends are the same cell.
//
// # Configuration
//
// [Config] is the persisted form of a puzzle. [Generator.ExportConfig]
// produces one from which [FromConfig] rebuilds an equivalent puzzle: the
// same words and clues, with fresh filler and fresh positions.
//
// # Concurrency
//
// A Generator is not safe for concurrent use. Build one per puzzle.
package wordsearch
