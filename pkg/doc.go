// Package pkg provides the libraries behind the wordsearch puzzle generator.
//
// # Overview
//
// Wordsearch hides a list of words in a grid of random letters drawn from a
// language's alphabet. The pkg directory is organized as follows:
//
//  1. [alphabet] - Alphabet catalog, loaders and weighted letter sampling
//  2. [wordsearch] - Grid engine: placement, endpoint index, config
//  3. [io] - JSON/TOML config and word-list import/export
//  4. [cache] - Byte caches (file, Redis, null) for downloaded catalogs
//  5. [httputil], [observability], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Config (flags, JSON or TOML file)
//	         ↓
//	    [alphabet] package (resolve language and case to a sampling table)
//	         ↓
//	    [wordsearch] package (randomize cells, place words, index endpoints)
//	         ↓
//	    Grid, clues and exported config
//
// # Quick Start
//
//	gen, err := wordsearch.New(ctx, alphabet.Builtin(), wordsearch.Options{
//	    Config: wordsearch.Config{Size: wordsearch.Square(10), Words: []string{"cat:feline", "dog"}},
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(gen.GridString(""))
//
// [alphabet]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/alphabet
// [wordsearch]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/wordsearch
// [io]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/io
// [cache]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/wordsearch/pkg/buildinfo
package pkg
