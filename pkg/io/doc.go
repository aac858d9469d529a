// Package io reads and writes word search configurations and word lists.
//
// # Config Format
//
// A config is a flat record, stored as JSON or TOML:
//
//	{
//	  "language": "es",
//	  "case": "upper",
//	  "size": [12, 8],
//	  "words": ["GATO:felino", "PERRO:canino"],
//	  "random_subset": 1,
//	  "title": "Animales"
//	}
//
// The same record in TOML:
//
//	language = "es"
//	case = "upper"
//	size = [12, 8]
//	words = ["GATO:felino", "PERRO:canino"]
//	random_subset = 1
//	title = "Animales"
//
// "size" is an integer for square grids. "words_delim" replaces the ":"
// separating a word from its clue and may be escaped ("\t" for tabs).
//
// # Words Files
//
// "words_file" points at a delimiter-separated file with one word per line
// and an optional clue:
//
//	gato	felino
//	perro	canino
//	"búho"	"ave: nocturna"
//
// Fields may be quoted when the delimiter is a single character. Blank lines
// are skipped and CRLF line endings are accepted. [ImportConfig] resolves
// the path relative to the config file and appends the entries to "words".
//
// # Import
//
// Use [ImportConfig] to read a config from a path, or [ReadConfig] to read
// from any io.Reader:
//
//	cfg, err := io.ImportConfig("puzzle.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The format follows the file extension: ".toml" is TOML, anything else is
// JSON.
//
// # Export
//
// Use [ExportConfig] to write a config to a file, or [WriteConfig] to write
// to any io.Writer. A config produced by the generator's ExportConfig
// re-imports to the same words and clues.
package io
