package io

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	goerrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// ReadConfig decodes a config from r.
//
// Unknown keys are rejected so that typos ("langauge") do not silently fall
// back to defaults. WordsFile is returned as written, unresolved.
func ReadConfig(r io.Reader, format Format) (wordsearch.Config, error) {
	var cfg wordsearch.Config
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(r).Decode(&cfg)
		if err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
		}
	case FormatJSON, "":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode json")
		}
	default:
		return cfg, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	return cfg, nil
}

// ImportConfig reads a config file. The format follows the extension. A
// relative words_file is resolved against the config's directory and its
// entries are appended to Words; WordsFile is cleared afterwards.
func ImportConfig(path string) (wordsearch.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return wordsearch.Config{}, openError(path, err)
	}
	defer f.Close()

	cfg, err := ReadConfig(f, FormatFromPath(path))
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.WordsFile == "" {
		return cfg, nil
	}

	wordsPath := cfg.WordsFile
	if !filepath.IsAbs(wordsPath) {
		wordsPath = filepath.Join(filepath.Dir(path), wordsPath)
	}
	delim, err := cfg.Delimiter()
	if err != nil {
		return cfg, err
	}
	pairs, err := ImportWordClues(wordsPath, delim)
	if err != nil {
		return cfg, err
	}
	for _, wc := range pairs {
		cfg.Words = append(cfg.Words, wc.String(delim))
	}
	cfg.WordsFile = ""
	return cfg, nil
}

// ReadWordClues parses a delimiter-separated word list. Each non-blank line
// holds a word and an optional clue; a missing clue defaults to the word.
//
// A single-character delimiter allows quoted fields, so clues may contain
// the delimiter. Longer delimiters split each line on the first occurrence.
func ReadWordClues(r io.Reader, delim string) ([]wordsearch.WordClue, error) {
	if delim == "" {
		delim = wordsearch.DefaultDelimiter
	}
	if utf8.RuneCountInString(delim) == 1 && delim != `"` && delim != "\n" && delim != "\r" {
		return readDSV(r, []rune(delim)[0])
	}

	var pairs []wordsearch.WordClue
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		pairs = append(pairs, wordsearch.ParseWordClue(line, delim))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read word list")
	}
	return pairs, nil
}

func readDSV(r io.Reader, comma rune) ([]wordsearch.WordClue, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = comma != ' ' && comma != '\t'

	var pairs []wordsearch.WordClue
	for {
		rec, err := cr.Read()
		if goerrors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "read word list")
		}
		wc := wordsearch.WordClue{Word: strings.TrimSpace(rec[0])}
		if strings.ContainsRune(wc.Word, comma) {
			line, _ := cr.FieldPos(0)
			return nil, errors.New(errors.ErrCodeInvalidWord, "line %d: word %q contains the delimiter %q", line, wc.Word, comma)
		}
		if len(rec) > 1 {
			wc.Clue = strings.TrimSpace(strings.Join(rec[1:], string(comma)))
		}
		if wc.Word == "" && wc.Clue == "" {
			continue
		}
		if wc.Clue == "" {
			wc.Clue = wc.Word
		}
		pairs = append(pairs, wc)
	}
	return pairs, nil
}

// ImportWordClues reads a word list file.
func ImportWordClues(path, delim string) ([]wordsearch.WordClue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	pairs, err := ReadWordClues(f, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return pairs, nil
}

func openError(path string, err error) error {
	if goerrors.Is(err, os.ErrNotExist) {
		return errors.Wrap(errors.ErrCodeNotFound, err, "open %s", path)
	}
	return errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
}
