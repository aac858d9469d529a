package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/wordsearch/pkg/errors"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// WriteConfig encodes cfg to w. JSON output is indented with two spaces.
func WriteConfig(w io.Writer, cfg wordsearch.Config, format Format) error {
	switch format {
	case FormatTOML:
		enc := toml.NewEncoder(w)
		enc.Indent = "  "
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode toml: %w", err)
		}
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	return nil
}

// ExportConfig writes cfg to path in the format given by its extension.
func ExportConfig(cfg wordsearch.Config, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteConfig(f, cfg, FormatFromPath(path)); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteWordClues writes pairs one per line joined by delim. Words whose clue
// equals the word are written alone.
func WriteWordClues(w io.Writer, pairs []wordsearch.WordClue, delim string) error {
	if delim == "" {
		delim = wordsearch.DefaultDelimiter
	}
	var b strings.Builder
	for _, wc := range pairs {
		if wc.Clue == "" || wc.Clue == wc.Word {
			b.WriteString(wc.Word)
		} else {
			b.WriteString(wc.String(delim))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
