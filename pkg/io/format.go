package io

import (
	"path/filepath"
	"strings"

	"github.com/matzehuels/wordsearch/pkg/errors"
)

// Format is a config serialization.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatJSON
}

// ParseFormat parses "json" or "toml".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatTOML:
		return f, nil
	case "":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q (must be json or toml)", s)
	}
}
