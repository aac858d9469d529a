package wordsearch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/errors"
)

// DefaultSize is the side of the grid when no size is configured.
const DefaultSize = 10

// Config is the persisted description of a puzzle.
//
// Size is written as a single integer for square grids and as a
// [width, height] pair otherwise. WordsFile names a delimiter-separated file
// of extra entries; readers in pkg/io resolve it and append its entries to
// Words, the generator itself ignores it.
type Config struct {
	Language     string        `json:"language" toml:"language"`
	Case         alphabet.Case `json:"case" toml:"case"`
	Size         Size          `json:"size" toml:"size"`
	Words        []string      `json:"words,omitempty" toml:"words,omitempty"`
	RandomSubset int           `json:"random_subset,omitempty" toml:"random_subset,omitempty"`
	WordsDelim   string        `json:"words_delim,omitempty" toml:"words_delim,omitempty"`
	WordsFile    string        `json:"words_file,omitempty" toml:"words_file,omitempty"`
	Title        string        `json:"title,omitempty" toml:"title,omitempty"`
}

// WithDefaults fills unset fields.
func (c Config) WithDefaults() Config {
	if c.Language == "" {
		c.Language = alphabet.DefaultLanguage
	}
	if c.Case == "" {
		c.Case = alphabet.DefaultCase
	}
	if c.Size == (Size{}) {
		c.Size = Square(DefaultSize)
	}
	return c
}

// Delimiter returns the unescaped word/clue separator.
func (c Config) Delimiter() (string, error) {
	if c.WordsDelim == "" {
		return DefaultDelimiter, nil
	}
	d, err := UnescapeDelimiter(c.WordsDelim)
	if err != nil {
		return "", err
	}
	if d == "" {
		return DefaultDelimiter, nil
	}
	return d, nil
}

// Validate checks the fields that do not need the alphabet catalog.
func (c Config) Validate() error {
	if err := c.Size.Validate(); err != nil {
		return err
	}
	if _, err := alphabet.ParseCase(string(c.Case)); err != nil {
		return err
	}
	if c.RandomSubset < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "random_subset must not be negative, got %d", c.RandomSubset)
	}
	if _, err := c.Delimiter(); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// Size
// =============================================================================

// maxSide bounds each grid side.
const maxSide = 500

// Size is the width and height of a grid in cells.
type Size struct {
	Width, Height int
}

// Square returns an n×n size.
func Square(n int) Size { return Size{Width: n, Height: n} }

// IsSquare reports whether width equals height.
func (s Size) IsSquare() bool { return s.Width == s.Height }

// Max returns the larger side.
func (s Size) Max() int { return max(s.Width, s.Height) }

// Validate checks that both sides are within [1, 500].
func (s Size) Validate() error {
	if s.Width < 1 || s.Height < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "grid size must be at least 1x1, got %s", s)
	}
	if s.Width > maxSide || s.Height > maxSide {
		return errors.New(errors.ErrCodeInvalidConfig, "grid size %s exceeds %dx%d", s, maxSide, maxSide)
	}
	return nil
}

func (s Size) String() string { return fmt.Sprintf("%dx%d", s.Width, s.Height) }

// MarshalJSON writes n for square sizes and [w, h] otherwise.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.IsSquare() {
		return json.Marshal(s.Width)
	}
	return json.Marshal([2]int{s.Width, s.Height})
}

// UnmarshalJSON reads n, [n] or [w, h].
func (s *Size) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var sides []int
		if err := json.Unmarshal(data, &sides); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size")
		}
		return s.setSides(sides)
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "size must be an integer or [width, height]")
	}
	*s = Square(n)
	return nil
}

// MarshalTOML writes n for square sizes and [w, h] otherwise.
func (s Size) MarshalTOML() ([]byte, error) {
	if s.IsSquare() {
		return []byte(strconv.Itoa(s.Width)), nil
	}
	return []byte(fmt.Sprintf("[%d, %d]", s.Width, s.Height)), nil
}

// UnmarshalTOML reads n, [n] or [w, h].
func (s *Size) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		*s = Square(int(v))
		return nil
	case []any:
		sides := make([]int, len(v))
		for i, e := range v {
			n, ok := e.(int64)
			if !ok {
				return errors.New(errors.ErrCodeInvalidConfig, "size entries must be integers, got %T", e)
			}
			sides[i] = int(n)
		}
		return s.setSides(sides)
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "size must be an integer or [width, height], got %T", v)
	}
}

func (s *Size) setSides(sides []int) error {
	switch len(sides) {
	case 1:
		*s = Square(sides[0])
	case 2:
		*s = Size{Width: sides[0], Height: sides[1]}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "size must have one or two sides, got %d", len(sides))
	}
	return nil
}
