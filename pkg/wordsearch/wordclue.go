package wordsearch

import (
	"strings"

	"github.com/matzehuels/wordsearch/pkg/errors"
)

// DefaultDelimiter separates a word from its clue.
const DefaultDelimiter = ":"

// WordClue is a word to hide and the clue shown for it.
type WordClue struct {
	Word string
	Clue string
}

// ParseWordClue splits s on the first delim. The clue keeps any further
// delimiters. A missing or blank clue is replaced by the word.
func ParseWordClue(s, delim string) WordClue {
	if delim == "" {
		delim = DefaultDelimiter
	}
	word, clue, _ := strings.Cut(s, delim)
	wc := WordClue{Word: strings.TrimSpace(word), Clue: strings.TrimSpace(clue)}
	if wc.Clue == "" {
		wc.Clue = wc.Word
	}
	return wc
}

// ParseWordClues applies ParseWordClue to every entry.
func ParseWordClues(entries []string, delim string) []WordClue {
	pairs := make([]WordClue, len(entries))
	for i, e := range entries {
		pairs[i] = ParseWordClue(e, delim)
	}
	return pairs
}

// String joins the pair with delim.
func (wc WordClue) String(delim string) string {
	if delim == "" {
		delim = DefaultDelimiter
	}
	return wc.Word + delim + wc.Clue
}

// UnescapeDelimiter turns an escaped delimiter as typed on a command line or
// in a config file into the literal separator. It understands \t, \n, \\ and
// \: and leaves other sequences as they are.
func UnescapeDelimiter(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i == len(s)-1 {
			return "", errors.New(errors.ErrCodeInvalidConfig, "delimiter %q ends with a lone backslash", s)
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case '\\':
			b.WriteByte('\\')
		case ':':
			b.WriteByte(':')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
