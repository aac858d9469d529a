package alphabet

import (
	"strings"

	"github.com/matzehuels/wordsearch/pkg/errors"
)

// Case selects a letter-case variant of an alphabet.
type Case string

const (
	Lower Case = "lower"
	Upper Case = "upper"

	// DefaultCase is used when no case is given.
	DefaultCase = Lower
)

// ParseCase parses a case selector. The empty string yields DefaultCase;
// matching is case-insensitive.
func ParseCase(s string) (Case, error) {
	switch Case(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return DefaultCase, nil
	case Lower:
		return Lower, nil
	case Upper:
		return Upper, nil
	default:
		return "", errors.New(errors.ErrCodeUnsupportedCase, "unknown case %q (must be lower or upper)", s)
	}
}

// String implements fmt.Stringer.
func (c Case) String() string { return string(c) }
