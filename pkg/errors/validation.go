package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// maxWordLength bounds a single word before grapheme decomposition. No grid
// anyone prints has sides this long.
const maxWordLength = 256

// ValidateWord rejects words that cannot occupy grid cells: empty strings,
// whitespace-only strings, and words containing control characters.
func ValidateWord(word string) error {
	if strings.TrimSpace(word) == "" {
		return New(ErrCodeInvalidWord, "word cannot be empty")
	}
	if len(word) > maxWordLength {
		return New(ErrCodeInvalidWord, "word too long (max %d bytes)", maxWordLength)
	}
	for _, r := range word {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidWord, "word %q contains control characters", word)
		}
	}
	return nil
}

// languageCodeRegex matches catalog language keys such as "en", "pt-br" or "zh_hant".
var languageCodeRegex = regexp.MustCompile(`^[a-z]{2,3}([_-][a-z0-9]{2,8})*$`)

// ValidateLanguageCode validates a language code before it is looked up in
// an alphabet catalog.
func ValidateLanguageCode(code string) error {
	if code == "" {
		return New(ErrCodeUnsupportedLanguage, "language code cannot be empty")
	}
	if !languageCodeRegex.MatchString(code) {
		return New(ErrCodeUnsupportedLanguage, "invalid language code: %q", code)
	}
	return nil
}

// ValidateResourceName validates the name of a catalog resource passed to a
// loader. It prevents path traversal when the loader is rooted at a directory
// or URL prefix.
//
// Validation rules:
//   - Name cannot be empty
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateResourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "resource name cannot be empty")
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "resource name contains invalid characters")
		}
	}

	if strings.HasPrefix(name, "/") {
		return New(ErrCodeInvalidPath, "resource name must be relative (cannot start with /)")
	}

	if strings.Contains(name, "..") {
		return New(ErrCodeInvalidPath, "resource name cannot contain path traversal sequences (..)")
	}

	if strings.Contains(name, "\\") {
		return New(ErrCodeInvalidPath, "resource name cannot contain backslashes")
	}

	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
