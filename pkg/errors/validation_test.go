package errors

import (
	"strings"
	"testing"
)

func TestValidateWord(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "cat", false},
		{"accented", "café", false},
		{"hangul", "한국어", false},
		{"with space", "ice cream", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"tab", "ca\tt", true},
		{"newline", "ca\nt", true},
		{"too long", strings.Repeat("a", 300), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWord(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWord(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidWord) {
				t.Errorf("ValidateWord(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidWord)
			}
		})
	}
}

func TestValidateLanguageCode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"two letters", "en", false},
		{"three letters", "haw", false},
		{"region", "pt-br", false},
		{"script", "zh_hant", false},

		{"empty", "", true},
		{"upper", "EN", true},
		{"one letter", "e", true},
		{"path", "../en", true},
		{"space", "en us", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLanguageCode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLanguageCode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateResourceName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "alphabets.json", false},
		{"nested", "catalogs/alphabets.json", false},

		{"empty", "", true},
		{"absolute", "/etc/passwd", true},
		{"traversal", "../alphabets.json", true},
		{"backslash", "catalogs\\alphabets.json", true},
		{"null byte", "alpha\x00bets.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResourceName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateResourceName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"https://example.com/alphabets.json", false},
		{"http://localhost:8080", false},
		{"", true},
		{"ftp://example.com", true},
		{"example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			err := ValidateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
