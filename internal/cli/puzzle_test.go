package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/errors"
	wsio "github.com/matzehuels/wordsearch/pkg/io"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

func parsePuzzleFlags(t *testing.T, args ...string) (wordsearch.Options, error) {
	t.Helper()
	var f puzzleFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags: %v", err)
	}
	return f.options(cmd)
}

func TestPuzzleFlagsOptions(t *testing.T) {
	opts, err := parsePuzzleFlags(t,
		"-l", "es", "-c", "UPPER", "--width", "12", "-w", "gato:cat", "-w", "perro",
		"--subset", "1", "--seed", "9", "--attempts", "5", "--title", "Animales",
		"--weights", "horizontal=3")
	if err != nil {
		t.Fatalf("options: %v", err)
	}

	cfg := opts.Config
	if cfg.Language != "es" || cfg.Case != alphabet.Upper {
		t.Errorf("language/case = %q/%q", cfg.Language, cfg.Case)
	}
	if want := (wordsearch.Size{Width: 12, Height: wordsearch.DefaultSize}); cfg.Size != want {
		t.Errorf("size = %v, want %v", cfg.Size, want)
	}
	if got := strings.Join(cfg.Words, ","); got != "gato:cat,perro" {
		t.Errorf("words = %q", got)
	}
	if cfg.RandomSubset != 1 || cfg.Title != "Animales" {
		t.Errorf("subset/title = %d/%q", cfg.RandomSubset, cfg.Title)
	}
	if opts.Seed != 9 || opts.MaxAttempts != 5 {
		t.Errorf("seed/attempts = %d/%d", opts.Seed, opts.MaxAttempts)
	}
	if opts.Weights[wordsearch.Horizontal] != 3 {
		t.Errorf("weights = %v", opts.Weights)
	}
}

func TestPuzzleFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "puzzle.toml")
	content := "language = \"de\"\nsize = 6\nwords = [\"hund\"]\ntitle = \"Tiere\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := parsePuzzleFlags(t, "--config", path, "-s", "9", "-w", "katze")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	cfg := opts.Config
	if cfg.Language != "de" || cfg.Title != "Tiere" {
		t.Errorf("config values lost: %+v", cfg)
	}
	if cfg.Size != wordsearch.Square(9) {
		t.Errorf("size = %v, want 9x9", cfg.Size)
	}
	if got := strings.Join(cfg.Words, ","); got != "hund,katze" {
		t.Errorf("words = %q", got)
	}
}

func TestPuzzleFlagsWordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("cat;feline\ndog\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := parsePuzzleFlags(t, "--words-file", path, "-d", ";")
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if got := strings.Join(opts.Config.Words, ","); got != "cat;feline,dog;dog" {
		t.Errorf("words = %q", got)
	}
}

func TestPuzzleFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"bad case", []string{"-c", "title"}, errors.ErrCodeUnsupportedCase},
		{"bad weights", []string{"--weights", "sideways=1"}, errors.ErrCodeInvalidInput},
		{"zero attempts", []string{"--attempts", "0"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"--config", "/nonexistent/puzzle.json"}, errors.ErrCodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePuzzleFlags(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateCommand(t *testing.T) {
	outDir := t.TempDir() + string(os.PathSeparator)

	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"generate", "-w", "cat:feline", "-w", "dog", "-s", "8",
		"--seed", "3", "--title", "Pets", "-o", outDir})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	printed := out.String()
	for _, want := range []string{"Pets", "feline", "dog"} {
		if !strings.Contains(printed, want) {
			t.Errorf("output missing %q:\n%s", want, printed)
		}
	}

	matches, _ := filepath.Glob(filepath.Join(outDir, "wordsearch-*.json"))
	if len(matches) != 1 {
		t.Fatalf("exported files = %v, want one", matches)
	}
	cfg, err := wsio.ImportConfig(matches[0])
	if err != nil {
		t.Fatalf("ImportConfig: %v", err)
	}
	if cfg.Size != wordsearch.Square(8) || cfg.Title != "Pets" {
		t.Errorf("exported config = %+v", cfg)
	}
	if got := strings.Join(cfg.Words, ","); got != "cat:feline,dog:dog" {
		t.Errorf("exported words = %q", got)
	}
}

func TestExportPath(t *testing.T) {
	dir := t.TempDir()

	if path, id := exportPath(filepath.Join(dir, "p.toml")); id != "" || path != filepath.Join(dir, "p.toml") {
		t.Errorf("file path rewritten: %q %q", path, id)
	}
	path, id := exportPath(dir)
	if id == "" || filepath.Dir(path) != dir || !strings.HasSuffix(path, ".json") {
		t.Errorf("directory export path = %q (id %q)", path, id)
	}
}

func TestAlphabetsCommand(t *testing.T) {
	c := New(&bytes.Buffer{}, log.InfoLevel)
	cmd := c.RootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"alphabets"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("alphabets: %v", err)
	}
	for _, code := range []string{"en", "es", "ru", "ko"} {
		if !strings.Contains(out.String(), code) {
			t.Errorf("table missing %q", code)
		}
	}
}
