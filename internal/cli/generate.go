package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	wsio "github.com/matzehuels/wordsearch/pkg/io"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// generateCommand creates the generate command for building and printing a puzzle.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags   puzzleFlags
		answers bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a word-search puzzle",
		Long: `Generate a word-search puzzle and print its grid and clues.

Words are given with --word (repeatable), --words-file or a config file.
Each entry is a word optionally followed by the delimiter and a clue.
Use -o to save the puzzle configuration for later reuse.`,
		Example: `  wordsearch generate -w cat -w dog -s 8
  wordsearch generate -l es -c upper -w "gato:cat" -w "perro:dog" --answers
  wordsearch generate --config puzzle.toml -o out/`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			gen, err := c.buildPuzzle(cmd.Context(), opts, false)
			if err != nil {
				return err
			}

			writePuzzle(cmd.OutOrStdout(), gen, answers)

			if output == "" {
				return nil
			}
			path, id := exportPath(output)
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := wsio.ExportConfig(gen.ExportConfig(), path); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("puzzle exported", "id", id, "path", path)
			printSuccess("Saved puzzle config")
			printFile(path)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&answers, "answers", false, "highlight the hidden words in the grid")
	cmd.Flags().StringVarP(&output, "output", "o", "", "save the puzzle config (.json or .toml file, or a directory)")
	registerPuzzleCompletions(cmd)

	return cmd
}

// exportPath maps -o to a file path. An existing directory, or a path
// ending in a separator, receives a fresh wordsearch-<id>.json.
func exportPath(output string) (path, id string) {
	isDir := output[len(output)-1] == os.PathSeparator || output[len(output)-1] == '/'
	if !isDir {
		if info, err := os.Stat(output); err == nil && info.IsDir() {
			isDir = true
		}
	}
	if !isDir {
		return output, ""
	}
	id = uuid.NewString()
	return filepath.Join(output, "wordsearch-"+id+".json"), id
}

// writePuzzle prints the title, grid and clue list.
func writePuzzle(w io.Writer, gen *wordsearch.Generator, answers bool) {
	if gen.Title() != "" {
		fmt.Fprintln(w, StyleTitle.Render(gen.Title()))
		fmt.Fprintln(w)
	}

	style := func(wordsearch.Point) lipgloss.Style { return styleCell }
	if answers {
		hits := answerCells(gen)
		style = func(p wordsearch.Point) lipgloss.Style {
			if hits[p] {
				return styleAnswer
			}
			return StyleDim
		}
	}
	fmt.Fprintln(w, renderGrid(gen, style))

	if len(gen.Words()) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, renderClues(gen, answers, nil))
	}
}
