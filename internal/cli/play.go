package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playCommand creates the play command, an interactive solver for a freshly
// generated puzzle.
func (c *CLI) playCommand() *cobra.Command {
	var flags puzzleFlags

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Solve a generated puzzle interactively",
		Long: `Generate a puzzle and solve it in the terminal.

Move with the arrow keys or h/j/k/l, mark the first and last letter of a
word with space or enter, press ? to reveal the answers and q to quit.`,
		Example: `  wordsearch play -w cat -w dog -w bird -s 8
  wordsearch play --config puzzle.toml`,
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
			if len(gen.Words()) == 0 {
				printWarning("No words were placed; nothing to find")
				return nil
			}

			p := tea.NewProgram(NewPuzzleModel(gen), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			m := final.(PuzzleModel)
			if m.Solved() {
				printSuccess("Solved all %d words", len(m.Found))
			} else {
				printInfo("Found %d of %d words", len(m.Found), len(gen.Words()))
			}
			return nil
		},
	}

	flags.register(cmd)
	registerPuzzleCompletions(cmd)

	return cmd
}
