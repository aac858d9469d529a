package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
)

// alphabetsCommand creates the alphabets command listing catalog languages.
func (c *CLI) alphabetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabets",
		Short: "List the languages of the alphabet catalog",
		Long: `List every language in the alphabet catalog with its letter cases,
number of code-point ranges and number of letters per case.

The catalog is the built-in one unless --alphabets points elsewhere.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, store, err := c.newCatalog()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, cancel := c.resolveContext(cmd.Context())
			defer cancel()

			infos, err := cat.Languages(ctx)
			if err != nil {
				return err
			}
			writeLanguages(cmd.OutOrStdout(), infos)
			return nil
		},
	}
}

// writeLanguages renders the language table.
func writeLanguages(w io.Writer, infos []alphabet.LanguageInfo) {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		cases := make([]string, len(info.Cases))
		letters := make([]string, len(info.Cases))
		for i, cs := range info.Cases {
			cases[i] = cs.String()
			letters[i] = strconv.Itoa(info.Letters[cs])
		}
		rows = append(rows, []string{
			info.Code,
			strings.Join(cases, ", "),
			strconv.Itoa(info.Ranges),
			strings.Join(letters, " / "),
			info.Comment,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Code", "Cases", "Ranges", "Letters", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle.Padding(0, 1)
			case col == 0:
				return StyleHighlight.Padding(0, 1)
			case col == 4:
				return StyleDim.Padding(0, 1)
			}
			return StyleValue.Padding(0, 1)
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d languages", len(infos))))
}
