package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordsearch/pkg/alphabet"
	"github.com/matzehuels/wordsearch/pkg/wordsearch"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for wordsearch.

To load completions:

Bash:
  $ source <(wordsearch completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ wordsearch completion bash > /etc/bash_completion.d/wordsearch
  # macOS:
  $ wordsearch completion bash > $(brew --prefix)/etc/bash_completion.d/wordsearch

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ wordsearch completion zsh > "${fpath[1]}/_wordsearch"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ wordsearch completion fish | source

  # To load completions for each session, execute once:
  $ wordsearch completion fish > ~/.config/fish/completions/wordsearch.fish

PowerShell:
  PS> wordsearch completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> wordsearch completion powershell > wordsearch.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}

	return cmd
}

// registerPuzzleCompletions adds value completion for the puzzle flags that
// take a fixed vocabulary.
func registerPuzzleCompletions(cmd *cobra.Command) {
	_ = cmd.RegisterFlagCompletionFunc("language", completeLanguages)
	_ = cmd.RegisterFlagCompletionFunc("case", cobra.FixedCompletions(
		[]string{string(alphabet.Lower), string(alphabet.Upper)}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("weights", completeWeights)
	_ = cmd.RegisterFlagCompletionFunc("config", cobra.FixedCompletions(
		[]string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt))
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(
		[]string{"json", "toml"}, cobra.ShellCompDirectiveFilterFileExt))
}

// completeLanguages lists the language codes of the built-in catalog.
func completeLanguages(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	infos, err := alphabet.Builtin().Languages(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	var codes []string
	for _, info := range infos {
		if strings.HasPrefix(info.Code, strings.ToLower(toComplete)) {
			codes = append(codes, info.Code+"\t"+info.Comment)
		}
	}
	return codes, cobra.ShellCompDirectiveNoFileComp
}

// completeWeights offers "<direction>=" for the next entry of --weights.
func completeWeights(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	prefix := ""
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		prefix = toComplete[:i+1]
	}
	var out []string
	for _, d := range wordsearch.Directions {
		out = append(out, prefix+d.String()+"=")
	}
	return out, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
}
