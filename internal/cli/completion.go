package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand prints shell completion scripts.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Print a shell completion script",
		Long: `Print a shell completion script for meshviz to stdout.

Besides subcommands and flags, the scripts complete values for
"meshviz render": --type offers rings and nodelink, and --format
completes one format at a time inside a comma-separated list
(svg,png,pdf,json,dot).

Try it in the current shell:

  bash:        source <(meshviz completion bash)
  zsh:         source <(meshviz completion zsh)
  fish:        meshviz completion fish | source
  powershell:  meshviz completion powershell | Out-String | Invoke-Expression

To install permanently, write the script where your shell looks for
completions, for example:

  meshviz completion bash > ~/.local/share/bash-completion/completions/meshviz
  meshviz completion zsh  > "${fpath[1]}/_meshviz"
  meshviz completion fish > ~/.config/fish/completions/meshviz.fish

zsh needs "autoload -U compinit; compinit" in ~/.zshrc if completion is
not already enabled.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return cmd.Root().GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}

	return cmd
}
