package cli

import (
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var completionGenerators = map[string]func(root *cobra.Command, out io.Writer) error{
	"bash": func(root *cobra.Command, out io.Writer) error {
		return root.GenBashCompletion(out)
	},
	"zsh": func(root *cobra.Command, out io.Writer) error {
		return root.GenZshCompletion(out)
	},
	"fish": func(root *cobra.Command, out io.Writer) error {
		return root.GenFishCompletion(out, true)
	},
	"powershell": func(root *cobra.Command, out io.Writer) error {
		return root.GenPowerShellCompletion(out)
	},
}

func CompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Prints a completion script for usersvc to stdout.

  $ source <(usersvc completion bash)
  $ usersvc completion zsh > "${fpath[1]}/_usersvc"
  $ usersvc completion fish | source
  PS> usersvc completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generate, ok := completionGenerators[args[0]]
			if !ok {
				return errors.Errorf("unsupported shell %q", args[0])
			}
			if err := generate(cmd.Root(), cmd.OutOrStdout()); err != nil {
				return errors.Wrapf(err, "failed to generate %s completion", args[0])
			}
			return nil
		},
	}
}
