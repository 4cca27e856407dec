package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nixup/pkg/shellenv"
)

func newSnippetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snippet",
		Short: "Print the alias snippet for your shell rc",
		Long: `Snippet prints the alias definitions the environment provides as a
POSIX shell fragment. Add this to your shell rc:

  eval "$(nixup snippet)"`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprint(cmd.OutOrStdout(), shellenv.Default().Snippet())
		},
	}
}
