package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"nixup/pkg/profiles"
	"nixup/pkg/style"
)

func newProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the available installation profiles",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, p := range profiles.All() {
				fmt.Fprintf(out, "%-10s %s\n", style.Bold(p.ID), p.Description)
			}
		},
	}
}
