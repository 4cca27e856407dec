package cli

import (
	"github.com/spf13/cobra"

	"nixup/pkg/summary"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the environment command and alias reference",
		Run: func(cmd *cobra.Command, args []string) {
			summary.Render(cmd.OutOrStdout())
		},
	}
}
