package cli

import (
	"github.com/spf13/cobra"

	"nixup/pkg/config"
	"nixup/pkg/execx"
	"nixup/pkg/provision"
	"nixup/pkg/ui"
)

func newProvisionCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Run the interactive provisioning workflow",
		Long: `Provision walks the full workflow: prerequisite checks, profile
selection and activation, optional identity configuration, optional
dotfile installation with backups, and optional direnv auto-activation.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Walk the prompts without changing anything")
	return cmd
}

func runProvision(cmd *cobra.Command, dryRun bool) error {
	settings, err := config.Load()
	if err != nil {
		return err
	}

	runner := execx.New(execx.Options{Timeout: settings.CommandTimeout})
	prompter := ui.NewConsolePrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	p, err := provision.New(provision.Options{
		Settings: settings,
		Runner:   runner,
		Prompter: prompter,
		Out:      cmd.OutOrStdout(),
		DryRun:   dryRun,
	})
	if err != nil {
		return err
	}

	_, err = p.Run(cmd.Context())
	return err
}
