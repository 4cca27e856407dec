// Package cli builds the cobra command tree for nixup.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"nixup/internal/version"
	"nixup/pkg/logging"
	"nixup/pkg/style"
)

// NewRootCmd creates and returns the root command. Running nixup with
// no subcommand starts the interactive provisioning workflow.
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		dryRun    bool
	)

	rootCmd := &cobra.Command{
		Use:   "nixup",
		Short: "Interactive bootstrap for a nix-based development environment",
		Long: `nixup provisions a consistent development environment: it verifies nix
is installed, enables flakes, activates a chosen package profile,
personalizes the home-manager configuration, installs dotfiles with
backups, and wires direnv auto-activation.

Every step is idempotent; re-running nixup is always safe.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProvision(cmd, dryRun)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Walk the prompts without changing anything")

	rootCmd.AddCommand(newProvisionCmd())
	rootCmd.AddCommand(newProfilesCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newSnippetCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command, mapping any error to a non-zero exit.
func Execute() {
	rootCmd := NewRootCmd()

	// An interrupt cancels in-flight external commands; file writes are
	// atomic, so a cancelled run never leaves a half-written dotfile.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		style.Fprintln(os.Stderr, style.StatusError, err.Error())
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("nixup version %s\n", version.Version)
			fmt.Printf("  commit: %s\n", version.Commit)
			fmt.Printf("  built:  %s\n", version.Date)
		},
	}
}
