// Package summary prints the final report of commands and aliases the
// provisioned environment provides. The report is derived from the
// static alias configuration in pkg/shellenv; printing it has no side
// effects and never fails the run.
package summary

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"

	"nixup/pkg/logging"
	"nixup/pkg/shellenv"
)

// nixCommands are the profile-management commands listed alongside the
// aliases. They are plain commands, not aliases, so they live here
// rather than in shellenv.
var nixCommands = []struct {
	Command     string
	Description string
}{
	{"nix develop .#<profile>", "enter a profile shell by hand"},
	{"nix flake update", "refresh pinned inputs"},
	{"home-manager switch --flake .", "re-apply the home configuration"},
	{"nixup snippet", "print the alias snippet for your shell rc"},
}

// Markdown builds the report from the alias configuration.
func Markdown() string {
	var b strings.Builder
	b.WriteString("# Your environment\n")

	for _, cat := range shellenv.Default().Categories {
		fmt.Fprintf(&b, "\n## %s\n\n", cat.Name)
		b.WriteString("| alias | runs |\n|-------|------|\n")
		for _, a := range cat.Aliases {
			fmt.Fprintf(&b, "| `%s` | `%s` |\n", a.Name, a.Command)
		}
	}

	b.WriteString("\n## Nix\n\n| command | does |\n|---------|------|\n")
	for _, c := range nixCommands {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c.Command, c.Description)
	}

	b.WriteString("\nRe-run `nixup` at any time; every step is safe to repeat.\n")
	return b.String()
}

// Render writes the report to w, rendered with glamour when stdout is a
// terminal and as plain markdown otherwise. Render errors degrade to
// the plain report rather than failing.
func Render(w io.Writer) {
	report := Markdown()
	if isTerminal() {
		out, err := glamour.Render(report, "auto")
		if err == nil {
			fmt.Fprint(w, out)
			return
		}
		logger := logging.GetLogger("summary")
		logger.Debug().Err(err).Msg("Falling back to plain summary")
	}
	fmt.Fprint(w, report)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
