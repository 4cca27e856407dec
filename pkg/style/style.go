package style

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
)

// Status types for stage reporting
type Status string

const (
	StatusInfo    Status = "info"    // Stage is about to act
	StatusSuccess Status = "success" // Stage outcome was good
	StatusWarning Status = "warning" // Degraded but not fatal
	StatusError   Status = "error"   // Fatal outcome
)

// statusLabels are the fixed-width markers prefixed to every stage line
var statusLabels = map[Status]string{
	StatusInfo:    "  ..",
	StatusSuccess: "  ok",
	StatusWarning: "warn",
	StatusError:   " err",
}

// StatusStyle returns the appropriate pterm style for a status
func StatusStyle(status Status) *pterm.Style {
	switch status {
	case StatusSuccess:
		return pterm.NewStyle(pterm.FgGreen)
	case StatusWarning:
		return pterm.NewStyle(pterm.FgYellow)
	case StatusError:
		return pterm.NewStyle(pterm.FgRed, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgCyan)
	}
}

// RenderStatus renders one audit-trail line for a stage event. Styling
// is applied only when writing to a terminal.
func RenderStatus(status Status, msg string) string {
	label := statusLabels[status]
	if label == "" {
		label = "  .."
	}
	if isTerminal() {
		label = StatusStyle(status).Sprint(label)
	}
	return fmt.Sprintf("%s  %s", label, msg)
}

// Fprintln writes one rendered status line to w.
func Fprintln(w io.Writer, status Status, msg string) {
	fmt.Fprintln(w, RenderStatus(status, msg))
}

// Bold returns s bold when stdout is a terminal, unchanged otherwise.
func Bold(s string) string {
	if !isTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
