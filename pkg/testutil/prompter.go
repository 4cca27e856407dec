package testutil

import (
	"io"
	"strings"

	"nixup/pkg/ui"
)

// ScriptedPrompter returns a console prompter fed by the given input
// lines, writing prompt text to out. Each line answers one prompt in
// order.
func ScriptedPrompter(out io.Writer, lines ...string) *ui.ConsolePrompter {
	input := strings.Join(lines, "\n")
	if input != "" {
		input += "\n"
	}
	return ui.NewConsolePrompter(strings.NewReader(input), out)
}
