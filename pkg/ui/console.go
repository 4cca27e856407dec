// Package ui provides the console implementation of types.Prompter.
// Input is read from an injected reader so the workflow can be driven by
// scripted input in tests without a real terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"nixup/pkg/errors"
	"nixup/pkg/style"
	"nixup/pkg/types"
)

// ConsolePrompter implements types.Prompter over a reader/writer pair.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter reading from in and writing to out.
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

var _ types.Prompter = (*ConsolePrompter)(nil)

// Confirm asks a yes/no question. An empty answer selects def.
func (p *ConsolePrompter) Confirm(prompt string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s: ", prompt, marker)

	line, err := p.readLine()
	if err != nil {
		return false, err
	}

	answer := strings.ToLower(line)
	if answer == "" {
		return def, nil
	}
	return answer == "y" || answer == "yes", nil
}

// Select presents a numbered menu and returns the chosen zero-based
// index. Anything that is not a number inside the menu range is an
// error; the workflow treats that as fatal rather than retrying.
func (p *ConsolePrompter) Select(prompt string, options []string) (int, error) {
	fmt.Fprintln(p.out, prompt)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt)
	}
	fmt.Fprintf(p.out, "Selection [1-%d]: ", len(options))

	line, err := p.readLine()
	if err != nil {
		return 0, err
	}

	n, convErr := strconv.Atoi(line)
	if convErr != nil || n < 1 || n > len(options) {
		return 0, errors.Newf(errors.ErrInvalidInput, "invalid selection %q", line)
	}
	return n - 1, nil
}

// Input reads a single free-text line.
func (p *ConsolePrompter) Input(prompt string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", style.Bold(prompt))

	return p.readLine()
}

func (p *ConsolePrompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, errors.ErrPromptRead, "failed to read operator input")
	}
	return strings.TrimSpace(line), nil
}
