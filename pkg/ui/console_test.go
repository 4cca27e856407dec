package ui_test

import (
	"strings"
	"testing"

	"nixup/pkg/errors"
	"nixup/pkg/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "yes long form", input: "yes\n", want: true},
		{name: "no", input: "n\n", def: true, want: false},
		{name: "empty picks default false", input: "\n", def: false, want: false},
		{name: "empty picks default true", input: "\n", def: true, want: true},
		{name: "uppercase accepted", input: "Y\n", want: true},
		{name: "garbage is no", input: "maybe\n", def: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := ui.NewConsolePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Confirm("Install dotfiles?", tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Install dotfiles?")
		})
	}
}

func TestConfirm_DefaultMarker(t *testing.T) {
	var out strings.Builder
	p := ui.NewConsolePrompter(strings.NewReader("\n"), &out)

	_, err := p.Confirm("Proceed?", true)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "[Y/n]")
}

func TestSelect(t *testing.T) {
	options := []string{"full", "minimal", "go"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "first option", input: "1\n", want: 0},
		{name: "last option", input: "3\n", want: 2},
		{name: "zero is invalid", input: "0\n", wantErr: true},
		{name: "out of range", input: "4\n", wantErr: true},
		{name: "not a number", input: "full\n", wantErr: true},
		{name: "empty is invalid", input: "\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := ui.NewConsolePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Select("Choose a profile", options)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelect_RendersMenu(t *testing.T) {
	var out strings.Builder
	p := ui.NewConsolePrompter(strings.NewReader("2\n"), &out)

	_, err := p.Select("Choose a profile", []string{"full", "minimal"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "1) full")
	assert.Contains(t, out.String(), "2) minimal")
}

func TestInput(t *testing.T) {
	var out strings.Builder
	p := ui.NewConsolePrompter(strings.NewReader("Alice Example\n"), &out)

	got, err := p.Input("Display name")
	require.NoError(t, err)
	assert.Equal(t, "Alice Example", got)
}

func TestInput_EOF(t *testing.T) {
	var out strings.Builder
	p := ui.NewConsolePrompter(strings.NewReader(""), &out)

	_, err := p.Input("Display name")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPromptRead))
}

func TestInput_LastLineWithoutNewline(t *testing.T) {
	var out strings.Builder
	p := ui.NewConsolePrompter(strings.NewReader("alice@example.com"), &out)

	got, err := p.Input("Contact address")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", got)
}
