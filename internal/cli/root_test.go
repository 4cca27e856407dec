package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestProfilesCmd(t *testing.T) {
	out, err := execute(t, "profiles")
	require.NoError(t, err)

	for _, id := range []string{"full", "minimal", "go", "rust", "python"} {
		assert.Contains(t, out, id)
	}
}

func TestSummaryCmd(t *testing.T) {
	out, err := execute(t, "summary")
	require.NoError(t, err)

	assert.Contains(t, out, "nix develop")
	assert.Contains(t, out, "home-manager switch")
}

func TestSnippetCmd(t *testing.T) {
	out, err := execute(t, "snippet")
	require.NoError(t, err)

	assert.Contains(t, out, `alias gs="git status -sb"`)
}

func TestRootCmd_HasProvisionDefault(t *testing.T) {
	cmd := NewRootCmd()

	assert.NotNil(t, cmd.RunE, "bare nixup starts the workflow")
	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "provision")
	assert.Contains(t, names, "profiles")
	assert.Contains(t, names, "summary")
	assert.Contains(t, names, "snippet")
	assert.Contains(t, names, "version")
}
