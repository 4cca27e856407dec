package identity_test

import (
	"testing"

	"nixup/pkg/filesystem"
	"nixup/pkg/identity"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleHomeNix = `{ config, pkgs, ... }:
{
  programs.git = {
    enable = true;
    userName = "Your Name";
    userEmail = "your.email@example.com";
  };
}
`

func TestReplacePlaceholders(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantReplaced int
		contains     []string
		notContains  []string
	}{
		{
			name:         "both tokens replaced",
			content:      sampleHomeNix,
			wantReplaced: 2,
			contains:     []string{`userName = "Alice Example"`, `userEmail = "alice@example.com"`},
			notContains:  []string{"Your Name", "your.email@example.com"},
		},
		{
			name:         "already personalized is a no-op",
			content:      `userName = "Bob";`,
			wantReplaced: 0,
			contains:     []string{`userName = "Bob";`},
		},
		{
			name:         "only name token present",
			content:      `userName = "Your Name";`,
			wantReplaced: 1,
			contains:     []string{`userName = "Alice Example";`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, replaced := identity.ReplacePlaceholders(tt.content, "Alice Example", "alice@example.com")
			assert.Equal(t, tt.wantReplaced, replaced)
			for _, s := range tt.contains {
				assert.Contains(t, got, s)
			}
			for _, s := range tt.notContains {
				assert.NotContains(t, got, s)
			}
		})
	}
}

func TestReplacePlaceholders_OnlyTokensChange(t *testing.T) {
	got, replaced := identity.ReplacePlaceholders(sampleHomeNix, "Alice Example", "alice@example.com")
	require.Equal(t, 2, replaced)

	// Everything except the two token lines is untouched.
	assert.Contains(t, got, "{ config, pkgs, ... }:")
	assert.Contains(t, got, "programs.git = {")
	assert.Contains(t, got, "enable = true;")
}

func TestPersonalize(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	path := "/flake/home.nix"
	require.NoError(t, fsys.WriteFile(path, []byte(sampleHomeNix), 0644))

	replaced, err := identity.Personalize(fsys, path, "Alice Example", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, replaced)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Alice Example")
	assert.Contains(t, string(data), "alice@example.com")
}

func TestPersonalize_NoPlaceholdersLeavesFileUntouched(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	path := "/flake/home.nix"
	original := `userName = "Already Set";`
	require.NoError(t, fsys.WriteFile(path, []byte(original), 0644))

	replaced, err := identity.Personalize(fsys, path, "Alice Example", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, 0, replaced)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, string(data))
}

func TestPersonalize_MissingFile(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	_, err := identity.Personalize(fsys, "/flake/home.nix", "Alice", "alice@example.com")
	assert.Error(t, err)
}
