package direnv_test

import (
	"testing"

	"nixup/pkg/direnv"
	"nixup/pkg/filesystem"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarker(t *testing.T) {
	assert.Equal(t, "use flake .#minimal\n", direnv.Marker(".", "minimal"))
	assert.Equal(t, "use flake ~/dotfiles#go\n", direnv.Marker("~/dotfiles", "go"))
}

func TestWriteMarker(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())

	path, err := direnv.WriteMarker(fsys, "/work/project", ".", "full")
	require.NoError(t, err)
	assert.Equal(t, "/work/project/.envrc", path)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "use flake .#full\n", string(data))
}

func TestWriteMarker_OverwritesExisting(t *testing.T) {
	fsys := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fsys.MkdirAll("/work/project", 0755))
	require.NoError(t, fsys.WriteFile("/work/project/.envrc", []byte("use flake .#minimal\n"), 0644))

	_, err := direnv.WriteMarker(fsys, "/work/project", ".", "rust")
	require.NoError(t, err)

	data, err := fsys.ReadFile("/work/project/.envrc")
	require.NoError(t, err)
	assert.Equal(t, "use flake .#rust\n", string(data))
}
