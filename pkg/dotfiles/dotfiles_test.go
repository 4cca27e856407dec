package dotfiles_test

import (
	"io/fs"
	"strings"
	"testing"

	"nixup/pkg/dotfiles"
	"nixup/pkg/errors"
	"nixup/pkg/filesystem"
	"nixup/pkg/types"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingFS wraps a types.FS and fails writes to paths with a given
// suffix, used to simulate a backup copy failure.
type failingFS struct {
	types.FS
	failSuffix string
}

func (f *failingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if strings.HasSuffix(name, f.failSuffix) {
		return assert.AnError
	}
	return f.FS.WriteFile(name, data, perm)
}

func memFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

func TestContent(t *testing.T) {
	data, err := dotfiles.Content("vimrc")
	require.NoError(t, err)
	assert.Contains(t, string(data), "set number")

	_, err = dotfiles.Content("no-such-template")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestSources(t *testing.T) {
	sources, err := dotfiles.Sources()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"vimrc", "tmux.conf", "gitignore_global"}, sources)
}

func TestInstall_FreshDestination(t *testing.T) {
	fsys := memFS()
	entries := []types.DotfileEntry{{Source: "vimrc", Target: ".vimrc"}}

	results := dotfiles.Install(fsys, entries, "/home/u", ".backup")

	require.Len(t, results, 1)
	assert.True(t, results[0].Installed)
	assert.Empty(t, results[0].BackupPath, "no backup for a destination that did not pre-exist")
	assert.False(t, filesystem.Exists(fsys, "/home/u/.vimrc.backup"))

	data, err := fsys.ReadFile("/home/u/.vimrc")
	require.NoError(t, err)
	assert.Contains(t, string(data), "set number")
}

func TestInstall_BackupThenOverwrite(t *testing.T) {
	fsys := memFS()
	require.NoError(t, fsys.MkdirAll("/home/u", 0755))
	require.NoError(t, fsys.WriteFile("/home/u/.vimrc", []byte("OLDCONTENT"), 0644))

	entries := []types.DotfileEntry{{Source: "vimrc", Target: ".vimrc"}}
	results := dotfiles.Install(fsys, entries, "/home/u", ".backup")

	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.True(t, results[0].Installed)
	assert.Equal(t, "/home/u/.vimrc.backup", results[0].BackupPath)

	backup, err := fsys.ReadFile("/home/u/.vimrc.backup")
	require.NoError(t, err)
	assert.Equal(t, "OLDCONTENT", string(backup), "backup holds the pre-run content")

	installed, err := fsys.ReadFile("/home/u/.vimrc")
	require.NoError(t, err)
	assert.Contains(t, string(installed), "set number", "destination holds the bundled content")
}

func TestInstall_BackupFailureLeavesDestinationUnchanged(t *testing.T) {
	inner := memFS()
	require.NoError(t, inner.MkdirAll("/home/u", 0755))
	require.NoError(t, inner.WriteFile("/home/u/.vimrc", []byte("OLDCONTENT"), 0644))
	fsys := &failingFS{FS: inner, failSuffix: ".backup"}

	entries := []types.DotfileEntry{{Source: "vimrc", Target: ".vimrc"}}
	results := dotfiles.Install(fsys, entries, "/home/u", ".backup")

	require.Len(t, results, 1)
	assert.False(t, results[0].Installed)
	require.Error(t, results[0].Err)
	assert.True(t, errors.IsErrorCode(results[0].Err, errors.ErrBackupFailed))

	data, err := inner.ReadFile("/home/u/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "OLDCONTENT", string(data), "no partial overwrite after a failed backup")
}

func TestInstall_MultipleEntries(t *testing.T) {
	fsys := memFS()
	require.NoError(t, fsys.MkdirAll("/home/u", 0755))
	require.NoError(t, fsys.WriteFile("/home/u/.tmux.conf", []byte("old tmux"), 0644))

	entries := []types.DotfileEntry{
		{Source: "vimrc", Target: ".vimrc"},
		{Source: "tmux.conf", Target: ".tmux.conf"},
		{Source: "gitignore_global", Target: ".gitignore_global"},
	}
	results := dotfiles.Install(fsys, entries, "/home/u", ".backup")

	require.Len(t, results, 3)
	for _, r := range results {
		assert.True(t, r.Installed, "entry %s", r.Target)
	}

	// Only the pre-existing file was backed up
	assert.False(t, filesystem.Exists(fsys, "/home/u/.vimrc.backup"))
	assert.True(t, filesystem.Exists(fsys, "/home/u/.tmux.conf.backup"))
	assert.Empty(t, dotfiles.Failed(results))
}

func TestInstall_UnknownSourceIsReported(t *testing.T) {
	fsys := memFS()
	entries := []types.DotfileEntry{{Source: "bogus", Target: ".bogus"}}

	results := dotfiles.Install(fsys, entries, "/home/u", ".backup")

	require.Len(t, results, 1)
	assert.False(t, results[0].Installed)
	assert.Error(t, results[0].Err)
	require.Len(t, dotfiles.Failed(results), 1)
}
