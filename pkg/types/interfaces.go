package types

import (
	"context"
	"io/fs"
)

// FS is the filesystem interface required for nixup operations.
// The OS implementation lives in pkg/filesystem; tests use an
// afero-backed implementation.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error

	// Lstat can fall back to Stat on filesystems without symlink support
	Lstat(name string) (fs.FileInfo, error)
}

// Runner executes external commands. Every provisioning stage that
// delegates to an external tool (nix, home-manager, direnv) goes through
// this interface so tests can record invocations instead of spawning
// processes.
type Runner interface {
	// LookPath reports where name resolves on the search path.
	// A non-nil error means the tool is absent.
	LookPath(name string) (string, error)

	// Run executes name with args, streaming stdout/stderr to the
	// operator. The returned error wraps a non-zero exit code.
	Run(ctx context.Context, name string, args ...string) error

	// RunSilent executes name with args, discarding output. Used for
	// probes where the operator does not need to see the tool's output.
	RunSilent(ctx context.Context, name string, args ...string) error
}

// Prompter drives the interactive workflow. The console implementation
// reads from an injected reader so tests can script operator input.
type Prompter interface {
	// Confirm asks a yes/no question. An empty answer selects def.
	Confirm(prompt string, def bool) (bool, error)

	// Select presents a numbered menu and returns the chosen index.
	// A selection outside [0, len(options)) is an error, not a retry.
	Select(prompt string, options []string) (int, error)

	// Input reads a single free-text line.
	Input(prompt string) (string, error)
}
