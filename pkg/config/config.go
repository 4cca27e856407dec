// Package config loads nixup settings by layering embedded defaults, an
// optional user configuration file, and NIXUP_-prefixed environment
// variables.
package config

import (
	"time"

	"nixup/pkg/types"
)

// Settings holds every user-tunable knob of the provisioner.
type Settings struct {
	// FlakeRef is the flake reference profiles are activated against.
	FlakeRef string `koanf:"flake_ref"`

	// BackupSuffix is appended to a pre-existing dotfile before it is
	// overwritten.
	BackupSuffix string `koanf:"backup_suffix"`

	// NixConfPath overrides the nix.conf location. Empty selects the
	// XDG default.
	NixConfPath string `koanf:"nix_conf_path"`

	// HomeManagerConfig is the path of the home-manager module that
	// carries the identity placeholders, relative to FlakeRef unless
	// absolute.
	HomeManagerConfig string `koanf:"home_manager_config"`

	// CommandTimeout bounds each external invocation. External tools
	// that hang would otherwise hang the whole run.
	CommandTimeout time.Duration `koanf:"command_timeout"`

	// Dotfiles is the bundled-file installation set.
	Dotfiles []types.DotfileEntry `koanf:"dotfiles"`
}
