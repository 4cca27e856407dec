// Package paths provides centralized path handling for nixup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for the filesystem locations the
// provisioner reads and writes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"nixup/pkg/errors"
)

// Environment variable names
const (
	// EnvNixConfPath overrides the nix.conf location
	EnvNixConfPath = "NIXUP_NIX_CONF"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// File and directory names
const (
	// AppDirName is the directory name for nixup-specific files
	AppDirName = "nixup"

	// UserConfigFile is the name of the optional user configuration file
	UserConfigFile = "config.toml"

	// NixConfFile is the nix configuration file name
	NixConfFile = "nix.conf"

	// EnvrcFile is the direnv marker file name
	EnvrcFile = ".envrc"

	// HomeManagerConfigFile is the home-manager module carrying the
	// identity placeholders
	HomeManagerConfigFile = "home.nix"
)

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME
// environment variable. If both fail, it returns an error rather than
// using dangerous defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv(EnvHome)
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME are available")
}

// ConfigDir returns the nixup configuration directory under XDG config home.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the nixup state directory under XDG state home.
func StateDir() string {
	return filepath.Join(xdg.StateHome, AppDirName)
}

// UserConfigPath returns the path of the optional user configuration file.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), UserConfigFile)
}

// NixConfPath returns the nix.conf path, honoring the NIXUP_NIX_CONF
// override used in tests and unusual installations.
func NixConfPath() string {
	if override := os.Getenv(EnvNixConfPath); override != "" {
		return override
	}
	return filepath.Join(xdg.ConfigHome, "nix", NixConfFile)
}

// EnvrcPath returns the direnv marker path for the given directory.
func EnvrcPath(dir string) string {
	return filepath.Join(dir, EnvrcFile)
}
