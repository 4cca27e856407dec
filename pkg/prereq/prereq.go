// Package prereq implements the prerequisite stage: read-only probes for
// required tools and the idempotent remediation that enables the nix
// flakes feature.
package prereq

import (
	"strings"

	"nixup/pkg/errors"
	"nixup/pkg/filesystem"
	"nixup/pkg/logging"
	"nixup/pkg/types"
)

// FlakesDirective is the nix.conf line enabling the flakes feature.
const FlakesDirective = "experimental-features = nix-command flakes"

// NixInstallHint is the operator-facing remediation for a missing nix.
const NixInstallHint = "install nix first: https://nixos.org/download (e.g. `sh <(curl -L https://nixos.org/nix/install) --daemon`)"

// CheckTool probes the search path for name. The probe is read-only and
// has no side effects.
func CheckTool(runner types.Runner, name string) types.PrerequisiteCheck {
	path, err := runner.LookPath(name)
	if err != nil {
		return types.PrerequisiteCheck{Tool: name, State: types.PrerequisiteAbsent}
	}
	return types.PrerequisiteCheck{Tool: name, State: types.PrerequisitePresent, Path: path}
}

// EnsureDirective returns content with directive present exactly once.
// It is a pure function: when any line of content already equals the
// directive (ignoring surrounding whitespace), content is returned
// unchanged and changed is false. Otherwise the directive is appended on
// its own line. Running the remediation repeatedly therefore never
// duplicates configuration lines.
func EnsureDirective(content, directive string) (newContent string, changed bool) {
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == directive {
			return content, false
		}
	}

	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	return content + directive + "\n", true
}

// EnableFlakes idempotently ensures the flakes directive is present in
// the nix configuration file at nixConfPath, creating parent directories
// as needed. It reports whether the file was modified.
func EnableFlakes(fsys types.FS, nixConfPath string) (bool, error) {
	logger := logging.GetLogger("prereq")

	var content string
	if data, err := fsys.ReadFile(nixConfPath); err == nil {
		content = string(data)
	}

	newContent, changed := EnsureDirective(content, FlakesDirective)
	if !changed {
		logger.Debug().Str("path", nixConfPath).Msg("Flakes directive already present")
		return false, nil
	}

	if err := filesystem.WriteFileAtomic(fsys, nixConfPath, []byte(newContent), 0644); err != nil {
		return false, errors.Wrapf(err, errors.ErrFlakesEnable,
			"failed to enable flakes in %s", nixConfPath)
	}

	logger.Info().Str("path", nixConfPath).Msg("Enabled nix flakes")
	return true, nil
}
