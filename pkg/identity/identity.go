// Package identity rewrites the identity placeholders in the
// home-manager configuration and re-applies it. Substitution and apply
// are deliberately not transactional: a failed apply does not undo the
// substitution.
package identity

import (
	"context"
	"strings"

	"nixup/pkg/errors"
	"nixup/pkg/filesystem"
	"nixup/pkg/logging"
	"nixup/pkg/types"
)

// The placeholder tokens the bundled home-manager configuration ships
// with. Substitution targets these exact strings; if a token is absent
// (the file was already personalized) the field is left unchanged.
const (
	NamePlaceholder  = "Your Name"
	EmailPlaceholder = "your.email@example.com"
)

// ReplacePlaceholders substitutes both identity tokens in content and
// returns the new content plus the number of tokens replaced. It is a
// pure function; zero replacements is a silent no-op by design.
func ReplacePlaceholders(content, name, email string) (string, int) {
	replaced := 0
	if strings.Contains(content, NamePlaceholder) {
		content = strings.ReplaceAll(content, NamePlaceholder, name)
		replaced++
	}
	if strings.Contains(content, EmailPlaceholder) {
		content = strings.ReplaceAll(content, EmailPlaceholder, email)
		replaced++
	}
	return content, replaced
}

// Personalize rewrites the identity placeholders in the configuration
// file at path. It returns the number of tokens replaced.
func Personalize(fsys types.FS, path, name, email string) (int, error) {
	logger := logging.GetLogger("identity")

	data, err := fsys.ReadFile(path)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrIdentityWrite,
			"failed to read configuration %s", path)
	}

	newContent, replaced := ReplacePlaceholders(string(data), name, email)
	if replaced == 0 {
		logger.Warn().Str("path", path).Msg("No identity placeholders found, leaving file unchanged")
		return 0, nil
	}

	if err := filesystem.WriteFileAtomic(fsys, path, []byte(newContent), 0644); err != nil {
		return 0, errors.Wrapf(err, errors.ErrIdentityWrite,
			"failed to write configuration %s", path)
	}

	logger.Info().Str("path", path).Int("replaced", replaced).Msg("Personalized configuration")
	return replaced, nil
}

// Apply re-applies the home-manager configuration for flakeRef. The
// caller treats a failure here as best-effort: the substitution already
// happened and is not rolled back.
func Apply(ctx context.Context, runner types.Runner, flakeRef string) error {
	if err := runner.Run(ctx, "home-manager", "switch", "--flake", flakeRef); err != nil {
		return errors.Wrap(err, errors.ErrApplyFailed, "home-manager switch failed")
	}
	return nil
}
