// Package direnv wires automatic environment activation for a working
// directory by writing a one-line .envrc marker and, when direnv is
// available, approving it. direnv refuses to act on a marker the
// operator has not trusted, hence the allow step.
package direnv

import (
	"context"
	"fmt"

	"nixup/pkg/filesystem"
	"nixup/pkg/logging"
	"nixup/pkg/paths"
	"nixup/pkg/types"
)

// Marker returns the .envrc line for a profile.
func Marker(flakeRef, target string) string {
	return fmt.Sprintf("use flake %s#%s\n", flakeRef, target)
}

// WriteMarker writes the .envrc marker for dir atomically.
func WriteMarker(fsys types.FS, dir, flakeRef, target string) (string, error) {
	markerPath := paths.EnvrcPath(dir)
	if err := filesystem.WriteFileAtomic(fsys, markerPath, []byte(Marker(flakeRef, target)), 0644); err != nil {
		return "", err
	}

	logger := logging.GetLogger("direnv")
	logger.Info().
		Str("path", markerPath).
		Str("target", target).
		Msg("Wrote activation marker")
	return markerPath, nil
}

// Allow approves the marker in dir so direnv will auto-load it.
func Allow(ctx context.Context, runner types.Runner, dir string) error {
	return runner.Run(ctx, "direnv", "allow", dir)
}
