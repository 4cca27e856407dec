// Package dotfiles installs the bundled dotfiles with
// backup-before-overwrite semantics. The ordering contract is strict:
// a pre-existing destination is backed up and the backup verified before
// the destination is touched, so a failed backup never costs data.
package dotfiles

import (
	"embed"
	"path"
	"path/filepath"

	"nixup/pkg/errors"
	"nixup/pkg/filesystem"
	"nixup/pkg/logging"
	"nixup/pkg/types"
)

//go:embed templates
var bundled embed.FS

// Content returns the bundled content for a dotfile source name.
func Content(source string) ([]byte, error) {
	data, err := bundled.ReadFile(path.Join("templates", source))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileNotFound, "no bundled dotfile %q", source)
	}
	return data, nil
}

// Sources lists the bundled dotfile source names.
func Sources() ([]string, error) {
	entries, err := bundled.ReadDir("templates")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to read bundled templates")
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// Install places each bundled dotfile at its destination under homeDir.
// Per entry: when the destination already exists it is copied to
// destination+backupSuffix first, at most once per run, and the copy is
// verified before the overwrite. A failed backup leaves the destination
// untouched and is reported in the entry's BackupResult. The bundled
// content is written atomically.
func Install(fsys types.FS, entries []types.DotfileEntry, homeDir, backupSuffix string) []types.BackupResult {
	logger := logging.GetLogger("dotfiles")
	results := make([]types.BackupResult, 0, len(entries))
	backedUp := make(map[string]bool)

	for _, entry := range entries {
		target := filepath.Join(homeDir, entry.Target)
		result := types.BackupResult{Target: target}

		content, err := Content(entry.Source)
		if err != nil {
			result.Err = err
			results = append(results, result)
			continue
		}

		if filesystem.Exists(fsys, target) && !backedUp[target] {
			backupPath := target + backupSuffix
			if err := filesystem.CopyFile(fsys, target, backupPath, 0644); err != nil {
				// Never overwrite without a verified backup
				result.Err = errors.Wrapf(err, errors.ErrBackupFailed,
					"backup of %s failed, destination left unchanged", target)
				results = append(results, result)
				logger.Error().Err(err).Str("target", target).Msg("Backup failed, skipping install")
				continue
			}
			backedUp[target] = true
			result.BackupPath = backupPath
			logger.Info().Str("target", target).Str("backup", backupPath).Msg("Backed up existing file")
		}

		if err := filesystem.WriteFileAtomic(fsys, target, content, 0644); err != nil {
			result.Err = errors.Wrapf(err, errors.ErrInstallFailed,
				"failed to install %s", target)
			results = append(results, result)
			continue
		}

		result.Installed = true
		results = append(results, result)
		logger.Info().Str("source", entry.Source).Str("target", target).Msg("Installed dotfile")
	}

	return results
}

// Failed returns the subset of results that did not install.
func Failed(results []types.BackupResult) []types.BackupResult {
	var failed []types.BackupResult
	for _, r := range results {
		if !r.Installed {
			failed = append(failed, r)
		}
	}
	return failed
}
