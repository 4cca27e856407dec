package filesystem

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"

	"nixup/pkg/errors"
	"nixup/pkg/types"
)

// WriteFileAtomic writes data to path by writing a sibling temp file and
// renaming it into place. A forcibly interrupted run leaves either the
// old content or the new content at path, never a partial write.
func WriteFileAtomic(fsys types.FS, path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir)
	}

	tmp := path + ".tmp"
	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write temp file %s", tmp)
	}

	if err := fsys.Rename(tmp, path); err != nil {
		// Best-effort cleanup of the orphaned temp file
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to move %s into place", path)
	}

	return nil
}

// CopyFile copies src to dst and verifies the written content matches
// the source before returning. Callers rely on this verification when
// dst is a backup that must be intact before the original is replaced.
func CopyFile(fsys types.FS, src, dst string, perm fs.FileMode) error {
	data, err := fsys.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read %s", src)
	}

	if err := fsys.WriteFile(dst, data, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dst)
	}

	written, err := fsys.ReadFile(dst)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to read back %s", dst)
	}
	if !bytes.Equal(data, written) {
		return errors.New(errors.ErrFileWrite,
			fmt.Sprintf("content mismatch after copying %s to %s", src, dst))
	}

	return nil
}

// Exists reports whether path exists on fsys.
func Exists(fsys types.FS, path string) bool {
	_, err := fsys.Stat(path)
	return err == nil
}
