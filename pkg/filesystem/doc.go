// Package filesystem provides implementations of the types.FS interface.
//
// Two implementations are available:
//   - NewOS() wraps the real OS filesystem
//   - NewAferoFS() wraps any afero.Fs, used with MemMapFs in tests
//
// The package also carries the write helpers every mutating stage goes
// through: WriteFileAtomic (temp file + rename, so an interrupted run
// never leaves a half-written destination) and CopyFile (content-verified
// copy used for backups).
package filesystem
