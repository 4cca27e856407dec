package types

// Profile is a named package-set selection passed to the external
// package manager. Profiles are defined at build time and never change
// at runtime.
type Profile struct {
	// ID is the stable identifier, e.g. "minimal".
	ID string `toml:"id"`

	// Label is the human-readable menu entry.
	Label string `toml:"label"`

	// Target is the flake output fragment appended to the flake ref,
	// e.g. "minimal" yields the invocation ".#minimal".
	Target string `toml:"target"`

	// Description is a one-line summary shown next to the label.
	Description string `toml:"description"`
}

// DotfileEntry maps a bundled dotfile to its destination under the
// operator's home directory.
type DotfileEntry struct {
	// Source is the path of the bundled file inside the embedded set.
	Source string `koanf:"source" toml:"source"`

	// Target is the destination path relative to the home directory.
	Target string `koanf:"target" toml:"target"`
}

// BackupResult records what happened to a single dotfile destination
// during installation.
type BackupResult struct {
	// Target is the absolute destination path.
	Target string

	// BackupPath is the absolute backup path, empty when no backup was
	// needed (destination did not pre-exist).
	BackupPath string

	// Installed reports whether the bundled content reached the
	// destination. False means the backup step failed and the
	// destination was left untouched.
	Installed bool

	// Err holds the failure that stopped this entry, if any.
	Err error
}

// PrerequisiteState is the outcome of a tool probe.
type PrerequisiteState string

const (
	// PrerequisitePresent means the tool resolved on the search path.
	PrerequisitePresent PrerequisiteState = "present"
	// PrerequisiteAbsent means the tool did not resolve.
	PrerequisiteAbsent PrerequisiteState = "absent"
)

// PrerequisiteCheck is the result of probing one external tool.
type PrerequisiteCheck struct {
	Tool  string
	State PrerequisiteState
	Path  string
}

// Present reports whether the probed tool was found.
func (c PrerequisiteCheck) Present() bool {
	return c.State == PrerequisitePresent
}
