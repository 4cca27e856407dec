// Package profiles defines the fixed set of installation profiles the
// operator chooses from. The set is compiled into the binary; profiles
// are never created or destroyed at runtime.
package profiles

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"nixup/pkg/errors"
	"nixup/pkg/types"
)

//go:embed profiles.toml
var manifest []byte

type registry struct {
	Profiles []types.Profile `toml:"profiles"`
}

var profiles []types.Profile

func init() {
	var reg registry
	if err := toml.Unmarshal(manifest, &reg); err != nil {
		// The manifest is compiled in; failing to parse it is a build
		// defect, not a runtime condition.
		panic(fmt.Sprintf("profiles: invalid embedded manifest: %v", err))
	}
	profiles = reg.Profiles
}

// All returns every profile in stable menu order.
func All() []types.Profile {
	out := make([]types.Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Lookup returns the profile with the given identifier.
func Lookup(id string) (types.Profile, error) {
	for _, p := range profiles {
		if p.ID == id {
			return p, nil
		}
	}
	return types.Profile{}, errors.Newf(errors.ErrProfileInvalid, "unknown profile %q", id)
}

// Invocation returns the flake installable string for a profile,
// e.g. ".#minimal" for the default flake ref.
func Invocation(flakeRef string, p types.Profile) string {
	return fmt.Sprintf("%s#%s", flakeRef, p.Target)
}
