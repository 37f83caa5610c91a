package hostruntime

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Satisfies reports whether the snapshot's version matches a semantic
// version constraint (e.g. ">= 18", "^1.1"). Browser versions with four
// dotted segments are truncated to three before parsing. An unknown or
// unparseable version is an error, not a non-match.
func (s Snapshot) Satisfies(constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	if s.Version == VersionUnknown || s.Version == "" {
		return false, fmt.Errorf("runtime %s has no known version", s.Name)
	}
	v, err := parseVersion(s.Version)
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

func parseVersion(raw string) (*semver.Version, error) {
	trimmed := strings.TrimPrefix(raw, "v")
	v, err := semver.NewVersion(trimmed)
	if err == nil {
		return v, nil
	}
	// Chromium-family browsers report four segments (e.g. 91.0.4472.124).
	if parts := strings.Split(trimmed, "."); len(parts) > 3 {
		if v, retryErr := semver.NewVersion(strings.Join(parts[:3], ".")); retryErr == nil {
			return v, nil
		}
	}
	return nil, fmt.Errorf("invalid version %q: %w", raw, err)
}
