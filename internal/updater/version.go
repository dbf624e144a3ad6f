package updater

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrMalformedVersion is returned when a version string is not valid semver.
var ErrMalformedVersion = errors.New("malformed version")

// CompareVersions compares two version strings using semver precedence.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// A single leading "v" is tolerated; everything else must be strict
// MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
func CompareVersions(current, latest string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	lv, err := parseSemver(latest)
	if err != nil {
		return 0, fmt.Errorf("parsing latest version %q: %w", latest, err)
	}
	return cv.Compare(lv), nil
}

// IsNewer returns true if latest is strictly greater than current.
// Build metadata does not take part in the ordering.
func IsNewer(current, latest string) (bool, error) {
	cmp, err := CompareVersions(current, latest)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

// parseSemver strips a leading "v" and parses the version string strictly.
func parseSemver(version string) (*semver.Version, error) {
	v, err := semver.StrictNewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedVersion, err)
	}
	return v, nil
}
