package bumpversion

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrNoVersion is returned when no version argument was given.
	ErrNoVersion = errors.New("no version argument")
	// ErrVersionFormat is returned when the version does not split into exactly
	// three dot-separated components.
	ErrVersionFormat = errors.New("wrong version format(maj.min.patch)")
	// ErrNotSemver is returned in strict mode for versions x/mod/semver rejects.
	ErrNotSemver = errors.New("not valid semver")
)

// Version holds the three components of a version argument.
// Components are kept as the substrings the user typed; no arithmetic is done on them.
type Version struct {
	Major string
	Minor string
	Patch string
}

// ParseVersion splits s on "." and requires exactly three non-empty parts.
// Trailing empty fields are dropped before counting, so "1.2.3." is "1.2.3"
// while "1.2." and "1.." have two and one parts.
func ParseVersion(s string) (Version, error) {
	parts := strings.Split(s, ".")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != 3 {
		return Version{}, ErrVersionFormat
	}
	for _, p := range parts {
		// An empty field would be written as-is and no rule could match it again.
		if p == "" {
			return Version{}, ErrVersionFormat
		}
	}
	return Version{
		Major: parts[0],
		Minor: parts[1],
		Patch: parts[2],
	}, nil
}

// ParseArgs parses the first positional argument. Anything after it is ignored.
func ParseArgs(args []string) (Version, error) {
	if len(args) == 0 {
		return Version{}, ErrNoVersion
	}
	return ParseVersion(args[0])
}

// String returns the version as "<major>.<minor>.<patch>".
func (v Version) String() string {
	return v.Major + "." + v.Minor + "." + v.Patch
}

// MajorMinor returns "<major>.<minor>".
func (v Version) MajorMinor() string {
	return v.Major + "." + v.Minor
}

// Canonical returns the version with the "v" prefix x/mod/semver expects.
func (v Version) Canonical() string {
	return "v" + v.String()
}

// IsSemver reports whether the version is a valid semantic version.
func (v Version) IsSemver() bool {
	return semver.IsValid(v.Canonical())
}

// Strict returns an error wrapping ErrNotSemver if v is not valid semver.
func (v Version) Strict() error {
	if !v.IsSemver() {
		return fmt.Errorf("version %q is %w", v.String(), ErrNotSemver)
	}
	return nil
}

// IsUsageError reports whether err comes from argument parsing or validation
// rather than from file handling.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNoVersion) || errors.Is(err, ErrVersionFormat) || errors.Is(err, ErrNotSemver)
}
