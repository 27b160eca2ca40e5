package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thomas-vilte/tagmate/internal/errors"
	"github.com/thomas-vilte/tagmate/internal/regex"
)

// BumpKind is the semantic-version component a commit warrants bumping.
type BumpKind string

const (
	BumpMajor BumpKind = "major"
	BumpMinor BumpKind = "minor"
	BumpPatch BumpKind = "patch"
	BumpNone  BumpKind = "none"
	BumpUnset BumpKind = ""
)

// Severity orders bump kinds: major > minor > patch > none/unset.
func (k BumpKind) Severity() int {
	switch k {
	case BumpMajor:
		return 3
	case BumpMinor:
		return 2
	case BumpPatch:
		return 1
	default:
		return 0
	}
}

// IsActionable reports whether the kind actually advances a version.
func (k BumpKind) IsActionable() bool {
	return k == BumpMajor || k == BumpMinor || k == BumpPatch
}

// ParseBumpKind converts user or classifier input into a BumpKind.
func ParseBumpKind(s string) (BumpKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return BumpMajor, nil
	case "minor":
		return BumpMinor, nil
	case "patch":
		return BumpPatch, nil
	case "none":
		return BumpNone, nil
	}
	return BumpUnset, fmt.Errorf("unknown bump kind %q", s)
}

// Version is an immutable semantic version triple. Raw preserves the exact
// tag text it was parsed from; String() always renders the canonical
// v{major}.{minor}.{patch} form regardless of how Raw was spelled.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// ParseVersion parses a tag name of the form v?MAJOR.MINOR.PATCH.
// Leading zeros in components are accepted and normalized away; anything
// else (prerelease suffixes, missing components, non-numeric parts)
// returns ErrMalformedTag.
func ParseVersion(tag string) (Version, error) {
	m := regex.TagVersion.FindStringSubmatch(strings.TrimSpace(tag))
	if m == nil {
		return Version{}, errors.ErrMalformedTag.WithContext("tag", tag)
	}

	major, err := strconv.Atoi(m[1])
	if err != nil {
		return Version{}, errors.ErrMalformedTag.WithContext("tag", tag).WithError(err)
	}
	minor, err := strconv.Atoi(m[2])
	if err != nil {
		return Version{}, errors.ErrMalformedTag.WithContext("tag", tag).WithError(err)
	}
	patch, err := strconv.Atoi(m[3])
	if err != nil {
		return Version{}, errors.ErrMalformedTag.WithContext("tag", tag).WithError(err)
	}

	return Version{Major: major, Minor: minor, Patch: patch, Raw: tag}, nil
}

// MustParseVersion is ParseVersion for version literals known to be valid.
func MustParseVersion(tag string) Version {
	v, err := ParseVersion(tag)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 comparing components numerically,
// so v0.9.0 sorts before v0.10.0.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	return compareInt(v.Patch, other.Patch)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Bump returns the next version for the given kind. Minor bumps reset
// patch; major bumps reset minor and patch. Kinds that do not advance a
// version are a programming error at this layer.
func (v Version) Bump(kind BumpKind) (Version, error) {
	switch kind {
	case BumpMajor:
		return Version{Major: v.Major + 1}, nil
	case BumpMinor:
		return Version{Major: v.Major, Minor: v.Minor + 1}, nil
	case BumpPatch:
		return Version{Major: v.Major, Minor: v.Minor, Patch: v.Patch + 1}, nil
	}
	return Version{}, fmt.Errorf("cannot bump version with kind %q", kind)
}

// InitialVersion is the target for the first tag of a repository that has
// no semver tags yet.
var InitialVersion = Version{Major: 0, Minor: 1, Patch: 0}
