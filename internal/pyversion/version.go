package pyversion

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Version represents a Python language version as a (major, minor) pair.
// Language versions identify grammar revisions, so patch levels are not
// tracked: 3.12.1 and 3.12.4 accept the same syntax.
type Version struct {
	Major int
	Minor int
}

var (
	// versionRegex matches version strings with an optional "v" or
	// "python" prefix. It captures:
	//   1. Major version
	//   2. Minor version
	versionRegex = regexp.MustCompile(`^(?:v|python)?([0-9]+)\.([0-9]+)$`)

	// errInvalidVersion is returned when a version string does not conform
	// to the expected major.minor format.
	errInvalidVersion = errors.New("invalid version format")
)

// maxVersionLength is the maximum allowed length for a version string.
// This prevents potential ReDoS attacks on the regex parser.
const maxVersionLength = 32

// String returns the string representation of the version, e.g. "3.12".
func (v Version) String() string {
	var sb strings.Builder
	sb.Grow(8)
	sb.WriteString(strconv.Itoa(v.Major))
	sb.WriteByte('.')
	sb.WriteString(strconv.Itoa(v.Minor))
	return sb.String()
}

// Parse parses a version string such as "3.12" (optionally prefixed with
// "v" or "python") and returns a Version.
//
// Returns errInvalidVersion (wrapped) when:
//   - Input exceeds maxVersionLength
//   - Format doesn't match the major.minor pattern
//   - Major or minor cannot be parsed as non-negative integers
func Parse(s string) (Version, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	if len(trimmed) > maxVersionLength {
		return Version{}, fmt.Errorf("%w: version string exceeds maximum length of %d", errInvalidVersion, maxVersionLength)
	}

	matches := versionRegex.FindStringSubmatch(trimmed)
	if len(matches) < 3 {
		return Version{}, fmt.Errorf("%w: %q", errInvalidVersion, s)
	}

	major, err := strconv.Atoi(matches[1])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid major version: %s", errInvalidVersion, err.Error())
	}
	minor, err := strconv.Atoi(matches[2])
	if err != nil {
		return Version{}, fmt.Errorf("%w: invalid minor version: %s", errInvalidVersion, err.Error())
	}

	return Version{Major: major, Minor: minor}, nil
}

// MustParse is like Parse but panics on invalid input. Intended for
// package-level defaults and tests.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare compares two versions by standard pair ordering.
// It returns -1 if v < other, 0 if v == other, and +1 if v > other.
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	return compareInt(v.Minor, other.Minor)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Max returns the greater of a and b.
func Max(a, b Version) Version {
	if a.Less(b) {
		return b
	}
	return a
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
