package pyproject

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pyspan/pyspan/internal/pyversion"
)

// Specifier is a parsed PEP 440 version specifier, restricted to the
// comparison granularity pyspan works at: (major, minor) pairs. Patch
// components and wildcard tails are accepted in the input and ignored,
// since grammar revisions never differ at patch level.
type Specifier struct {
	Raw     string
	clauses []clause
}

type clause struct {
	op      string
	version pyversion.Version
}

var (
	// errInvalidSpecifier is returned when a constraint string cannot be
	// parsed.
	errInvalidSpecifier = errors.New("invalid version specifier")

	// clauseRegex captures the operator and the version of one clause.
	// The version may carry extra release segments or a trailing
	// wildcard, e.g. ">=3.8", "<4", "==3.11.*", "~=3.9.2", "^3.8".
	clauseRegex = regexp.MustCompile(`^(~=|==|!=|<=|>=|<|>|\^)\s*v?([0-9]+)(?:\.([0-9]+|\*))?(?:\.(?:[0-9]+|\*))*$`)
)

// ParseSpecifier parses a comma-separated constraint such as
// ">=3.8,<4.0". The caret operator (Poetry style) is accepted as an
// alias for compatible-release.
func ParseSpecifier(s string) (Specifier, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Specifier{}, fmt.Errorf("%w: empty constraint", errInvalidSpecifier)
	}

	spec := Specifier{Raw: raw}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		matches := clauseRegex.FindStringSubmatch(part)
		if matches == nil {
			return Specifier{}, fmt.Errorf("%w: %q", errInvalidSpecifier, part)
		}

		major, err := strconv.Atoi(matches[2])
		if err != nil {
			return Specifier{}, fmt.Errorf("%w: %q", errInvalidSpecifier, part)
		}

		minor := 0
		wildcardMinor := matches[3] == "*" || matches[3] == ""
		if !wildcardMinor {
			minor, err = strconv.Atoi(matches[3])
			if err != nil {
				return Specifier{}, fmt.Errorf("%w: %q", errInvalidSpecifier, part)
			}
		}

		op := matches[1]
		if op == "^" {
			op = "~="
		}
		if wildcardMinor && op == "==" {
			// "==3.*" constrains the major release only.
			op = "==major"
		}

		spec.clauses = append(spec.clauses, clause{
			op:      op,
			version: pyversion.Version{Major: major, Minor: minor},
		})
	}

	if len(spec.clauses) == 0 {
		return Specifier{}, fmt.Errorf("%w: empty constraint", errInvalidSpecifier)
	}
	return spec, nil
}

// Allows reports whether v satisfies every clause of the specifier.
func (s Specifier) Allows(v pyversion.Version) bool {
	for _, c := range s.clauses {
		if !c.allows(v) {
			return false
		}
	}
	return true
}

func (c clause) allows(v pyversion.Version) bool {
	cmp := v.Compare(c.version)
	switch c.op {
	case ">=":
		return cmp >= 0
	case ">":
		return cmp > 0
	case "<=":
		return cmp <= 0
	case "<":
		return cmp < 0
	case "==":
		return cmp == 0
	case "==major":
		return v.Major == c.version.Major
	case "!=":
		return cmp != 0
	case "~=":
		// Compatible release: same major, at least the stated minor.
		return v.Major == c.version.Major && cmp >= 0
	default:
		return false
	}
}

// knownVersions is the grid of grammar revisions pyspan evaluates
// specifiers against. It deliberately runs a little past the newest
// version the detector models so ceilings from newer hosts still work.
func knownVersions() []pyversion.Version {
	versions := []pyversion.Version{{Major: 2, Minor: 7}}
	for minor := 0; minor <= 15; minor++ {
		versions = append(versions, pyversion.Version{Major: 3, Minor: minor})
	}
	return versions
}

// LowestAllowed returns the oldest known version the specifier accepts.
func (s Specifier) LowestAllowed() (pyversion.Version, bool) {
	for _, v := range knownVersions() {
		if s.Allows(v) {
			return v, true
		}
	}
	return pyversion.Version{}, false
}

// Overlaps reports whether the specifier accepts at least one known
// version inside the given interval.
func (s Specifier) Overlaps(interval pyversion.Interval) bool {
	for _, v := range knownVersions() {
		if interval.Contains(v) && s.Allows(v) {
			return true
		}
	}
	return false
}
