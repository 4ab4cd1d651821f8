package pyproject

import (
	"testing"

	"github.com/pyspan/pyspan/internal/pyversion"
)

func v(major, minor int) pyversion.Version {
	return pyversion.Version{Major: major, Minor: minor}
}

func TestParseSpecifier_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "only commas", input: ",,"},
		{name: "missing operator", input: "3.8"},
		{name: "unknown operator", input: "=>3.8"},
		{name: "non-numeric version", input: ">=three.eight"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseSpecifier(tt.input); err == nil {
				t.Errorf("expected error for %q, got nil", tt.input)
			}
		})
	}
}

func TestSpecifier_Allows(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		version  pyversion.Version
		expected bool
	}{
		{name: "lower bound inclusive", spec: ">=3.8", version: v(3, 8), expected: true},
		{name: "below lower bound", spec: ">=3.8", version: v(3, 7), expected: false},
		{name: "range upper bound exclusive", spec: ">=3.8,<4.0", version: v(3, 15), expected: true},
		{name: "range excludes python 2", spec: ">=3.8,<4.0", version: v(2, 7), expected: false},
		{name: "exact match", spec: "==3.11", version: v(3, 11), expected: true},
		{name: "exact mismatch", spec: "==3.11", version: v(3, 12), expected: false},
		{name: "major wildcard", spec: "==3.*", version: v(3, 4), expected: true},
		{name: "major wildcard other major", spec: "==3.*", version: v(2, 7), expected: false},
		{name: "exclusion", spec: ">=3.6,!=3.9", version: v(3, 9), expected: false},
		{name: "compatible release same major", spec: "~=3.9", version: v(3, 12), expected: true},
		{name: "compatible release below minor", spec: "~=3.9", version: v(3, 8), expected: false},
		{name: "compatible release other major", spec: "~=3.9", version: v(2, 7), expected: false},
		{name: "caret alias", spec: "^3.9", version: v(3, 11), expected: true},
		{name: "caret excludes older", spec: "^3.9", version: v(3, 8), expected: false},
		{name: "patch component ignored", spec: ">=3.8.1", version: v(3, 8), expected: true},
		{name: "spaces tolerated", spec: ">= 3.8, < 4.0", version: v(3, 10), expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecifier(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := spec.Allows(tt.version); got != tt.expected {
				t.Errorf("%q allows %s = %v, expected %v", tt.spec, tt.version, got, tt.expected)
			}
		})
	}
}

func TestSpecifier_LowestAllowed(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		expected pyversion.Version
		ok       bool
	}{
		{name: "simple floor", spec: ">=3.8", expected: v(3, 8), ok: true},
		{name: "python 2 allowed", spec: ">=2.0", expected: v(2, 7), ok: true},
		{name: "exclusive floor", spec: ">3.8", expected: v(3, 9), ok: true},
		{name: "range", spec: ">=3.6,<3.10", expected: v(3, 6), ok: true},
		{name: "unsatisfiable", spec: ">=3.8,<3.6", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecifier(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, ok := spec.LowestAllowed()
			if ok != tt.ok {
				t.Fatalf("LowestAllowed ok = %v, expected %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSpecifier_Overlaps(t *testing.T) {
	span := pyversion.NewInterval(v(3, 6), v(3, 13))

	tests := []struct {
		name     string
		spec     string
		expected bool
	}{
		{name: "fully inside", spec: ">=3.8,<3.11", expected: true},
		{name: "partially inside", spec: ">=3.12", expected: true},
		{name: "entirely below", spec: "<3.6", expected: false},
		{name: "python 2 only", spec: "==2.7", expected: false},
		{name: "single shared version", spec: "==3.13", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseSpecifier(tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := spec.Overlaps(span); got != tt.expected {
				t.Errorf("%q overlaps %s = %v, expected %v", tt.spec, span, got, tt.expected)
			}
		})
	}
}
