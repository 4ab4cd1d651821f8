package pyversion

import (
	"errors"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Version
	}{
		{name: "plain", input: "3.12", expected: Version{Major: 3, Minor: 12}},
		{name: "v prefix", input: "v3.8", expected: Version{Major: 3, Minor: 8}},
		{name: "python prefix", input: "python2.7", expected: Version{Major: 2, Minor: 7}},
		{name: "uppercase prefix", input: "Python3.10", expected: Version{Major: 3, Minor: 10}},
		{name: "surrounding whitespace", input: "  3.11  ", expected: Version{Major: 3, Minor: 11}},
		{name: "zero minor", input: "3.0", expected: Version{Major: 3, Minor: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "missing minor", input: "3"},
		{name: "patch component", input: "3.12.1"},
		{name: "non-numeric", input: "three.twelve"},
		{name: "negative", input: "-3.12"},
		{name: "trailing garbage", input: "3.12rc1"},
		{name: "too long", input: strings.Repeat("3", 40) + ".1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, errInvalidVersion) {
				t.Errorf("expected errInvalidVersion, got %v", err)
			}
		})
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid version")
		}
	}()
	MustParse("not-a-version")
}

func TestVersion_String(t *testing.T) {
	if got := (Version{Major: 3, Minor: 12}).String(); got != "3.12" {
		t.Errorf("expected %q, got %q", "3.12", got)
	}
}

func TestVersion_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Version
		expected int
	}{
		{name: "equal", a: Version{3, 12}, b: Version{3, 12}, expected: 0},
		{name: "minor less", a: Version{3, 8}, b: Version{3, 12}, expected: -1},
		{name: "minor greater", a: Version{3, 12}, b: Version{3, 8}, expected: 1},
		{name: "major dominates minor", a: Version{2, 7}, b: Version{3, 0}, expected: -1},
		{name: "two digit minor beats one digit", a: Version{3, 10}, b: Version{3, 9}, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, expected %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestMax(t *testing.T) {
	a := Version{Major: 3, Minor: 9}
	b := Version{Major: 3, Minor: 12}

	if got := Max(a, b); got != b {
		t.Errorf("expected %v, got %v", b, got)
	}
	if got := Max(b, a); got != b {
		t.Errorf("expected %v, got %v", b, got)
	}
	if got := Max(a, a); got != a {
		t.Errorf("expected %v, got %v", a, got)
	}
}
