package pyversion

import "testing"

func TestNewInterval_PanicsWhenInverted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for inverted interval")
		}
	}()
	NewInterval(Version{3, 12}, Version{3, 8})
}

func TestInterval_IsExact(t *testing.T) {
	if !Exact(Version{3, 12}).IsExact() {
		t.Error("expected exact interval")
	}
	if NewInterval(Version{3, 8}, Version{3, 12}).IsExact() {
		t.Error("expected non-exact interval")
	}
}

func TestInterval_Contains(t *testing.T) {
	span := NewInterval(Version{3, 6}, Version{3, 12})

	tests := []struct {
		name     string
		version  Version
		expected bool
	}{
		{name: "below", version: Version{3, 5}, expected: false},
		{name: "at min", version: Version{3, 6}, expected: true},
		{name: "inside", version: Version{3, 10}, expected: true},
		{name: "at max", version: Version{3, 12}, expected: true},
		{name: "above", version: Version{3, 13}, expected: false},
		{name: "older major", version: Version{2, 7}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := span.Contains(tt.version); got != tt.expected {
				t.Errorf("Contains(%v) = %v, expected %v", tt.version, got, tt.expected)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected Interval
		ok       bool
	}{
		{
			name:     "overlapping",
			a:        NewInterval(Version{2, 7}, Version{3, 13}),
			b:        NewInterval(Version{3, 6}, Version{3, 13}),
			expected: NewInterval(Version{3, 6}, Version{3, 13}),
			ok:       true,
		},
		{
			name:     "nested",
			a:        NewInterval(Version{3, 0}, Version{3, 13}),
			b:        NewInterval(Version{3, 8}, Version{3, 10}),
			expected: NewInterval(Version{3, 8}, Version{3, 10}),
			ok:       true,
		},
		{
			name:     "touching at one version",
			a:        NewInterval(Version{2, 7}, Version{3, 8}),
			b:        NewInterval(Version{3, 8}, Version{3, 13}),
			expected: Exact(Version{3, 8}),
			ok:       true,
		},
		{
			name: "disjoint",
			a:    Exact(Version{2, 7}),
			b:    NewInterval(Version{3, 6}, Version{3, 13}),
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Intersect ok = %v, expected %v", ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestInterval_String(t *testing.T) {
	if got := NewInterval(Version{3, 6}, Version{3, 13}).String(); got != "3.6 - 3.13" {
		t.Errorf("expected %q, got %q", "3.6 - 3.13", got)
	}
	if got := Exact(Version{3, 12}).String(); got != "3.12" {
		t.Errorf("expected %q, got %q", "3.12", got)
	}
}
