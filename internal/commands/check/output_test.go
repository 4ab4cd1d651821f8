package check

import (
	"testing"

	"github.com/tidwall/gjson"

	"github.com/pyspan/pyspan/internal/pyversion"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected OutputFormat
	}{
		{input: "json", expected: FormatJSON},
		{input: "text", expected: FormatText},
		{input: "", expected: FormatText},
		{input: "yaml", expected: FormatText},
	}

	for _, tt := range tests {
		if got := ParseOutputFormat(tt.input); got != tt.expected {
			t.Errorf("ParseOutputFormat(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderSpan(t *testing.T) {
	span := pyversion.NewInterval(
		pyversion.Version{Major: 3, Minor: 6},
		pyversion.Version{Major: 3, Minor: 13},
	)
	if got := renderSpan(span); got != ">= 3.6, <= 3.13" {
		t.Errorf("expected %q, got %q", ">= 3.6, <= 3.13", got)
	}

	exact := pyversion.Exact(pyversion.Version{Major: 3, Minor: 12})
	if got := renderSpan(exact); got != "exactly 3.12" {
		t.Errorf("expected %q, got %q", "exactly 3.12", got)
	}
}

func TestSetSpan(t *testing.T) {
	span := pyversion.NewInterval(
		pyversion.Version{Major: 3, Minor: 8},
		pyversion.Version{Major: 3, Minor: 13},
	)

	out, err := setSpan("{}", "combined", span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := gjson.Get(out, "combined.min").String(); got != "3.8" {
		t.Errorf("expected min 3.8, got %q", got)
	}
	if got := gjson.Get(out, "combined.max").String(); got != "3.13" {
		t.Errorf("expected max 3.13, got %q", got)
	}
	if gjson.Get(out, "combined.exact").Bool() {
		t.Error("expected exact to be false")
	}
}

func TestSetSpan_Exact(t *testing.T) {
	out, err := setSpan("{}", "combined", pyversion.Exact(pyversion.Version{Major: 3, Minor: 12}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gjson.Get(out, "combined.exact").Bool() {
		t.Error("expected exact to be true")
	}
}

func TestSetSpan_IndexedPrefixBuildsArray(t *testing.T) {
	span := pyversion.NewInterval(
		pyversion.Version{Major: 2, Minor: 7},
		pyversion.Version{Major: 3, Minor: 13},
	)

	out, err := setSpan("{}", "files.0", span)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gjson.Get(out, "files").IsArray() {
		t.Errorf("expected files to be an array, got: %s", out)
	}
}
