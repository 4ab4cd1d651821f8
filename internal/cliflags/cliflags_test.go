package cliflags

import "testing"

func TestFormatFlag(t *testing.T) {
	flag := FormatFlag("json")
	if flag.Name != "format" || flag.Value != "json" {
		t.Errorf("unexpected flag: %+v", flag)
	}
}

func TestQuietFlag(t *testing.T) {
	flag := QuietFlag()
	if flag.Name != "quiet" {
		t.Errorf("unexpected flag name: %q", flag.Name)
	}
}

func TestHostFlag(t *testing.T) {
	flag := HostFlag("3.13")
	if flag.Name != "host" || flag.Value != "3.13" {
		t.Errorf("unexpected flag: %+v", flag)
	}
}
