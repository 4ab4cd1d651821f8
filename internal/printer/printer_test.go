package printer

import (
	"strings"
	"testing"
)

func TestRenderFunctionsKeepText(t *testing.T) {
	render := map[string]func(string) string{
		"Faint":   Faint,
		"Bold":    Bold,
		"Success": Success,
		"Error":   Error,
		"Warning": Warning,
		"Info":    Info,
	}

	for name, fn := range render {
		t.Run(name, func(t *testing.T) {
			if got := fn("message"); !strings.Contains(got, "message") {
				t.Errorf("expected rendered output to contain the text, got %q", got)
			}
		})
	}
}

func TestSetNoColor(t *testing.T) {
	t.Cleanup(func() { SetNoColor(false) })

	SetNoColor(true)
	if got := Success("ok"); got != "ok" {
		t.Errorf("expected plain text with color disabled, got %q", got)
	}
}
