package tui

import "testing"

func TestIsValidTheme(t *testing.T) {
	for _, name := range ValidThemes {
		if !IsValidTheme(name) {
			t.Errorf("expected %q to be valid", name)
		}
	}

	for _, name := range []string{"", "neon", "PYSPAN", "charm "} {
		if IsValidTheme(name) {
			t.Errorf("expected %q to be invalid", name)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ValidThemes {
		if GetTheme(name) == nil {
			t.Errorf("expected a theme for %q, got nil", name)
		}
	}

	if GetTheme("unknown") != nil {
		t.Error("expected nil for unknown theme name")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(resetTheme)

	SetTheme("dracula")
	if currentThemeOrDefault() == nil {
		t.Fatal("expected a theme after SetTheme")
	}
	if currentTheme == nil {
		t.Error("expected dracula to be stored as current theme")
	}

	SetTheme("unknown")
	if currentTheme != nil {
		t.Error("expected invalid name to fall back to the default theme")
	}

	SetTheme("charm")
	SetTheme("")
	if currentTheme != nil {
		t.Error("expected empty name to reset the current theme")
	}
}

func TestCurrentThemeOrDefault_WithoutSet(t *testing.T) {
	t.Cleanup(resetTheme)
	resetTheme()

	if currentThemeOrDefault() == nil {
		t.Error("expected the default theme, got nil")
	}
}

func TestIsInteractive_FalseInCI(t *testing.T) {
	t.Setenv("CI", "true")

	if IsInteractive() {
		t.Error("expected non-interactive when CI is set")
	}
}
