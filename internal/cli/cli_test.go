package cli

import (
	"strings"
	"testing"

	"github.com/pyspan/pyspan/internal/config"
)

func TestNew(t *testing.T) {
	cmd := New(&config.Config{Host: "3.13", Format: "text"})

	if cmd.Name != "pyspan" {
		t.Errorf("expected command name pyspan, got %q", cmd.Name)
	}
	if !strings.HasPrefix(cmd.Version, "v") {
		t.Errorf("expected version with v prefix, got %q", cmd.Version)
	}

	expected := []string{"check", "doctor", "init", "rules"}
	if len(cmd.Commands) != len(expected) {
		t.Fatalf("expected %d subcommands, got %d", len(expected), len(cmd.Commands))
	}
	for i, name := range expected {
		if cmd.Commands[i].Name != name {
			t.Errorf("subcommand %d: expected %q, got %q", i, name, cmd.Commands[i].Name)
		}
	}
}

func TestNew_HasNoColorFlag(t *testing.T) {
	cmd := New(&config.Config{})

	found := false
	for _, flag := range cmd.Flags {
		for _, name := range flag.Names() {
			if name == "no-color" {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected a no-color flag on the root command")
	}
}
