package check

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pyspan/pyspan/internal/config"
)

func writeDump(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"_type": "Module", "body": []}`), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveInputs_ExplicitFiles(t *testing.T) {
	tmp := t.TempDir()
	dump := filepath.Join(tmp, "a.ast.json")
	writeDump(t, dump)

	inputs, err := ResolveInputs(context.Background(), []string{dump}, &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 1 || inputs[0] != dump {
		t.Errorf("expected [%s], got %v", dump, inputs)
	}
}

func TestResolveInputs_DirectoryScanned(t *testing.T) {
	tmp := t.TempDir()
	writeDump(t, filepath.Join(tmp, "pkg", "a.ast.json"))
	writeDump(t, filepath.Join(tmp, "pkg", "sub", "b.ast.json"))

	inputs, err := ResolveInputs(context.Background(), []string{tmp}, &config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 2 {
		t.Errorf("expected 2 inputs, got %v", inputs)
	}
}

func TestResolveInputs_ConfiguredPathsUsedWhenNoArgs(t *testing.T) {
	tmp := t.TempDir()
	writeDump(t, filepath.Join(tmp, "src", "a.ast.json"))

	cfg := &config.Config{Paths: []string{filepath.Join(tmp, "src")}}
	inputs, err := ResolveInputs(context.Background(), nil, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(inputs) != 1 {
		t.Errorf("expected 1 input from configured path, got %v", inputs)
	}
}

func TestResolveInputs_MissingPath(t *testing.T) {
	if _, err := ResolveInputs(context.Background(), []string{"no-such-path"}, &config.Config{}); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestResolveInputs_NoDumpsFound(t *testing.T) {
	tmp := t.TempDir()

	if _, err := ResolveInputs(context.Background(), []string{tmp}, &config.Config{}); err == nil {
		t.Fatal("expected error when a directory holds no dumps")
	}
}
