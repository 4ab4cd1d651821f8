package pyproject

import (
	"context"
	"errors"
	"testing"

	"github.com/pyspan/pyspan/internal/core"
)

func TestLoad_PEP621(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("pyproject.toml", []byte(`
[project]
name = "demo"
requires-python = ">=3.8"
`))

	m, err := Load(context.Background(), fs, "pyproject.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := m.RequiresPython()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != ">=3.8" {
		t.Errorf("expected %q, got %q", ">=3.8", req)
	}
}

func TestLoad_PoetryFallback(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("pyproject.toml", []byte(`
[tool.poetry]
name = "demo"

[tool.poetry.dependencies]
python = "^3.9"
requests = "^2.28"
`))

	m, err := Load(context.Background(), fs, "pyproject.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := m.RequiresPython()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != "^3.9" {
		t.Errorf("expected %q, got %q", "^3.9", req)
	}
}

func TestLoad_PEP621WinsOverPoetry(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("pyproject.toml", []byte(`
[project]
requires-python = ">=3.10"

[tool.poetry.dependencies]
python = "^3.8"
`))

	m, err := Load(context.Background(), fs, "pyproject.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req, err := m.RequiresPython()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req != ">=3.10" {
		t.Errorf("expected %q, got %q", ">=3.10", req)
	}
}

func TestRequiresPython_Missing(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("pyproject.toml", []byte(`
[project]
name = "demo"
`))

	m, err := Load(context.Background(), fs, "pyproject.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := m.RequiresPython(); !errors.Is(err, ErrNoRequirement) {
		t.Errorf("expected ErrNoRequirement, got %v", err)
	}
}

func TestLoad_InvalidTOML(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("pyproject.toml", []byte("[project\nname ="))

	if _, err := Load(context.Background(), fs, "pyproject.toml"); err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := core.NewMockFileSystem()

	if _, err := Load(context.Background(), fs, "pyproject.toml"); err == nil {
		t.Fatal("expected read error, got nil")
	}
}
