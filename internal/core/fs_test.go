package core

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestMockFileSystem_ReadWrite(t *testing.T) {
	m := NewMockFileSystem()
	ctx := context.Background()

	if err := m.WriteFile(ctx, "a.txt", []byte("hello"), PermOwnerRW); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := m.ReadFile(ctx, "a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("expected %q, got %q", "hello", data)
	}
}

func TestMockFileSystem_MissingFile(t *testing.T) {
	m := NewMockFileSystem()

	if _, err := m.ReadFile(context.Background(), "nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
	if _, err := m.Stat(context.Background(), "nope"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestMockFileSystem_InjectedErrors(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile("a.txt", []byte("x"))

	readErr := errors.New("read broke")
	m.ReadErr = readErr
	if _, err := m.ReadFile(context.Background(), "a.txt"); !errors.Is(err, readErr) {
		t.Errorf("expected injected read error, got %v", err)
	}

	writeErr := errors.New("write broke")
	m.WriteErr = writeErr
	if err := m.WriteFile(context.Background(), "b.txt", nil, PermOwnerRW); !errors.Is(err, writeErr) {
		t.Errorf("expected injected write error, got %v", err)
	}
}

func TestMockFileSystem_Paths(t *testing.T) {
	m := NewMockFileSystem()
	m.SetFile("b.txt", nil)
	m.SetFile("a.txt", nil)

	paths := m.Paths()
	if len(paths) != 2 || paths[0] != "a.txt" || paths[1] != "b.txt" {
		t.Errorf("expected sorted paths [a.txt b.txt], got %v", paths)
	}
}

func TestOSFileSystem_RoundTrip(t *testing.T) {
	o := NewOSFileSystem()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data.json")

	if err := o.WriteFile(ctx, path, []byte("{}"), PermOwnerRW); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := o.Stat(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.IsDir() {
		t.Error("expected a regular file")
	}

	data, err := o.ReadFile(ctx, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("expected %q, got %q", "{}", data)
	}
}
