// Package discovery locates analyzer inputs beneath a project root:
// serialized AST dumps and pyproject.toml manifests.
package discovery

import (
	"context"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// DumpSuffix is the file name suffix identifying serialized AST dumps.
const DumpSuffix = ".ast.json"

// ManifestName is the project manifest file name.
const ManifestName = "pyproject.toml"

// skipDirs are directory names never descended into. They hold
// third-party or generated content whose syntax does not belong to the
// project under analysis.
var skipDirs = []string{
	"__pycache__",
	"node_modules",
	"site-packages",
	"venv",
	"vendor",
}

// Result represents the inputs discovered beneath a root directory.
type Result struct {
	// Dumps contains paths of discovered AST dump files, in walk order.
	Dumps []string

	// Manifests contains paths of discovered pyproject.toml files.
	Manifests []string
}

// HasDumps returns true if any AST dumps were found.
func (r *Result) HasDumps() bool {
	return len(r.Dumps) > 0
}

// HasManifests returns true if any manifests were found.
func (r *Result) HasManifests() bool {
	return len(r.Manifests) > 0
}

// IsEmpty returns true if nothing analyzable was found.
func (r *Result) IsEmpty() bool {
	return len(r.Dumps) == 0 && len(r.Manifests) == 0
}

// Service provides input discovery functionality.
type Service struct {
	// WalkDirFunc can be overridden in tests to walk a virtual tree.
	WalkDirFunc func(root string, fn fs.WalkDirFunc) error
}

// NewService creates a new discovery Service backed by the real
// filesystem.
func NewService() *Service {
	return &Service{
		WalkDirFunc: func(root string, fn fs.WalkDirFunc) error {
			return filepath.WalkDir(root, fn)
		},
	}
}

// Discover walks root and returns every AST dump and manifest found.
// Hidden directories and the skipDirs set are not descended into.
func (s *Service) Discover(ctx context.Context, root string) (*Result, error) {
	result := &Result{
		Dumps:     make([]string, 0),
		Manifests: make([]string, 0),
	}

	err := s.WalkDirFunc(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || slices.Contains(skipDirs, name)) {
				return filepath.SkipDir
			}
			return nil
		}

		switch {
		case strings.HasSuffix(name, DumpSuffix):
			result.Dumps = append(result.Dumps, path)
		case name == ManifestName:
			result.Manifests = append(result.Manifests, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
