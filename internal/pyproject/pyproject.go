// Package pyproject reads the declared Python version requirement from
// a project manifest (pyproject.toml) so it can be checked against the
// version span detected from the project's syntax.
package pyproject

import (
	"context"
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"

	"github.com/pyspan/pyspan/internal/core"
)

// ErrNoRequirement is returned when the manifest declares no Python
// version requirement.
var ErrNoRequirement = errors.New("no Python version requirement declared")

// Manifest is the subset of pyproject.toml pyspan cares about.
type Manifest struct {
	Project struct {
		Name           string `toml:"name"`
		RequiresPython string `toml:"requires-python"`
	} `toml:"project"`

	Tool struct {
		Poetry struct {
			Dependencies map[string]any `toml:"dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`

	// Path records where the manifest was loaded from.
	Path string `toml:"-"`
}

// Load reads and parses a pyproject.toml file.
func Load(ctx context.Context, fs core.FileSystem, path string) (*Manifest, error) {
	data, err := fs.ReadFile(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %q: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse TOML in %q: %w", path, err)
	}
	m.Path = path

	return &m, nil
}

// RequiresPython returns the declared Python version constraint.
// PEP 621 [project] metadata wins; a Poetry python dependency is used as
// a fallback for projects that have not migrated.
func (m *Manifest) RequiresPython() (string, error) {
	if m.Project.RequiresPython != "" {
		return m.Project.RequiresPython, nil
	}

	if dep, ok := m.Tool.Poetry.Dependencies["python"]; ok {
		if s, ok := dep.(string); ok && s != "" {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w in %q", ErrNoRequirement, m.Path)
}
