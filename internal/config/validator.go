package config

import (
	"fmt"

	"github.com/pyspan/pyspan/internal/pyversion"
	"github.com/pyspan/pyspan/internal/tui"
)

// Validate checks a loaded configuration for values the rest of the
// program cannot work with.
func Validate(cfg *Config) error {
	if cfg.Host != "" {
		if _, err := pyversion.Parse(cfg.Host); err != nil {
			return fmt.Errorf("invalid host version %q: %w", cfg.Host, err)
		}
	}

	switch cfg.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid output format %q: must be \"text\" or \"json\"", cfg.Format)
	}

	if cfg.Theme != "" && !tui.IsValidTheme(cfg.Theme) {
		return fmt.Errorf("invalid theme %q: valid themes are %v", cfg.Theme, tui.ValidThemes)
	}

	return nil
}
