package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pyspan/pyspan/internal/cli"
	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/printer"
	"github.com/pyspan/pyspan/internal/tui"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		printer.PrintError(err.Error())
		os.Exit(1)
	}
}

// runCLI loads configuration and dispatches to the root command. Split
// from main so tests can drive it with synthetic arguments.
func runCLI(args []string) error {
	cfg, err := config.LoadConfigFn()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if cfg.Theme != "" {
		tui.SetTheme(cfg.Theme)
	}

	return cli.New(cfg).Run(context.Background(), args)
}
