package cli

import (
	"context"
	"fmt"

	urfavecli "github.com/urfave/cli/v3"

	"github.com/pyspan/pyspan/internal/commands/check"
	"github.com/pyspan/pyspan/internal/commands/doctor"
	"github.com/pyspan/pyspan/internal/commands/initialize"
	"github.com/pyspan/pyspan/internal/commands/rules"
	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/printer"
	"github.com/pyspan/pyspan/internal/version"
)

var noColorFlag bool

// New builds and returns the root CLI command,
// configuring all subcommands and flags for the pyspan cli.
func New(cfg *config.Config) *urfavecli.Command {
	return &urfavecli.Command{
		Name:                  "pyspan",
		Version:               fmt.Sprintf("v%s", version.GetVersion()),
		Usage:                 "Detect which Python versions can parse a project's syntax",
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			return ctx, nil
		},
		Commands: []*urfavecli.Command{
			check.Run(cfg),
			doctor.Run(cfg),
			initialize.Run(cfg),
			rules.Run(cfg),
		},
	}
}
