// Package initialize implements the command that writes a starter
// .pyspan.yaml configuration file.
package initialize

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/printer"
	"github.com/pyspan/pyspan/internal/tui"
)

// Run returns the "init" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a " + config.ConfigFileName + " configuration file",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
			&cli.BoolFlag{
				Name:  "yes",
				Usage: "Accept defaults without prompting",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, cfg)
		},
	}
}

// runInitCmd executes the init command.
func runInitCmd(_ context.Context, cmd *cli.Command, cfg *config.Config) error {
	if _, err := os.Stat(config.ConfigFileName); err == nil && !cmd.Bool("force") {
		return fmt.Errorf("%s already exists; use --force to overwrite", config.ConfigFileName)
	}

	fresh := defaultConfig(cfg)

	if !cmd.Bool("yes") && tui.IsInteractive() {
		if err := promptForSettings(fresh); err != nil {
			return err
		}
	}

	if err := config.SaveConfigFn(fresh); err != nil {
		return err
	}

	printer.PrintSuccess(fmt.Sprintf("Created %s", printer.Bold(config.ConfigFileName)))
	printer.PrintFaint(fmt.Sprintf("host: %s, format: %s, theme: %s", fresh.Host, fresh.Format, fresh.Theme))
	return nil
}

// defaultConfig builds the config written when prompting is skipped,
// carrying over whatever the current environment resolved.
func defaultConfig(cfg *config.Config) *config.Config {
	fresh := &config.Config{
		Host:   cfg.Host,
		Format: cfg.Format,
		Theme:  cfg.Theme,
	}
	if fresh.Host == "" {
		fresh.Host = config.DefaultHost
	}
	if fresh.Format == "" {
		fresh.Format = "text"
	}
	if fresh.Theme == "" {
		fresh.Theme = "pyspan"
	}
	return fresh
}

// promptForSettings interactively fills the main config fields.
func promptForSettings(cfg *config.Config) error {
	host, err := tui.Select(
		"Which interpreter produces your AST dumps?",
		"Reported spans never extend past this version.",
		hostOptions(cfg.Host),
	)
	if err != nil {
		return err
	}
	cfg.Host = host

	format, err := tui.Select(
		"Default output format",
		"",
		[]huh.Option[string]{
			huh.NewOption("text", "text"),
			huh.NewOption("json", "json"),
		},
	)
	if err != nil {
		return err
	}
	cfg.Format = format

	theme, err := tui.Select("Prompt theme", "", themeOptions())
	if err != nil {
		return err
	}
	cfg.Theme = theme

	return nil
}

func hostOptions(current string) []huh.Option[string] {
	versions := []string{"3.15", "3.14", "3.13", "3.12", "3.11", "3.10", "3.9", "3.8"}

	options := make([]huh.Option[string], 0, len(versions))
	for _, v := range versions {
		options = append(options, huh.NewOption("Python "+v, v).Selected(v == current))
	}
	return options
}

func themeOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(tui.ValidThemes))
	for _, name := range tui.ValidThemes {
		options = append(options, huh.NewOption(name, name))
	}
	return options
}
