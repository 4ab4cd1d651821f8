package check

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/urfave/cli/v3"

	"github.com/pyspan/pyspan/internal/cliflags"
	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/core"
	"github.com/pyspan/pyspan/internal/discovery"
	"github.com/pyspan/pyspan/internal/operations"
	"github.com/pyspan/pyspan/internal/pyversion"
	"github.com/pyspan/pyspan/internal/tui"
)

// Run returns the "check" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "check",
		Aliases:   []string{"analyze"},
		Usage:     "Report the span of Python versions whose grammar accepts the given syntax",
		ArgsUsage: "[paths ...]",
		UsageText: `pyspan check [options] [paths ...]

Paths may be AST dump files (*.ast.json) or directories to scan for
them. With no paths, the configured paths (or the current directory)
are scanned.`,
		Flags: []cli.Flag{
			cliflags.FormatFlag(cfg.Format),
			cliflags.QuietFlag(),
			cliflags.HostFlag(cfg.Host),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCheckCmd(ctx, cmd, cfg)
		},
	}
}

// runCheckCmd executes the check command.
func runCheckCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	host, err := pyversion.Parse(cmd.String("host"))
	if err != nil {
		return fmt.Errorf("invalid --host value %q: %w", cmd.String("host"), err)
	}

	inputs, err := ResolveInputs(ctx, cmd.Args().Slice(), cfg)
	if err != nil {
		return err
	}

	fs := core.NewOSFileSystem()

	var result *operations.Result
	analyze := func() {
		result, err = operations.AnalyzeDumps(ctx, fs, inputs, host)
	}

	// A spinner is only worth showing for directory-sized input on a
	// real terminal.
	if tui.IsInteractive() && len(inputs) > 1 {
		title := fmt.Sprintf("Analyzing %d syntax trees...", len(inputs))
		if spinErr := spinner.New().Title(title).Action(analyze).Run(); spinErr != nil {
			return spinErr
		}
	} else {
		analyze()
	}
	if err != nil {
		return err
	}

	formatter := NewFormatter(ParseOutputFormat(cmd.String("format")))
	if err := formatter.PrintResult(result, host, cmd.Bool("quiet")); err != nil {
		return err
	}

	if !result.Compatible {
		return fmt.Errorf("no single Python version parses all %d files", len(result.Files))
	}
	return nil
}

// ResolveInputs expands the given paths into a list of AST dump files.
// Directory paths are scanned recursively; with no paths at all, the
// configured paths (or the current directory) are used.
func ResolveInputs(ctx context.Context, paths []string, cfg *config.Config) ([]string, error) {
	if len(paths) == 0 {
		paths = cfg.Paths
	}
	if len(paths) == 0 {
		paths = []string{"."}
	}

	svc := discovery.NewService()

	var inputs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("cannot access %q: %w", path, err)
		}

		if !info.IsDir() {
			inputs = append(inputs, path)
			continue
		}

		found, err := svc.Discover(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %q: %w", path, err)
		}
		inputs = append(inputs, found.Dumps...)
	}

	if len(inputs) == 0 {
		return nil, fmt.Errorf("no AST dumps (*%s) found; run your exporter first", discovery.DumpSuffix)
	}
	return inputs, nil
}
