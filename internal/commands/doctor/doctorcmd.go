// Package doctor implements the command that cross-checks the Python
// version requirement a project declares against the versions its
// syntax actually supports.
package doctor

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/pyspan/pyspan/internal/cliflags"
	"github.com/pyspan/pyspan/internal/commands/check"
	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/core"
	"github.com/pyspan/pyspan/internal/discovery"
	"github.com/pyspan/pyspan/internal/operations"
	"github.com/pyspan/pyspan/internal/printer"
	"github.com/pyspan/pyspan/internal/pyproject"
	"github.com/pyspan/pyspan/internal/pyversion"
)

// Run returns the "doctor" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "doctor",
		Usage:     "Verify that requires-python matches the syntax the project uses",
		ArgsUsage: "[paths ...]",
		UsageText: `pyspan doctor [options] [paths ...]

Loads requires-python from pyproject.toml, detects the version span of
the project's syntax from its AST dumps, and reports inconsistencies:
a declared range that includes versions the syntax cannot parse on, or
one that excludes every compatible version.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "manifest",
				Aliases: []string{"m"},
				Usage:   "Path to pyproject.toml",
			},
			cliflags.HostFlag(cfg.Host),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(ctx, cmd, cfg)
		},
	}
}

// runDoctorCmd executes the doctor command.
func runDoctorCmd(ctx context.Context, cmd *cli.Command, cfg *config.Config) error {
	host, err := pyversion.Parse(cmd.String("host"))
	if err != nil {
		return fmt.Errorf("invalid --host value %q: %w", cmd.String("host"), err)
	}

	fs := core.NewOSFileSystem()

	manifestPath, err := resolveManifest(ctx, cmd.String("manifest"))
	if err != nil {
		return err
	}

	manifest, err := pyproject.Load(ctx, fs, manifestPath)
	if err != nil {
		return err
	}
	declared, err := manifest.RequiresPython()
	if err != nil {
		return err
	}
	spec, err := pyproject.ParseSpecifier(declared)
	if err != nil {
		return fmt.Errorf("in %q: %w", manifestPath, err)
	}

	inputs, err := check.ResolveInputs(ctx, cmd.Args().Slice(), cfg)
	if err != nil {
		return err
	}
	result, err := operations.AnalyzeDumps(ctx, fs, inputs, host)
	if err != nil {
		return err
	}
	if !result.Compatible {
		printer.PrintError("Analyzed files demand disjoint Python version spans.")
		return fmt.Errorf("no single Python version parses all %d files", len(result.Files))
	}

	return diagnose(spec, result.Combined, manifestPath)
}

// diagnose compares the declared constraint against the detected span
// and reports the outcome.
func diagnose(spec pyproject.Specifier, detected pyversion.Interval, manifestPath string) error {
	printer.PrintFaint(fmt.Sprintf("Declared:  requires-python = %q (%s)", spec.Raw, manifestPath))
	printer.PrintFaint(fmt.Sprintf("Detected:  Python %s", detected))

	if !spec.Overlaps(detected) {
		printer.PrintError("requires-python excludes every version that can parse this syntax.")
		return fmt.Errorf("declared constraint %q does not overlap detected span %s", spec.Raw, detected)
	}

	if declaredMin, ok := spec.LowestAllowed(); ok && declaredMin.Less(detected.Min) {
		printer.PrintWarning(fmt.Sprintf(
			"requires-python admits Python %s, but the syntax needs at least %s.",
			declaredMin, detected.Min,
		))
		return fmt.Errorf("declared minimum %s is below the syntax floor %s", declaredMin, detected.Min)
	}

	printer.PrintSuccess("requires-python is consistent with the project's syntax.")
	return nil
}

// resolveManifest picks the manifest to check: an explicit flag value,
// a pyproject.toml in the current directory, or the first one a scan of
// the current directory finds.
func resolveManifest(ctx context.Context, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	if _, err := os.Stat(discovery.ManifestName); err == nil {
		return discovery.ManifestName, nil
	}

	found, err := discovery.NewService().Discover(ctx, ".")
	if err != nil {
		return "", fmt.Errorf("failed to scan for %s: %w", discovery.ManifestName, err)
	}
	if !found.HasManifests() {
		return "", fmt.Errorf("no %s found; pass one with --manifest", discovery.ManifestName)
	}
	return found.Manifests[0], nil
}
