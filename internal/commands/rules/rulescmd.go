// Package rules implements the command that lists the syntax detection
// rules pyspan applies.
package rules

import (
	"context"
	"fmt"

	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"

	"github.com/pyspan/pyspan/internal/cliflags"
	"github.com/pyspan/pyspan/internal/compat"
	"github.com/pyspan/pyspan/internal/config"
	"github.com/pyspan/pyspan/internal/printer"
)

// Run returns the "rules" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "rules",
		Usage: "List the syntax constructs pyspan recognizes and their version effects",
		Flags: []cli.Flag{
			cliflags.FormatFlag(cfg.Format),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runRulesCmd(ctx, cmd)
		},
	}
}

// runRulesCmd executes the rules command.
func runRulesCmd(_ context.Context, cmd *cli.Command) error {
	ruleSet := compat.Rules()

	if cmd.String("format") == "json" {
		out, err := encodeJSON(ruleSet)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	printText(ruleSet)
	return nil
}

func printText(ruleSet []compat.Rule) {
	printer.PrintBold("Detection rules")
	fmt.Println()

	for _, rule := range ruleSet {
		effect := fmt.Sprintf("floor %s", rule.Version)
		if rule.Effect == compat.EffectPin {
			effect = printer.Warning(fmt.Sprintf("pin %s", rule.Version))
		}
		fmt.Printf("  %-45s %s\n", rule.Construct, effect)
	}

	fmt.Println()
	printer.PrintFaint("Floors raise the minimum version; pins collapse the span to one version.")
}

func encodeJSON(ruleSet []compat.Rule) (string, error) {
	out := "{}"

	var err error
	for i, rule := range ruleSet {
		prefix := fmt.Sprintf("rules.%d", i)
		if out, err = sjson.Set(out, prefix+".construct", rule.Construct); err != nil {
			return "", fmt.Errorf("failed to encode rules: %w", err)
		}
		if out, err = sjson.Set(out, prefix+".effect", string(rule.Effect)); err != nil {
			return "", fmt.Errorf("failed to encode rules: %w", err)
		}
		if out, err = sjson.Set(out, prefix+".version", rule.Version.String()); err != nil {
			return "", fmt.Errorf("failed to encode rules: %w", err)
		}
	}

	return out, nil
}
