// Package cliflags provides flag constructors shared by multiple pyspan
// commands.
package cliflags

import "github.com/urfave/cli/v3"

// FormatFlag returns the shared output format flag.
func FormatFlag(defaultValue string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: text, json",
		Value:   defaultValue,
	}
}

// QuietFlag returns the shared quiet flag.
func QuietFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Only show the combined result",
	}
}

// HostFlag returns the shared host version flag.
func HostFlag(defaultValue string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "host",
		Usage: "Version of the interpreter that produced the AST dumps (span ceiling)",
		Value: defaultValue,
	}
}
