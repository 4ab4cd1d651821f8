package tui

import (
	"os"

	"golang.org/x/term"
)

// ciEnvs are environment variables that indicate a CI/CD environment,
// where prompts would hang the build.
var ciEnvs = []string{
	"CI",
	"CONTINUOUS_INTEGRATION",
	"GITHUB_ACTIONS",
	"GITLAB_CI",
	"CIRCLECI",
	"TRAVIS",
	"JENKINS_HOME",
	"BUILDKITE",
	"DRONE",
	"TF_BUILD",
}

// IsInteractive determines if the current environment supports
// interactive prompts. It returns false when stdout is not a terminal
// (redirected to a file or pipe) or when a CI environment is detected,
// so TUI prompts are skipped automatically in non-interactive contexts.
func IsInteractive() bool {
	if !IsTTY() {
		return false
	}

	for _, env := range ciEnvs {
		if os.Getenv(env) != "" {
			return false
		}
	}

	return true
}

// IsTTY checks if stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // G115: fd is a small value, no overflow risk
}
