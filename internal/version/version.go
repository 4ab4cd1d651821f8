package version

// version is the pyspan release version. It is overridden at build time
// via -ldflags "-X github.com/pyspan/pyspan/internal/version.version=...".
var version = "0.2.0"

// GetVersion returns the current pyspan version string.
func GetVersion() string {
	return version
}
