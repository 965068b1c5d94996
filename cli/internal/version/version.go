// Package version holds the CLI version string shared by scamatch and scagen.
// Default is "dev"; release builds set it via:
// go build -ldflags "-X scagate/cli/internal/version.Version=v1.0.0"
package version

// Version is the scagate version. Set at build time for releases.
var Version = "dev"

// Commit is the short git commit hash for dev builds; set via ldflags.
var Commit = ""

// String returns the version for display (cobra --version). Dev builds with a
// commit show "dev (abc1234)"; everything else shows Version as-is.
func String() string {
	if Version != "dev" || Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
