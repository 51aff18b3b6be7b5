// Package buildinfo carries the version stamped into painter binaries.
package buildinfo

import "fmt"

// Set at build time via -ldflags "-X painter/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for window titles and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Full describes the build on one line.
func Full() string {
	return fmt.Sprintf("painter %s (commit %s, built %s)", Version, Commit, Date)
}
