// Package version holds build information set via ldflags:
//
//	go build -ldflags "-X github.com/shelltips/ox/internal/version.Version=v0.3.0"
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Long returns the version with commit and build date.
func Long() string {
	return fmt.Sprintf("ox %s\nCommit: %s\nBuilt: %s", Version, Commit, Date)
}
