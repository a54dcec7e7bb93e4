// Package version reports the msc build version.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/muurk/msc/internal/version.Version=v0.3.0 \
//	                   -X github.com/muurk/msc/internal/version.Commit=abc123" ./cmd/msc
//
// Builds without ldflags fall back to the VCS stamp in the build info.
var (
	Version = ""
	Commit  = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo(debug.ReadBuildInfo())
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

func fromBuildInfo(info *debug.BuildInfo, ok bool) {
	if !ok {
		return
	}

	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	var revision, modified, stamp string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			stamp = s.Value
		}
	}

	if Commit == "" && revision != "" {
		Commit = revision
		if len(Commit) > 7 {
			Commit = Commit[:7]
		}
		if modified == "true" {
			Commit += "-dirty"
		}
	}
	if Version == "" && len(stamp) >= 10 {
		// vcs.time is RFC 3339; keep the date.
		Version = "dev-" + stamp[:4] + stamp[5:7] + stamp[8:10]
	}
}

// Full returns the version with its commit, e.g. "v0.3.0 (commit: abc123)".
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
