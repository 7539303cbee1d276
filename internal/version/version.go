// Package version identifies the ocrfront build in `ocrfront version`, the
// interface header and diagnostic logs.
//
// Release builds stamp the values with ldflags:
//
//	go build -ldflags="-X github.com/muurk/ocrfront/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/ocrfront/internal/version.Commit=abc1234" ./cmd/ocrfront
//
// Otherwise they come from the build info Go embeds: the module version for
// `go install github.com/muurk/ocrfront/cmd/ocrfront@v1.2.3`, and the VCS
// stamp for builds from a checkout.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"
)

var (
	// Version is the release tag, or "dev-YYYYMMDD" for untagged builds
	Version = ""
	// Commit is the short git hash, suffixed "-dirty" for modified trees
	Commit = ""
)

const shortHash = 7

func init() {
	info, _ := debug.ReadBuildInfo()
	Version, Commit = resolve(info, Version, Commit, time.Now())
}

// resolve fills whichever of version and commit is empty from info. now
// dates the version when nothing better is known.
func resolve(info *debug.BuildInfo, version, commit string, now time.Time) (string, string) {
	var revision, vcsTime string
	modified := false
	if info != nil {
		if version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.time":
				vcsTime = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if commit == "" && revision != "" {
		commit = revision
		if len(commit) > shortHash {
			commit = commit[:shortHash]
		}
		if modified {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			now = t
		}
		version = "dev-" + now.Format("20060102")
	}
	return version, commit
}

// Full returns the version line printed by `ocrfront version`.
func Full() string {
	return fmt.Sprintf("ocrfront %s (commit %s, %s %s/%s)",
		Version, Commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
