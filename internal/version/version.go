// Package version reports the build version of the codeblog tools.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Set at build time:
//
//	go build -ldflags="-X github.com/based-ghost/codeblog/internal/version.Version=v1.0.0 \
//	                   -X github.com/based-ghost/codeblog/internal/version.Commit=abc1234"
//
// Values left empty are filled from the module's VCS build info.
var (
	Version = ""
	Commit  = ""
)

const shortCommitLen = 7

func init() {
	if Version == "" || Commit == "" {
		if info, ok := debug.ReadBuildInfo(); ok {
			fill(info)
		}
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fill copies module version and VCS revision from build info into any
// variable that was not set via ldflags.
func fill(info *debug.BuildInfo) {
	if Version == "" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}

	if Commit != "" {
		return
	}

	var revision string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if revision == "" {
		return
	}
	if len(revision) > shortCommitLen {
		revision = revision[:shortCommitLen]
	}
	if dirty {
		revision += "-dirty"
	}
	Commit = revision
}

// Full returns the version string including the commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}

// IsRelease reports whether the binary was built from a tagged version.
func IsRelease() bool {
	return strings.HasPrefix(Version, "v") && !strings.Contains(Commit, "dirty")
}
