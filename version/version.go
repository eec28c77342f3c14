// Package version reports build metadata for the jsdoclint binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// Version is the application version, set via ldflags. Builds without
	// it fall back to the main module version from the build info.
	Version string
	// BuildDate is when the binary was built, set via ldflags.
	BuildDate string

	// Revision is the git commit revision.
	Revision = getRevision()
	// GoVersion is the Go version used to build.
	GoVersion = runtime.Version()
	// GoOS is the operating system target.
	GoOS = runtime.GOOS
	// GoArch is the architecture target.
	GoArch = runtime.GOARCH
)

// String formats the build metadata on one line, for example
// "v0.3.0 (rev 1a2b3c4, go1.25.0 linux/amd64)".
func String() string {
	s := fmt.Sprintf("%s (rev %s, %s %s/%s", getVersion(), shortRevision(), GoVersion, GoOS, GoArch)
	if BuildDate != "" {
		s += ", built " + BuildDate
	}

	return s + ")"
}

func getVersion() string {
	if Version != "" {
		return Version
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if ok && buildInfo.Main.Version != "" {
		return buildInfo.Main.Version
	}

	return "(devel)"
}

func shortRevision() string {
	const n = 7

	rev, dirty := strings.CutSuffix(Revision, "-dirty")

	if len(rev) > n {
		rev = rev[:n]
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}

func getRevision() string {
	rev := "unknown"

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return rev
	}

	modified := false

	for _, v := range buildInfo.Settings {
		switch v.Key {
		case "vcs.revision":
			rev = v.Value
		case "vcs.modified":
			if v.Value == "true" {
				modified = true
			}
		}
	}

	if modified {
		return rev + "-dirty"
	}

	return rev
}
