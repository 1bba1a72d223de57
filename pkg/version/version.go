// Package version holds build information, set with -ldflags at release time.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version   string // Set via ldflags.
	BuildDate string

	Revision  = revision(debug.ReadBuildInfo)
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

// GetVersion returns the release version, or the VCS revision for
// development builds.
func GetVersion() string {
	if Version != "" {
		return Version
	}

	return Revision
}

// Summary describes the build on a single line.
func Summary() string {
	s := fmt.Sprintf("%s (%s, %s/%s)", GetVersion(), GoVersion, GoOS, GoArch)
	if BuildDate != "" {
		s += " built " + BuildDate
	}

	return s
}

func revision(read func() (*debug.BuildInfo, bool)) string {
	info, ok := read()
	if !ok {
		return "unknown"
	}

	var (
		rev   = "unknown"
		dirty bool
	)

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value[:min(7, len(s.Value))]
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	if dirty {
		return rev + "-dirty"
	}

	return rev
}
