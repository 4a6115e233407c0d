// Package buildinfo reports the running binary's version, matching the
// pattern of reading debug.ReadBuildInfo rather than baking a version
// string in with -ldflags.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Version returns the module version embedded by the Go toolchain (VCS
// tag/commit for a `go install`-built binary, "(devel)" for a local
// build), or "unknown" if build info isn't available.
func Version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
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
		return "(devel)"
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	if dirty {
		return fmt.Sprintf("%s-dirty", revision)
	}
	return revision
}
