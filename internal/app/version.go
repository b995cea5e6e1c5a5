package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with -ldflags "-X" at build time,
// e.g. -X github.com/heartmarshall/lexical-decision/internal/app.Version=1.2.0.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion returns the version reported in startup logs and /health.
// Missing commit and build time fall back to the VCS stamp in the binary.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		c, b := vcsStamp()
		if commit == "" {
			commit = c
		}
		if built == "" {
			built = b
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsStamp() (revision, at string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		}
	}
	return revision, at
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
