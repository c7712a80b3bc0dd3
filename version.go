package main

import (
	"runtime/debug"
	"strings"
)

// VersionCore is the SemVer version core of pubip.
// Meant to be be overridden at build time.
var VersionCore = "0.1.0"

// SemVer returns the semantic version of pubip as
// built from VersionCore and debug build info.
func SemVer() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return VersionCore
	}

	var (
		semver   = VersionCore
		revision string
		modified bool
	)
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value[:min(len(setting.Value), 7)]
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision != "" && !strings.Contains(semver, revision) {
		semver += "+" + revision
	}

	if modified {
		semver += "*"
	}

	return semver
}
