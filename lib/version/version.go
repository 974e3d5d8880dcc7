// Copyright 2026 The socdos Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the socdos
// binary.
//
// Version information can be injected at build time via -ldflags:
//
//	go build -ldflags "-X github.com/socdos/socdos/lib/version.GitCommit=$(git rev-parse --short HEAD)" ./cmd/socdos
//
// Without ldflags the commit and dirty flag fall back to the VCS
// settings the Go toolchain stamps into the binary, when present.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set via -ldflags at build time.
var (
	// GitCommit is the short git SHA of the build.
	GitCommit = "unknown"

	// GitDirty indicates whether there were uncommitted changes.
	GitDirty = "false"

	// Version is the semantic version. This is set manually for releases.
	Version = "0.1.0-dev"
)

// Info returns a formatted version string suitable for --version output.
func Info() string {
	commit, dirty := buildVCS()
	suffix := ""
	if dirty {
		suffix = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s)", Version, commit, suffix)
}

// Full returns detailed version information including Go version.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// buildVCS returns the commit and dirty flag, preferring ldflags values
// over the toolchain's build settings.
func buildVCS() (commit string, dirty bool) {
	commit, dirty = GitCommit, GitDirty == "true"
	if commit != "unknown" {
		return commit, dirty
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return commit, dirty
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	return commit, dirty
}
