/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package version

import (
	"runtime"
	"runtime/debug"
)

// Usually set at link time, e.g. -X github.com/sap/manifest-decoration-runtime/internal/version.version=v1.2.3;
// if gitCommit is not set that way, the vcs settings recorded by the go toolchain are used.
var (
	version      = "latest"
	metadata     = ""
	gitCommit    = ""
	gitTreeState = ""
)

// BuildInfo describes the running decorate binary.
type BuildInfo struct {
	Version      string `json:"version,omitempty"`
	GitCommit    string `json:"gitCommit,omitempty"`
	GitTreeState string `json:"gitTreeState,omitempty"`
	GoVersion    string `json:"goVersion,omitempty"`
	Platform     string `json:"platform,omitempty"`
}

// Return the semantic version, including build metadata (if any).
func GetVersion() string {
	if metadata != "" {
		return version + "+" + metadata
	}
	return version
}

// Return the complete build info.
func GetBuildInfo() BuildInfo {
	buildInfo := BuildInfo{
		Version:      GetVersion(),
		GitCommit:    gitCommit,
		GitTreeState: gitTreeState,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
	}
	if buildInfo.GitCommit == "" {
		buildInfo.GitCommit, buildInfo.GitTreeState = vcsSettings()
	}
	return buildInfo
}

func vcsSettings() (commit string, treeState string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", ""
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			commit = setting.Value
		case "vcs.modified":
			if setting.Value == "true" {
				treeState = "dirty"
			} else {
				treeState = "clean"
			}
		}
	}
	return commit, treeState
}
