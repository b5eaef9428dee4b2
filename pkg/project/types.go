/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// Project holds read-only facts about the source project; it is resolved once per generation run.
type Project struct {
	// Root directory of the project.
	Root string `json:"root"`
	// Build information, derived from the project descriptor (if any).
	BuildInfo BuildInfo `json:"buildInfo"`
	// Version control information; nil if the project is not under (git) version control.
	ScmInfo *ScmInfo `json:"scmInfo,omitempty"`
}

// BuildInfo describes the artifact built from the project.
type BuildInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	// Name of the project descriptor the build information was read from (e.g. go.mod); empty if none.
	Descriptor string `json:"descriptor,omitempty"`
}

// ScmInfo describes the version control state of the project.
type ScmInfo struct {
	// Remote URLs by remote name (first URL of each remote).
	Remotes map[string]string `json:"remotes,omitempty"`
	// Current branch; empty if HEAD is detached.
	Branch string `json:"branch,omitempty"`
	// Commit id of HEAD.
	Commit string `json:"commit,omitempty"`
}

var _ types.Unstructurable = &Project{}

// Return the project facts as string-keyed map (e.g. for usage as template data).
func (p *Project) ToUnstructured() map[string]any {
	result := map[string]any{
		"root":    p.Root,
		"name":    p.BuildInfo.Name,
		"version": p.BuildInfo.Version,
	}
	if p.ScmInfo != nil {
		remotes := make(map[string]any)
		for name, url := range p.ScmInfo.Remotes {
			remotes[name] = url
		}
		result["scm"] = map[string]any{
			"remotes": remotes,
			"branch":  p.ScmInfo.Branch,
			"commit":  p.ScmInfo.Commit,
		}
	}
	return result
}

// CommitId returns the HEAD commit id, or types.Unknown.
func (p *Project) CommitId() string {
	if p == nil || p.ScmInfo == nil || p.ScmInfo.Commit == "" {
		return types.Unknown
	}
	return p.ScmInfo.Commit
}

// RemoteUrl returns the (sanitized) URL of the given remote, or types.Unknown if it cannot be resolved.
// If httpsPreferred is true, ssh style remotes (git@host:org/repo.git, ssh://...) are rewritten to https.
func (p *Project) RemoteUrl(remote string, httpsPreferred bool) string {
	if p == nil || p.ScmInfo == nil {
		return types.Unknown
	}
	if remote == "" {
		remote = types.DefaultRemote
	}
	url := p.ScmInfo.Remotes[remote]
	if url == "" {
		return types.Unknown
	}
	return sanitizeUrl(url, httpsPreferred)
}
