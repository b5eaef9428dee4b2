/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package project

import (
	"os"
	"path"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/mod/modfile"
	git "gopkg.in/src-d/go-git.v4"
)

const defaultVersion = "latest"

// ProbeOptions tweak the project probe.
type ProbeOptions struct {
	// Override for the build name (otherwise derived from go.mod or the root directory name).
	Name string
	// Override for the build version (otherwise "latest").
	Version string
}

// Probe inspects the project located at root (or one of its parents, for the git repository).
// Version control information is optional: if no repository is found, or it cannot be read,
// ScmInfo stays nil and provenance facts degrade to types.Unknown.
// Errors are only returned if root itself is not accessible.
func Probe(root string, options ProbeOptions) (*Project, error) {
	absoluteRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "error resolving project root %s", root)
	}
	if info, err := os.Stat(absoluteRoot); err != nil {
		return nil, errors.Wrapf(err, "error reading project root %s", absoluteRoot)
	} else if !info.IsDir() {
		return nil, errors.Errorf("project root %s is not a directory", absoluteRoot)
	}

	p := &Project{
		Root:      absoluteRoot,
		BuildInfo: readBuildInfo(absoluteRoot),
		ScmInfo:   readScmInfo(absoluteRoot),
	}
	if options.Name != "" {
		p.BuildInfo.Name = options.Name
	}
	if options.Version != "" {
		p.BuildInfo.Version = options.Version
	}
	return p, nil
}

func readBuildInfo(root string) BuildInfo {
	buildInfo := BuildInfo{
		Name:    filepath.Base(root),
		Version: defaultVersion,
	}
	raw, err := os.ReadFile(filepath.Join(root, "go.mod"))
	if err != nil {
		return buildInfo
	}
	if modulePath := modfile.ModulePath(raw); modulePath != "" {
		buildInfo.Name = path.Base(modulePath)
		buildInfo.Descriptor = "go.mod"
	}
	return buildInfo
}

func readScmInfo(root string) *ScmInfo {
	repository, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}

	scmInfo := &ScmInfo{Remotes: make(map[string]string)}
	if remotes, err := repository.Remotes(); err == nil {
		for _, remote := range remotes {
			config := remote.Config()
			if len(config.URLs) > 0 {
				scmInfo.Remotes[config.Name] = config.URLs[0]
			}
		}
	}
	if head, err := repository.Head(); err == nil {
		scmInfo.Commit = head.Hash().String()
		if head.Name().IsBranch() {
			scmInfo.Branch = head.Name().Short()
		}
	}
	return scmInfo
}
