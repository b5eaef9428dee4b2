/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/registry"
)

// Manifest generator interface.
// A generator is responsible for exactly one configuration type; it populates the resource group of its
// deployment target by registering decorators. Generators must not perform any I/O; project facts and
// version control options are available through the context (see ProjectFromContext(), VcsOptionsFromContext()).
type Generator interface {
	// Position of the generator in the run; generators with lower order run first.
	Order() int
	// Unique key of the generator; also used as name of the generated resource group.
	Key() string
	// Whether the generator handles configurations of the given type.
	Accepts(configType config.Type) bool
	// Return the supplier of the fallback configuration, based on the given project facts (which may be nil).
	FallbackConfiguration(p *project.Project) *config.Supplier
	// Register decorators for the given (composed) configuration.
	Generate(ctx context.Context, r *registry.Registry, configuration config.Configuration) error
}

// Target describes one deployment target of a generation run, by configuration type and user supplied fragments.
type Target struct {
	Type      config.Type
	Fragments []*config.Fragment
}

// Result of a generation run.
type Result struct {
	// Finalized documents per group.
	Groups map[string][]client.Object
	// Group names, in the order the groups were created.
	GroupOrder []string
}

// Documents returns the documents of the given group (or nil if the group does not exist).
func (r *Result) Documents(group string) []client.Object {
	return r.Groups[group]
}

// VcsOptions control how version control information is rendered into the manifests.
type VcsOptions struct {
	// Name of the git remote whose URL is recorded; defaults to origin.
	Remote string
	// Whether ssh remote URLs are rewritten to https.
	HttpsPreferred bool
}
