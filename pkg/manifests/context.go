/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"

	"github.com/sap/manifest-decoration-runtime/pkg/project"
)

type projectContextKey struct{}
type vcsOptionsContextKey struct{}

// Create new context with project facts added as value.
func NewContextWithProject(ctx context.Context, p *project.Project) context.Context {
	return context.WithValue(ctx, projectContextKey{}, p)
}

// Create new context with version control options added as value.
func NewContextWithVcsOptions(ctx context.Context, options VcsOptions) context.Context {
	return context.WithValue(ctx, vcsOptionsContextKey{}, options)
}

// Retrieve project facts from given context; returns nil if the context holds no project.
func ProjectFromContext(ctx context.Context) *project.Project {
	if p, ok := ctx.Value(projectContextKey{}).(*project.Project); ok {
		return p
	}
	return nil
}

// Retrieve version control options from given context; returns the zero options if the context holds none.
func VcsOptionsFromContext(ctx context.Context) VcsOptions {
	if options, ok := ctx.Value(vcsOptionsContextKey{}).(VcsOptions); ok {
		return options
	}
	return VcsOptions{}
}
