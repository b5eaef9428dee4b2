/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/decorators"
	"github.com/sap/manifest-decoration-runtime/pkg/registry"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// every deployment kind has exactly one replica decorator
var replicaDecorators = map[config.DeploymentKind]func(name string, replicas int32) decorators.Decorator{
	config.DeploymentKindDeployment: func(name string, replicas int32) decorators.Decorator {
		return decorators.ApplyReplicas(config.DeploymentKindDeployment, name, replicas)
	},
	config.DeploymentKindStatefulSet: func(name string, replicas int32) decorators.Decorator {
		return decorators.ApplyReplicas(config.DeploymentKindStatefulSet, name, replicas)
	},
	config.DeploymentKindDeploymentConfig: func(name string, replicas int32) decorators.Decorator {
		return decorators.ApplyReplicas(config.DeploymentKindDeploymentConfig, name, replicas)
	},
}

// Ensure the group of the given generator, and record that the generator ran against it.
// The returned bool is false if the generator already ran against the group in this run; in that case,
// callers should not register any decorators.
func BeginGeneration(ctx context.Context, r *registry.Registry, group string, generator string) (*registry.GroupHandle, bool) {
	handle := r.EnsureGroup(group)
	if !r.MarkGenerated(group, generator) {
		log.FromContext(ctx).V(1).Info("group already generated; skipping", "group", group, "generator", generator)
		return handle, false
	}
	return handle, true
}

// Register the decorators shared by all generators:
//   - labels and annotations from the configuration
//   - the replica count, for the configured deployment kind (only if it differs from one)
//   - provenance annotations (version control url and commit id of the project found in the context).
func AddCommonDecorators(ctx context.Context, group *registry.GroupHandle, configuration config.Configuration) error {
	c := configuration.GetConfig()

	for _, label := range c.Labels {
		if err := group.Decorate(decorators.AddLabel(label)); err != nil {
			return err
		}
	}
	for _, annotation := range c.Annotations {
		if err := group.Decorate(decorators.AddAnnotation(annotation)); err != nil {
			return err
		}
	}

	if c.Replicas != 1 {
		replicaDecorator, ok := replicaDecorators[c.DeploymentKind]
		if !ok {
			return types.NewConfigurationError(fmt.Errorf("invalid deployment kind: %s", c.DeploymentKind), "deploymentKind")
		}
		if err := group.Decorate(replicaDecorator(c.Name, c.Replicas)); err != nil {
			return err
		}
	}

	p := ProjectFromContext(ctx)
	options := VcsOptionsFromContext(ctx)
	if err := group.Decorate(
		decorators.AddVcsUrlAnnotation(p.RemoteUrl(options.Remote, options.HttpsPreferred)),
		decorators.AddCommitIdAnnotation(p.CommitId()),
	); err != nil {
		return errors.Wrapf(err, "error registering provenance decorators for group %s", group.Name())
	}

	return nil
}
