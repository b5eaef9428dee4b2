/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package kubernetes

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/decorators"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/registry"
	"github.com/sap/manifest-decoration-runtime/pkg/resources"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

const (
	Key   = "kubernetes"
	Order = 200
)

// Generator produces plain kubernetes manifests (a Deployment or StatefulSet, plus a Service if ports are configured).
type Generator struct{}

var _ manifests.Generator = &Generator{}

// Create a new kubernetes Generator.
func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Order() int {
	return Order
}

func (g *Generator) Key() string {
	return Key
}

func (g *Generator) Accepts(configType config.Type) bool {
	return configType == config.TypeKubernetes
}

func (g *Generator) FallbackConfiguration(p *project.Project) *config.Supplier {
	return config.NewSupplier(&config.KubernetesConfig{}).
		WithConfigurator(config.ApplyDefaults()).
		WithConfigurator(config.ApplyProjectInfo(p)).
		WithDerivation(config.ApplyDeploymentKind(config.DeploymentKindDeployment)).
		WithDerivation(config.ApplyImageInfo())
}

func (g *Generator) Generate(ctx context.Context, r *registry.Registry, configuration config.Configuration) error {
	kubernetesConfig, ok := configuration.(*config.KubernetesConfig)
	if !ok {
		return fmt.Errorf("unexpected configuration type %T", configuration)
	}
	c := &kubernetesConfig.Config

	kind := c.DeploymentKind
	if kind == config.DeploymentKindDeploymentConfig {
		return types.NewConfigurationError(fmt.Errorf("deployment kind %s is not supported on plain kubernetes", kind), "deploymentKind")
	}

	group, ok := manifests.BeginGeneration(ctx, r, Key, Key)
	if !ok {
		return nil
	}

	if err := group.Decorate(
		decorators.AddWorkloadResource(kind, c),
		decorators.When(func() bool { return resources.HasNumberedPorts(c) }, "numbered ports configured", decorators.AddServiceResource(c)),
		decorators.When(func() bool { return c.Headless }, "headless", decorators.ApplyHeadless(c.Name)),
	); err != nil {
		return err
	}
	for _, container := range c.InitContainers {
		decorator, err := decorators.AddInitContainer(c.Name, container)
		if err != nil {
			return errors.Wrapf(err, "error building init container %s", container.Name)
		}
		if err := group.Decorate(decorator); err != nil {
			return err
		}
	}

	return manifests.AddCommonDecorators(ctx, group, kubernetesConfig)
}
