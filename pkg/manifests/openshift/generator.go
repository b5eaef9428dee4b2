/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package openshift

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
	Key   = "openshift"
	Order = 300
)

// Runtime of the application (e.g. golang, java); rendered into the openshift runtime label if present.
var RuntimeType = config.NewStringKey("RUNTIME_TYPE")

// Generator produces openshift manifests (by default a DeploymentConfig, plus Service and Route).
type Generator struct{}

var _ manifests.Generator = &Generator{}

// Create a new openshift Generator.
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
	return configType == config.TypeOpenshift
}

func (g *Generator) FallbackConfiguration(p *project.Project) *config.Supplier {
	return config.NewSupplier(&config.OpenshiftConfig{DeploymentTrigger: true}).
		WithConfigurator(config.ApplyDefaults()).
		WithConfigurator(config.ApplyProjectInfo(p)).
		WithDerivation(config.ApplyDeploymentKind(config.DeploymentKindDeploymentConfig)).
		WithDerivation(config.ApplyImageInfo()).
		WithAttributeKeys(RuntimeType)
}

func (g *Generator) Generate(ctx context.Context, r *registry.Registry, configuration config.Configuration) error {
	openshiftConfig, ok := configuration.(*config.OpenshiftConfig)
	if !ok {
		return fmt.Errorf("unexpected configuration type %T", configuration)
	}
	c := &openshiftConfig.Config
	kind := c.DeploymentKind

	group, ok := manifests.BeginGeneration(ctx, r, Key, Key)
	if !ok {
		return nil
	}

	runtimeType, _ := RuntimeType.Get(c)
	imageStreamTag := c.Image.Name + ":" + c.Image.Version
	if err := group.Decorate(
		decorators.AddWorkloadResource(kind, c),
		decorators.When(func() bool { return resources.HasNumberedPorts(c) }, "numbered ports configured", decorators.AddServiceResource(c)),
		decorators.When(func() bool { return c.Headless }, "headless", decorators.ApplyHeadless(c.Name)),
		decorators.When(func() bool { return openshiftConfig.Route.Expose && resources.HasNumberedPorts(c) }, "route exposed", decorators.AddRoute(openshiftConfig)),
		decorators.When(func() bool { return openshiftConfig.DeploymentTrigger }, "deployment trigger", decorators.ApplyDeploymentTrigger(c.Name, imageStreamTag)),
		decorators.WhenAttribute(c, RuntimeType, decorators.AddLabel(config.Label{Key: types.LabelKeyRuntime, Value: runtimeType})),
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

	if err := manifests.AddCommonDecorators(ctx, group, openshiftConfig); err != nil {
		return err
	}

	// openshift renders provenance through its own annotation keys
	p := manifests.ProjectFromContext(ctx)
	options := manifests.VcsOptionsFromContext(ctx)
	return group.Decorate(
		decorators.RemoveAnnotation(types.AnnotationKeyVcsUrl),
		decorators.AddProvenanceAnnotation(config.Annotation{Key: types.AnnotationKeyOpenshiftVcsUri, Value: p.RemoteUrl(options.Remote, options.HttpsPreferred)}),
		decorators.AddProvenanceAnnotation(config.Annotation{Key: types.AnnotationKeyOpenshiftVcsRef, Value: p.CommitId()}),
	)
}
