/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/drone/envsubst"
	"github.com/pkg/errors"

	kyaml "sigs.k8s.io/yaml"

	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// Fragment is a partial configuration, as contributed by users.
// Scalar fields are present if non-nil; collections are merged by identity key.
type Fragment struct {
	Name              *string         `json:"name,omitempty"`
	PartOf            *string         `json:"partOf,omitempty"`
	Version           *string         `json:"version,omitempty"`
	Replicas          *int32          `json:"replicas,omitempty"`
	DeploymentKind    *DeploymentKind `json:"deploymentKind,omitempty"`
	Headless          *bool           `json:"headless,omitempty"`
	ServiceType       *string         `json:"serviceType,omitempty"`
	Image             ImageFragment   `json:"image,omitempty"`
	Ports             []Port          `json:"ports,omitempty"`
	InitContainers    []Container     `json:"initContainers,omitempty"`
	Labels            []Label         `json:"labels,omitempty"`
	Annotations       []Annotation    `json:"annotations,omitempty"`
	Attributes        Attributes      `json:"attributes,omitempty"`
	Route             RouteFragment   `json:"route,omitempty"`
	DeploymentTrigger *bool           `json:"deploymentTrigger,omitempty"`
}

// ImageFragment is the partial counterpart of ImageConfig.
type ImageFragment struct {
	Registry *string `json:"registry,omitempty"`
	Group    *string `json:"group,omitempty"`
	Name     *string `json:"name,omitempty"`
	Version  *string `json:"version,omitempty"`
}

// RouteFragment is the partial counterpart of Route.
type RouteFragment struct {
	Expose     *bool   `json:"expose,omitempty"`
	Host       *string `json:"host,omitempty"`
	Path       *string `json:"path,omitempty"`
	TargetPort *string `json:"targetPort,omitempty"`
}

// LoadFragment decodes a fragment from yaml or json. Before decoding, ${VAR} style references are substituted
// using lookup; if lookup is nil, references are substituted with the empty string.
// Unknown fields are rejected.
func LoadFragment(raw []byte, lookup func(string) string) (*Fragment, error) {
	if lookup == nil {
		lookup = func(string) string { return "" }
	}
	substituted, err := envsubst.Eval(string(raw), lookup)
	if err != nil {
		return nil, types.NewConfigurationError(errors.Wrap(err, "error substituting variables"))
	}
	fragment := &Fragment{}
	if err := kyaml.UnmarshalStrict([]byte(substituted), fragment); err != nil {
		return nil, types.NewConfigurationError(errors.Wrap(err, "error decoding configuration fragment"))
	}
	return fragment, nil
}

// Ref returns a pointer to x; convenient for building fragments in code.
func Ref[T any](x T) *T {
	return &x
}

func (f *Fragment) applyScalarsTo(c *Config) {
	if f.Name != nil {
		c.Name = *f.Name
	}
	if f.PartOf != nil {
		c.PartOf = *f.PartOf
	}
	if f.Version != nil {
		c.Version = *f.Version
	}
	if f.Replicas != nil {
		c.Replicas = *f.Replicas
	}
	if f.DeploymentKind != nil {
		c.DeploymentKind = *f.DeploymentKind
	}
	if f.Headless != nil {
		c.Headless = *f.Headless
	}
	if f.ServiceType != nil {
		c.ServiceType = *f.ServiceType
	}
	if f.Image.Registry != nil {
		c.Image.Registry = *f.Image.Registry
	}
	if f.Image.Group != nil {
		c.Image.Group = *f.Image.Group
	}
	if f.Image.Name != nil {
		c.Image.Name = *f.Image.Name
	}
	if f.Image.Version != nil {
		c.Image.Version = *f.Image.Version
	}
}
