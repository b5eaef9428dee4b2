/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"strconv"

	"k8s.io/apimachinery/pkg/runtime"

	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// Type identifies a configuration variant (one per deployment target).
type Type string

const (
	TypeKubernetes Type = "kubernetes"
	TypeOpenshift  Type = "openshift"
)

// Types lists all configuration types.
var Types = []Type{TypeKubernetes, TypeOpenshift}

// Configuration is implemented by all configuration variants.
type Configuration interface {
	types.Unstructurable
	// Return the configuration variant.
	GetType() Type
	// Return the base record shared by all variants.
	GetConfig() *Config
}

// Config is the base configuration record.
type Config struct {
	// Application name; used as name of all generated resources.
	Name string `json:"name" required:"true"`
	// Name of the application group the application belongs to.
	PartOf string `json:"partOf,omitempty"`
	// Application version.
	Version string `json:"version" required:"true"`
	// Number of desired pods.
	Replicas int32 `json:"replicas"`
	// Kind of the workload resource; empty means the variant's default.
	DeploymentKind DeploymentKind `json:"deploymentKind,omitempty"`
	// Whether the generated service is headless.
	Headless bool `json:"headless,omitempty"`
	// Type of the generated service.
	ServiceType string `json:"serviceType,omitempty"`
	// Container image coordinates.
	Image ImageConfig `json:"image"`
	Ports          []Port       `json:"ports,omitempty"`
	InitContainers []Container  `json:"initContainers,omitempty"`
	Labels         []Label      `json:"labels,omitempty"`
	Annotations    []Annotation `json:"annotations,omitempty"`
	// Extension attributes not known to the base schema, see ConfigKey.
	Attributes Attributes `json:"attributes,omitempty"`
}

// ImageConfig describes the application's container image.
type ImageConfig struct {
	Registry string `json:"registry,omitempty"`
	Group    string `json:"group,omitempty"`
	Name     string `json:"name" required:"true"`
	Version  string `json:"version" required:"true"`
}

// Reference returns the full image reference, e.g. registry.example.io/group/name:version.
func (i ImageConfig) Reference() string {
	reference := i.Name + ":" + i.Version
	if i.Group != "" {
		reference = i.Group + "/" + reference
	}
	if i.Registry != "" {
		reference = i.Registry + "/" + reference
	}
	return reference
}

// Port describes a container port.
type Port struct {
	Name          string `json:"name,omitempty"`
	ContainerPort int32  `json:"containerPort,omitempty"`
	HostPort      int32  `json:"hostPort,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
	// HTTP path served on this port; used when exposing the port.
	Path string `json:"path,omitempty"`
}

// Key returns the identity of the port (its number, or its name if no number is set).
func (p Port) Key() string {
	if p.ContainerPort > 0 {
		return strconv.Itoa(int(p.ContainerPort))
	}
	return "name:" + p.Name
}

// EnvVar describes an environment variable of a container.
type EnvVar struct {
	Name  string `json:"name" required:"true"`
	Value string `json:"value,omitempty"`
}

// Container describes an (init) container.
type Container struct {
	Name    string   `json:"name" required:"true"`
	Image   string   `json:"image" required:"true"`
	Command []string `json:"command,omitempty"`
	Args    []string `json:"args,omitempty"`
	Env     []EnvVar `json:"env,omitempty"`
}

// Label describes a label; if Kinds is non-empty, the label is added to resources of these kinds only.
type Label struct {
	Key   string   `json:"key" required:"true"`
	Value string   `json:"value"`
	Kinds []string `json:"kinds,omitempty"`
}

// Annotation describes an annotation; if Kinds is non-empty, the annotation is added to resources of these kinds only.
type Annotation struct {
	Key   string   `json:"key" required:"true"`
	Value string   `json:"value"`
	Kinds []string `json:"kinds,omitempty"`
}

// KubernetesConfig is the configuration of the plain kubernetes deployment target.
type KubernetesConfig struct {
	Config `json:",inline"`
}

var _ Configuration = &KubernetesConfig{}

func (c *KubernetesConfig) GetType() Type {
	return TypeKubernetes
}

func (c *KubernetesConfig) GetConfig() *Config {
	return &c.Config
}

func (c *KubernetesConfig) ToUnstructured() map[string]any {
	return toUnstructured(c)
}

// OpenshiftConfig is the configuration of the openshift deployment target.
type OpenshiftConfig struct {
	Config `json:",inline"`
	// Route settings.
	Route Route `json:"route"`
	// Whether the workload is redeployed on image (stream) changes; only effective for DeploymentConfigs.
	DeploymentTrigger bool `json:"deploymentTrigger"`
}

// Route describes how the application is exposed on openshift.
type Route struct {
	Expose     bool   `json:"expose,omitempty"`
	Host       string `json:"host,omitempty"`
	Path       string `json:"path,omitempty"`
	TargetPort string `json:"targetPort,omitempty"`
}

var _ Configuration = &OpenshiftConfig{}

func (c *OpenshiftConfig) GetType() Type {
	return TypeOpenshift
}

func (c *OpenshiftConfig) GetConfig() *Config {
	return &c.Config
}

func (c *OpenshiftConfig) ToUnstructured() map[string]any {
	return toUnstructured(c)
}

func (c *OpenshiftConfig) applyFragment(fragment *Fragment) {
	route := fragment.Route
	if route.Expose != nil {
		c.Route.Expose = *route.Expose
	}
	if route.Host != nil {
		c.Route.Host = *route.Host
	}
	if route.Path != nil {
		c.Route.Path = *route.Path
	}
	if route.TargetPort != nil {
		c.Route.TargetPort = *route.TargetPort
	}
	if fragment.DeploymentTrigger != nil {
		c.DeploymentTrigger = *fragment.DeploymentTrigger
	}
}

func toUnstructured(c Configuration) map[string]any {
	result, err := runtime.DefaultUnstructuredConverter.ToUnstructured(c)
	if err != nil {
		// configuration records consist of JSON values only
		panic("this cannot happen")
	}
	return result
}
