/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/sap/manifest-decoration-runtime/pkg/project"
)

// ApplyDefaults fills built-in defaults (one replica, ClusterIP service) into unset fields.
func ApplyDefaults() Configurator {
	return ConfiguratorFunc(func(configuration Configuration) {
		c := configuration.GetConfig()
		if c.Replicas == 0 {
			c.Replicas = 1
		}
		if c.ServiceType == "" {
			c.ServiceType = "ClusterIP"
		}
	})
}

// ApplyProjectInfo fills name, version and part-of from the project's build information.
func ApplyProjectInfo(p *project.Project) Configurator {
	return ConfiguratorFunc(func(configuration Configuration) {
		if p == nil {
			return
		}
		c := configuration.GetConfig()
		if c.Name == "" {
			c.Name = p.BuildInfo.Name
		}
		if c.Version == "" {
			c.Version = p.BuildInfo.Version
		}
		if c.PartOf == "" {
			c.PartOf = p.BuildInfo.Name
		}
	})
}

// ApplyImageInfo derives the image coordinates from application name and version (if unset).
func ApplyImageInfo() Configurator {
	return ConfiguratorFunc(func(configuration Configuration) {
		c := configuration.GetConfig()
		if c.Image.Name == "" {
			c.Image.Name = c.Name
		}
		if c.Image.Version == "" {
			c.Image.Version = c.Version
		}
	})
}

// ApplyDeploymentKind sets the deployment kind to the given default, if unset.
func ApplyDeploymentKind(kind DeploymentKind) Configurator {
	return ConfiguratorFunc(func(configuration Configuration) {
		c := configuration.GetConfig()
		c.DeploymentKind = c.DeploymentKind.OrDefault(kind)
	})
}
