/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iancoleman/strcase"
)

// DeploymentKind selects the workload resource kind generated for an application.
type DeploymentKind string

const (
	DeploymentKindDeployment       DeploymentKind = "Deployment"
	DeploymentKindStatefulSet      DeploymentKind = "StatefulSet"
	DeploymentKindDeploymentConfig DeploymentKind = "DeploymentConfig"
)

// DeploymentKinds lists all valid deployment kinds.
var DeploymentKinds = []DeploymentKind{
	DeploymentKindDeployment,
	DeploymentKindStatefulSet,
	DeploymentKindDeploymentConfig,
}

// ParseDeploymentKind parses a deployment kind in a lenient way; for example, Deployment, deployment, stateful-set,
// stateful_set and statefulset are all accepted. The empty string is returned unchanged (meaning: default kind).
func ParseDeploymentKind(s string) (DeploymentKind, error) {
	switch strings.ReplaceAll(strcase.ToKebab(strings.TrimSpace(s)), "-", "") {
	case "":
		return "", nil
	case "deployment":
		return DeploymentKindDeployment, nil
	case "statefulset":
		return DeploymentKindStatefulSet, nil
	case "deploymentconfig":
		return DeploymentKindDeploymentConfig, nil
	default:
		return "", fmt.Errorf("invalid deployment kind: %s", s)
	}
}

// OrDefault returns k, or the given default if k is empty.
func (k DeploymentKind) OrDefault(defaultKind DeploymentKind) DeploymentKind {
	if k == "" {
		return defaultKind
	}
	return k
}

func (k *DeploymentKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseDeploymentKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
