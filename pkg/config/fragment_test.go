/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

var _ = Describe("testing: fragment.go", func() {
	lookup := func(name string) string {
		return map[string]string{"IMAGE_TAG": "1.2.3", "REPLICAS": "2"}[name]
	}

	It("should decode fragments after substituting variables", func() {
		fragment, err := config.LoadFragment([]byte(`
replicas: ${REPLICAS}
deploymentKind: stateful-set
image:
  version: ${IMAGE_TAG}
ports:
- containerPort: 8080
  name: http
labels:
- key: team
  value: ${TEAM}
attributes:
  RUNTIME_TYPE: go
`), lookup)
		Expect(err).NotTo(HaveOccurred())
		Expect(*fragment.Replicas).To(Equal(int32(2)))
		Expect(*fragment.DeploymentKind).To(Equal(config.DeploymentKindStatefulSet))
		Expect(*fragment.Image.Version).To(Equal("1.2.3"))
		Expect(fragment.Image.Name).To(BeNil())
		Expect(fragment.Name).To(BeNil())
		Expect(fragment.Ports).To(Equal([]config.Port{{ContainerPort: 8080, Name: "http"}}))
		Expect(fragment.Labels).To(Equal([]config.Label{{Key: "team", Value: ""}}))
		Expect(fragment.Attributes).To(HaveKeyWithValue("RUNTIME_TYPE", "go"))
	})

	It("should substitute unset variables with the empty string if no lookup is given", func() {
		fragment, err := config.LoadFragment([]byte("name: demo${SUFFIX}"), nil)
		Expect(err).NotTo(HaveOccurred())
		Expect(*fragment.Name).To(Equal("demo"))
	})

	It("should reject unknown fields", func() {
		_, err := config.LoadFragment([]byte("replica: 3"), lookup)
		var configurationError types.ConfigurationError
		Expect(errors.As(err, &configurationError)).To(BeTrue())
	})

	It("should reject invalid deployment kinds", func() {
		_, err := config.LoadFragment([]byte("deploymentKind: DaemonSet"), lookup)
		Expect(err).To(HaveOccurred())
	})
})
