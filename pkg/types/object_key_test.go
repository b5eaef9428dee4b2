/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package types_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

func document(apiVersion string, kind string, namespace string, name string) *unstructured.Unstructured {
	object := &unstructured.Unstructured{}
	object.SetAPIVersion(apiVersion)
	object.SetKind(kind)
	object.SetNamespace(namespace)
	object.SetName(name)
	return object
}

var _ = Describe("testing: object_key.go", func() {
	DescribeTable("rendering object keys",
		func(object *unstructured.Unstructured, expected string) {
			Expect(types.ObjectKeyToString(object)).To(Equal(expected))
		},
		Entry("core group", document("v1", "Service", "", "demo"), "Service/demo"),
		Entry("named group", document("apps/v1", "Deployment", "", "demo"), "Deployment.apps/demo"),
		Entry("namespaced", document("route.openshift.io/v1", "Route", "default", "demo"), "Route.route.openshift.io/default/demo"),
	)
})
