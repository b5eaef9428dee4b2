/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package resources_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/resources"
)

func document(kind string, name string, value string) *unstructured.Unstructured {
	document := &unstructured.Unstructured{Object: map[string]any{"value": value}}
	document.SetAPIVersion("v1")
	document.SetKind(kind)
	document.SetName(name)
	return document
}

var _ = Describe("testing: group.go", func() {
	var group *resources.Group

	BeforeEach(func() {
		group = resources.NewGroup("test")
		group.Put(document("Service", "a", "1"))
		group.Put(document("Deployment", "a", "1"))
		group.Put(document("Service", "b", "1"))
	})

	It("should keep documents unique by key, replacing in place", func() {
		Expect(group.Name()).To(Equal("test"))
		Expect(group.Put(document("Deployment", "a", "2"))).To(BeTrue())
		Expect(group.Len()).To(Equal(3))
		Expect(group.Get(resources.Key{Kind: "Deployment", Name: "a"}).Object["value"]).To(Equal("2"))
		var keys []string
		for _, object := range group.Documents() {
			keys = append(keys, resources.KeyOf(object.(*unstructured.Unstructured)).String())
		}
		Expect(keys).To(Equal([]string{"Service/a", "Deployment/a", "Service/b"}))
	})

	It("should remove documents", func() {
		Expect(group.Remove(resources.Key{Kind: "Service", Name: "a"})).To(BeTrue())
		Expect(group.Remove(resources.Key{Kind: "Service", Name: "a"})).To(BeFalse())
		Expect(group.Len()).To(Equal(2))
		Expect(group.Get(resources.Key{Kind: "Service", Name: "a"})).To(BeNil())
	})

	It("should select live documents", func() {
		services := group.Select(func(document *unstructured.Unstructured) bool { return document.GetKind() == "Service" })
		Expect(services).To(HaveLen(2))
		services[0].Object["value"] = "changed"
		Expect(group.Get(resources.Key{Kind: "Service", Name: "a"}).Object["value"]).To(Equal("changed"))
	})

	It("should return copies of the documents", func() {
		documents := group.Documents()
		documents[0].SetName("changed")
		Expect(group.Get(resources.Key{Kind: "Service", Name: "a"})).NotTo(BeNil())
	})
})
