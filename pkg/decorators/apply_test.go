/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/decorators"
	"github.com/sap/manifest-decoration-runtime/pkg/resources"
)

type renameDecorator struct {
	from string
	to   string
}

func (d renameDecorator) Family() decorators.Family {
	return "Rename"
}

func (d renameDecorator) Tier() decorators.Tier {
	return decorators.TierModify
}

func (d renameDecorator) Selector() decorators.Selector {
	return decorators.NewSelector(d.from)
}

func (d renameDecorator) Key() string {
	return "rename:" + d.from
}

type unknownDecorator struct {
	renameDecorator
}

func (d unknownDecorator) Family() decorators.Family {
	return "Unknown"
}

var _ = Describe("testing: apply.go", func() {
	var c *config.Config
	var group *resources.Group

	BeforeEach(func() {
		c = testConfig()
		group = testGroup(c, config.DeploymentKindDeployment)
	})

	It("should create resources, and replace existing resources with the same key", func() {
		decorator := decorators.AddServiceResource(c)
		result, err := decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1}))
		Expect(group.Len()).To(Equal(2))

		service := group.Get(resources.Key{Kind: "Service", Name: "demo"})
		Expect(unstructured.SetNestedField(service.Object, "None", "spec", "clusterIP")).To(Succeed())
		result, err = decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1, Changed: 1}))
		Expect(group.Len()).To(Equal(2))
		Expect(hasField(group.Get(resources.Key{Kind: "Service", Name: "demo"}), "spec", "clusterIP")).To(BeFalse())
	})

	It("should reject built documents not matching the declared key", func() {
		decorator := decorators.CreateResource{
			Resource: resources.Key{Kind: "Service", Name: "other"},
			Build: func() (*unstructured.Unstructured, error) {
				return resources.NewService(c)
			},
		}
		_, err := decorators.Apply(group, decorator)
		Expect(err).To(HaveOccurred())
	})

	It("should add elements idempotently", func() {
		decorator := decorators.AddLabel(config.Label{Key: "team", Value: "a"})
		result, err := decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 2, Changed: 2}))
		snapshot := group.Documents()

		result, err = decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 2}))
		Expect(group.Documents()).To(Equal(snapshot))
	})

	It("should update elements with a different value", func() {
		_, err := decorators.Apply(group, decorators.AddLabel(config.Label{Key: "team", Value: "a"}))
		Expect(err).NotTo(HaveOccurred())
		result, err := decorators.Apply(group, decorators.AddLabel(config.Label{Key: "team", Value: "b", Kinds: []string{"Service"}}))
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1, Changed: 1}))
		Expect(nestedString(group.Get(resources.Key{Kind: "Service", Name: "demo"}), "metadata", "labels", "team")).To(Equal("b"))
		Expect(nestedString(group.Get(resources.Key{Kind: "Deployment", Name: "demo"}), "metadata", "labels", "team")).To(Equal("a"))
	})

	It("should replace fields idempotently", func() {
		decorator := decorators.ApplyReplicas(config.DeploymentKindDeployment, "demo", 3)
		result, err := decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1, Changed: 1}))
		result, err = decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1}))
		replicas, _, err := unstructured.NestedInt64(group.Get(resources.Key{Kind: "Deployment", Name: "demo"}).Object, "spec", "replicas")
		Expect(err).NotTo(HaveOccurred())
		Expect(replicas).To(Equal(int64(3)))
	})

	It("should remove elements, and drop maps becoming empty", func() {
		_, err := decorators.Apply(group, decorators.AddAnnotation(config.Annotation{Key: "note", Value: "x"}))
		Expect(err).NotTo(HaveOccurred())
		result, err := decorators.Apply(group, decorators.RemoveAnnotation("note"))
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 2, Changed: 2}))
		for _, document := range group.Select(func(*unstructured.Unstructured) bool { return true }) {
			Expect(hasField(document, "metadata", "annotations")).To(BeFalse())
		}
		result, err = decorators.Apply(group, decorators.RemoveAnnotation("note"))
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 2}))
	})

	It("should report decorators without target", func() {
		result, err := decorators.Apply(group, decorators.ApplyReplicas(config.DeploymentKindStatefulSet, "demo", 3))
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Matched).To(BeZero())
	})

	It("should apply conditional decorators only if their condition holds", func() {
		enabled := false
		decorator := decorators.When(func() bool { return enabled }, "enabled", decorators.ApplyHeadless("demo"))
		Expect(decorator.Tier()).To(Equal(decorators.TierModify))
		result, err := decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Disabled: true}))
		Expect(hasField(group.Get(resources.Key{Kind: "Service", Name: "demo"}), "spec", "clusterIP")).To(BeFalse())

		enabled = true
		result, err = decorators.Apply(group, decorator)
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 1, Changed: 1}))
		Expect(nestedString(group.Get(resources.Key{Kind: "Service", Name: "demo"}), "spec", "clusterIP")).To(Equal("None"))
	})

	It("should reject conditionals without wrapped decorator", func() {
		decorator := decorators.When(func() bool { return true }, "empty", nil)
		Expect(decorator.Tier()).To(Equal(decorators.TierModify))
		Expect(decorator.Key()).To(Equal("when(empty):<nil>"))
		Expect(decorators.Validate(decorator)).To(MatchError(ContainSubstring("does not wrap a decorator")))
		_, err := decorators.Apply(group, decorator)
		Expect(err).To(HaveOccurred())
		_, err = decorators.Apply(group, nil)
		Expect(err).To(MatchError("decorator must not be nil"))
	})

	It("should dispatch registered families, and reject unknown families", func() {
		Expect(decorators.RegisterFamily("Rename", func(group *resources.Group, decorator decorators.Decorator) (decorators.Result, error) {
			d := decorator.(renameDecorator)
			var result decorators.Result
			for _, document := range group.Select(d.Selector().Matches) {
				result.Matched++
				group.Remove(resources.KeyOf(document))
				document.SetName(d.to)
				group.Put(document)
				result.Changed++
			}
			return result, nil
		})).To(Succeed())
		Expect(decorators.RegisterFamily("Rename", nil)).NotTo(Succeed())
		Expect(decorators.RegisterFamily(decorators.FamilyAddElement, nil)).NotTo(Succeed())

		result, err := decorators.Apply(group, renameDecorator{from: "demo", to: "renamed"})
		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(decorators.Result{Matched: 2, Changed: 2}))
		Expect(group.Get(resources.Key{Kind: "Service", Name: "renamed"})).NotTo(BeNil())

		_, err = decorators.Apply(group, unknownDecorator{})
		Expect(err).To(MatchError(ContainSubstring("unknown decorator family Unknown")))
	})
})
