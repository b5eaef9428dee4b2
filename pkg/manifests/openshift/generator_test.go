/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package openshift_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/decorators"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests"
	"github.com/sap/manifest-decoration-runtime/pkg/manifests/openshift"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/registry"
	"github.com/sap/manifest-decoration-runtime/pkg/resources"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

func find(objects []client.Object, kind string) *unstructured.Unstructured {
	for _, object := range objects {
		if document := object.(*unstructured.Unstructured); document.GetKind() == kind {
			return document
		}
	}
	return nil
}

var _ = Describe("testing: generator.go", func() {
	var generator *openshift.Generator
	var p *project.Project

	BeforeEach(func() {
		generator = openshift.NewGenerator()
		p = &project.Project{
			BuildInfo: project.BuildInfo{Name: "demo", Version: "1.0.0"},
			ScmInfo: &project.ScmInfo{
				Remotes: map[string]string{"origin": "https://github.com/example/demo.git"},
				Commit:  "abcdef0123456789",
			},
		}
	})

	generate := func(fragments ...*config.Fragment) []client.Object {
		configuration, err := config.Compose(generator.FallbackConfiguration(p), fragments...)
		Expect(err).NotTo(HaveOccurred())
		r := registry.NewRegistry()
		Expect(generator.Generate(manifests.NewContextWithProject(ctx, p), r, configuration)).To(Succeed())
		groups, err := r.Apply(ctx)
		Expect(err).NotTo(HaveOccurred())
		return groups[openshift.Key]
	}

	It("should identify itself", func() {
		Expect(generator.Key()).To(Equal("openshift"))
		Expect(generator.Order()).To(Equal(300))
		Expect(generator.Accepts(config.TypeOpenshift)).To(BeTrue())
		Expect(generator.Accepts(config.TypeKubernetes)).To(BeFalse())
	})

	It("should generate a deployment config by default", func() {
		objects := generate()
		Expect(objects).To(HaveLen(1))
		deploymentConfig := find(objects, resources.KindDeploymentConfig)
		Expect(deploymentConfig).NotTo(BeNil())
		Expect(deploymentConfig.GetAPIVersion()).To(Equal("apps.openshift.io/v1"))
		Expect(deploymentConfig.GetLabels()).NotTo(HaveKey(types.LabelKeyRuntime))
	})

	It("should support all deployment kinds, and propagate replicas", func() {
		for _, kind := range config.DeploymentKinds {
			objects := generate(&config.Fragment{DeploymentKind: config.Ref(kind), Replicas: config.Ref(int32(4))})
			workload := find(objects, string(kind))
			Expect(workload).NotTo(BeNil())
			replicas, _, err := unstructured.NestedInt64(workload.Object, "spec", "replicas")
			Expect(err).NotTo(HaveOccurred())
			Expect(replicas).To(Equal(int64(4)))
		}
	})

	It("should expose the service through a route", func() {
		objects := generate(&config.Fragment{
			Ports: []config.Port{{ContainerPort: 8080}},
			Route: config.RouteFragment{Expose: config.Ref(true), Path: config.Ref("/api")},
		})
		Expect(objects).To(HaveLen(3))
		route := find(objects, resources.KindRoute)
		Expect(route).NotTo(BeNil())
		path, _, err := unstructured.NestedString(route.Object, "spec", "path")
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal("/api"))
	})

	It("should not create a route without ports", func() {
		objects := generate(&config.Fragment{Route: config.RouteFragment{Expose: config.Ref(true)}})
		Expect(find(objects, resources.KindRoute)).To(BeNil())
	})

	It("should add image change triggers by default", func() {
		objects := generate()
		triggers, _, err := unstructured.NestedSlice(find(objects, resources.KindDeploymentConfig).Object, "spec", "triggers")
		Expect(err).NotTo(HaveOccurred())
		Expect(triggers).To(HaveLen(2))
		from, _, err := unstructured.NestedString(triggers[1].(map[string]any), "imageChangeParams", "from", "name")
		Expect(err).NotTo(HaveOccurred())
		Expect(from).To(Equal("demo:1.0.0"))
	})

	It("should not add image change triggers if disabled", func() {
		objects := generate(&config.Fragment{DeploymentTrigger: config.Ref(false)})
		triggers, _, err := unstructured.NestedSlice(find(objects, resources.KindDeploymentConfig).Object, "spec", "triggers")
		Expect(err).NotTo(HaveOccurred())
		Expect(triggers).To(Equal([]any{map[string]any{"type": "ConfigChange"}}))
	})

	It("should add the runtime label if the runtime type attribute is set", func() {
		objects := generate(&config.Fragment{Attributes: config.Attributes{"RUNTIME_TYPE": "golang"}})
		Expect(find(objects, resources.KindDeploymentConfig).GetLabels()).To(HaveKeyWithValue(types.LabelKeyRuntime, "golang"))
	})

	It("should replace the generic vcs url annotation by the openshift one", func() {
		annotations := find(generate(), resources.KindDeploymentConfig).GetAnnotations()
		Expect(annotations).NotTo(HaveKey(types.AnnotationKeyVcsUrl))
		Expect(annotations).To(HaveKeyWithValue(types.AnnotationKeyOpenshiftVcsUri, "https://github.com/example/demo.git"))
		Expect(annotations).To(HaveKeyWithValue(types.AnnotationKeyOpenshiftVcsRef, "abcdef0123456789"))
	})

	It("should render provenance annotations into the pod template", func() {
		podAnnotations, _, err := unstructured.NestedStringMap(find(generate(), resources.KindDeploymentConfig).Object, "spec", "template", "metadata", "annotations")
		Expect(err).NotTo(HaveOccurred())
		Expect(podAnnotations).To(Equal(map[string]string{
			types.AnnotationKeyCommitId:        "abcdef0123456789",
			types.AnnotationKeyOpenshiftVcsUri: "https://github.com/example/demo.git",
			types.AnnotationKeyOpenshiftVcsRef: "abcdef0123456789",
		}))
	})

	It("should reproduce the same documents when re-applying all decorators to the decorated group", func() {
		configuration, err := config.Compose(generator.FallbackConfiguration(p), &config.Fragment{
			Replicas:       config.Ref(int32(2)),
			Ports:          []config.Port{{ContainerPort: 8080}},
			InitContainers: []config.Container{{Name: "migrate", Image: "migrate:1", Command: []string{"migrate", "up"}}},
			Labels:         []config.Label{{Key: "team", Value: "a"}},
			Annotations:    []config.Annotation{{Key: "note", Value: "x"}},
			Attributes:     config.Attributes{"RUNTIME_TYPE": "golang"},
			Route:          config.RouteFragment{Expose: config.Ref(true)},
		})
		Expect(err).NotTo(HaveOccurred())
		r := registry.NewRegistry()
		Expect(generator.Generate(manifests.NewContextWithProject(ctx, p), r, configuration)).To(Succeed())
		pending, err := r.Pending(openshift.Key)
		Expect(err).NotTo(HaveOccurred())
		groups, err := r.Apply(ctx)
		Expect(err).NotTo(HaveOccurred())
		objects := groups[openshift.Key]
		Expect(objects).To(HaveLen(3))

		group := resources.NewGroup(openshift.Key)
		for _, object := range objects {
			group.Put(object.(*unstructured.Unstructured).DeepCopy())
		}
		for _, decorator := range pending {
			_, err := decorators.Apply(group, decorator)
			Expect(err).NotTo(HaveOccurred())
		}
		Expect(group.Documents()).To(Equal(objects))
	})

	It("should not create a service or route for ports without number", func() {
		objects := generate(&config.Fragment{
			Ports: []config.Port{{Name: "http"}},
			Route: config.RouteFragment{Expose: config.Ref(true)},
		})
		Expect(objects).To(HaveLen(1))
		Expect(find(objects, resources.KindService)).To(BeNil())
		Expect(find(objects, resources.KindRoute)).To(BeNil())
	})
})
