/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package resources

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sap/go-generics/slices"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/util/intstr"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

const (
	KindDeployment       = "Deployment"
	KindStatefulSet      = "StatefulSet"
	KindDeploymentConfig = "DeploymentConfig"
	KindService          = "Service"
	KindRoute            = "Route"
)

// Kinds of workload resources (that is, resources owning a pod template at spec.template).
var WorkloadKinds = []string{KindDeployment, KindStatefulSet, KindDeploymentConfig}

type workloadFactory func(c *config.Config) (*unstructured.Unstructured, error)

// every deployment kind has exactly one factory
var workloadFactories = map[config.DeploymentKind]workloadFactory{
	config.DeploymentKindDeployment:       newDeployment,
	config.DeploymentKindStatefulSet:      newStatefulSet,
	config.DeploymentKindDeploymentConfig: newDeploymentConfig,
}

// Return the selector labels of the application described by c.
func SelectorLabels(c *config.Config) map[string]string {
	return map[string]string{
		types.LabelKeyName: c.Name,
	}
}

// Return the standard labels of the application described by c.
func StandardLabels(c *config.Config) map[string]string {
	labels := SelectorLabels(c)
	if c.Version != "" {
		labels[types.LabelKeyVersion] = c.Version
	}
	if c.PartOf != "" {
		labels[types.LabelKeyPartOf] = c.PartOf
	}
	return labels
}

// Check whether at least one port carries a container port number; only such ports end up in services and routes.
func HasNumberedPorts(c *config.Config) bool {
	return slices.Any(c.Ports, func(port config.Port) bool { return port.ContainerPort > 0 })
}

// Create the workload document of the given kind, running a single container with the configured image and ports.
// The replica count is always one; differing counts are applied by decorators.
func NewWorkload(kind config.DeploymentKind, c *config.Config) (*unstructured.Unstructured, error) {
	factory, ok := workloadFactories[kind]
	if !ok {
		return nil, fmt.Errorf("invalid deployment kind: %s", kind)
	}
	return factory(c)
}

// Create a service document exposing all numbered ports of c.
func NewService(c *config.Config) (*unstructured.Unstructured, error) {
	var ports []corev1.ServicePort
	for i, port := range c.Ports {
		if port.ContainerPort <= 0 {
			continue
		}
		ports = append(ports, corev1.ServicePort{
			Name:       portName(port, i),
			Port:       port.ContainerPort,
			TargetPort: intstr.FromInt32(port.ContainerPort),
			Protocol:   protocol(port),
		})
	}
	service := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:   c.Name,
			Labels: StandardLabels(c),
		},
		Spec: corev1.ServiceSpec{
			Type:     corev1.ServiceType(c.ServiceType),
			Selector: SelectorLabels(c),
			Ports:    ports,
		},
	}
	return toUnstructured(service)
}

// Create a route document pointing to the service of the application.
func NewRoute(c *config.OpenshiftConfig) (*unstructured.Unstructured, error) {
	targetPort := c.Route.TargetPort
	if targetPort == "" {
		for i, port := range c.Ports {
			if port.ContainerPort > 0 {
				targetPort = portName(port, i)
				break
			}
		}
	}
	spec := map[string]any{
		"to": map[string]any{
			"kind": KindService,
			"name": c.Name,
		},
	}
	if targetPort != "" {
		spec["port"] = map[string]any{"targetPort": targetPort}
	}
	if c.Route.Host != "" {
		spec["host"] = c.Route.Host
	}
	if c.Route.Path != "" {
		spec["path"] = c.Route.Path
	}
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "route.openshift.io/v1",
		"kind":       KindRoute,
		"metadata": map[string]any{
			"name":   c.Name,
			"labels": toAnyMap(StandardLabels(&c.Config)),
		},
		"spec": spec,
	}}, nil
}

func newDeployment(c *config.Config) (*unstructured.Unstructured, error) {
	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:   c.Name,
			Labels: StandardLabels(c),
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: ref(int32(1)),
			Selector: &metav1.LabelSelector{MatchLabels: SelectorLabels(c)},
			Template: podTemplate(c),
		},
	}
	return toUnstructured(deployment)
}

func newStatefulSet(c *config.Config) (*unstructured.Unstructured, error) {
	statefulSet := &appsv1.StatefulSet{
		ObjectMeta: metav1.ObjectMeta{
			Name:   c.Name,
			Labels: StandardLabels(c),
		},
		Spec: appsv1.StatefulSetSpec{
			Replicas:    ref(int32(1)),
			ServiceName: c.Name,
			Selector:    &metav1.LabelSelector{MatchLabels: SelectorLabels(c)},
			Template:    podTemplate(c),
		},
	}
	return toUnstructured(statefulSet)
}

func newDeploymentConfig(c *config.Config) (*unstructured.Unstructured, error) {
	template := podTemplate(c)
	templateContent, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&template)
	if err != nil {
		return nil, errors.Wrap(err, "error converting pod template")
	}
	unstructured.RemoveNestedField(templateContent, "metadata", "creationTimestamp")
	return &unstructured.Unstructured{Object: map[string]any{
		"apiVersion": "apps.openshift.io/v1",
		"kind":       KindDeploymentConfig,
		"metadata": map[string]any{
			"name":   c.Name,
			"labels": toAnyMap(StandardLabels(c)),
		},
		"spec": map[string]any{
			"replicas": int64(1),
			"selector": toAnyMap(SelectorLabels(c)),
			"template": templateContent,
			"triggers": []any{
				map[string]any{"type": "ConfigChange"},
			},
		},
	}}, nil
}

func podTemplate(c *config.Config) corev1.PodTemplateSpec {
	var ports []corev1.ContainerPort
	for i, port := range c.Ports {
		if port.ContainerPort <= 0 {
			continue
		}
		ports = append(ports, corev1.ContainerPort{
			Name:          portName(port, i),
			ContainerPort: port.ContainerPort,
			HostPort:      port.HostPort,
			Protocol:      protocol(port),
		})
	}
	return corev1.PodTemplateSpec{
		ObjectMeta: metav1.ObjectMeta{
			Labels: StandardLabels(c),
		},
		Spec: corev1.PodSpec{
			Containers: []corev1.Container{
				{
					Name:  c.Name,
					Image: c.Image.Reference(),
					Ports: ports,
				},
			},
		},
	}
}

// Convert a container description into an unstructured container (as found in a pod spec).
func ContainerToUnstructured(container config.Container) (map[string]any, error) {
	var env []corev1.EnvVar
	for _, e := range container.Env {
		env = append(env, corev1.EnvVar{Name: e.Name, Value: e.Value})
	}
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(&corev1.Container{
		Name:    container.Name,
		Image:   container.Image,
		Command: container.Command,
		Args:    container.Args,
		Env:     env,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error converting container %s", container.Name)
	}
	// the converter renders the empty resources struct
	unstructured.RemoveNestedField(content, "resources")
	return content, nil
}

func toUnstructured(object runtime.Object) (*unstructured.Unstructured, error) {
	gvks, _, err := clientgoscheme.Scheme.ObjectKinds(object)
	if err != nil {
		return nil, errors.Wrapf(err, "error resolving kind of %T", object)
	}
	object.GetObjectKind().SetGroupVersionKind(gvks[0])
	content, err := runtime.DefaultUnstructuredConverter.ToUnstructured(object)
	if err != nil {
		return nil, errors.Wrapf(err, "error converting %T", object)
	}
	unstructured.RemoveNestedField(content, "status")
	unstructured.RemoveNestedField(content, "metadata", "creationTimestamp")
	unstructured.RemoveNestedField(content, "spec", "template", "metadata", "creationTimestamp")
	return &unstructured.Unstructured{Object: content}, nil
}

func portName(port config.Port, index int) string {
	if port.Name != "" {
		return port.Name
	}
	if index == 0 {
		return "http"
	}
	return "port-" + strconv.Itoa(int(port.ContainerPort))
}

func protocol(port config.Port) corev1.Protocol {
	if port.Protocol == "" {
		return corev1.ProtocolTCP
	}
	return corev1.Protocol(port.Protocol)
}

func toAnyMap(m map[string]string) map[string]any {
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func ref[T any](x T) *T {
	return &x
}
