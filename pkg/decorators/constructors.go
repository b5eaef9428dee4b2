/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators

import (
	"github.com/gobwas/glob"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
	"github.com/sap/manifest-decoration-runtime/pkg/resources"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

var (
	metadataLabelsPath         = []string{"metadata", "labels"}
	metadataAnnotationsPath    = []string{"metadata", "annotations"}
	podTemplateLabelsPath      = []string{"spec", "template", "metadata", "labels"}
	podTemplateAnnotationsPath = []string{"spec", "template", "metadata", "annotations"}
	initContainersPath         = []string{"spec", "template", "spec", "initContainers"}
)

// AddWorkloadResource creates the workload of the given kind for the application described by c.
func AddWorkloadResource(kind config.DeploymentKind, c *config.Config) Decorator {
	return CreateResource{
		Resource: resources.Key{Kind: string(kind), Name: c.Name},
		Build: func() (*unstructured.Unstructured, error) {
			return resources.NewWorkload(kind, c)
		},
	}
}

// AddServiceResource creates the service of the application described by c.
func AddServiceResource(c *config.Config) Decorator {
	return CreateResource{
		Resource: resources.Key{Kind: resources.KindService, Name: c.Name},
		Build: func() (*unstructured.Unstructured, error) {
			return resources.NewService(c)
		},
	}
}

// AddRoute creates the (openshift) route of the application described by c.
func AddRoute(c *config.OpenshiftConfig) Decorator {
	return CreateResource{
		Resource: resources.Key{Kind: resources.KindRoute, Name: c.Name},
		Build: func() (*unstructured.Unstructured, error) {
			return resources.NewRoute(c)
		},
	}
}

// AddLabel adds a label to the metadata (and, for workloads, to the pod template) of all documents
// of the kinds listed in the label (or all documents, if no kinds are listed).
func AddLabel(label config.Label) Decorator {
	return AddElement{
		Target: NewSelector("", label.Kinds...),
		Element: Element{
			Paths: [][]string{metadataLabelsPath, podTemplateLabelsPath},
			Key:   label.Key,
		},
		Value: label.Value,
	}
}

// AddAnnotation adds an annotation to the metadata of all documents of the kinds listed in the annotation
// (or all documents, if no kinds are listed).
func AddAnnotation(annotation config.Annotation) Decorator {
	return AddElement{
		Target: NewSelector("", annotation.Kinds...),
		Element: Element{
			Paths: [][]string{metadataAnnotationsPath},
			Key:   annotation.Key,
		},
		Value: annotation.Value,
	}
}

// AddPodAnnotation adds an annotation to the pod template of all workloads.
func AddPodAnnotation(annotation config.Annotation) Decorator {
	kinds := annotation.Kinds
	if len(kinds) == 0 {
		kinds = resources.WorkloadKinds
	}
	return AddElement{
		Target: NewSelector("", kinds...),
		Element: Element{
			Paths: [][]string{podTemplateAnnotationsPath},
			Key:   annotation.Key,
		},
		Value: annotation.Value,
	}
}

// AddInitContainer adds (or replaces, by container name) an init container to the workloads with the given name.
func AddInitContainer(name string, container config.Container) (Decorator, error) {
	content, err := resources.ContainerToUnstructured(container)
	if err != nil {
		return nil, err
	}
	return AddElement{
		Target: NewSelector(glob.QuoteMeta(name), resources.WorkloadKinds...),
		Element: Element{
			Paths:    [][]string{initContainersPath},
			Key:      container.Name,
			KeyField: "name",
		},
		Value: content,
	}, nil
}

// AddPort adds (or replaces, by port name) a port to the service with the given name.
func AddPort(name string, portName string, port config.Port) Decorator {
	protocol := port.Protocol
	if protocol == "" {
		protocol = "TCP"
	}
	return AddElement{
		Target: NewSelector(glob.QuoteMeta(name), resources.KindService),
		Element: Element{
			Paths:    [][]string{{"spec", "ports"}},
			Key:      portName,
			KeyField: "name",
		},
		Value: map[string]any{
			"name":       portName,
			"port":       int64(port.ContainerPort),
			"targetPort": int64(port.ContainerPort),
			"protocol":   protocol,
		},
	}
}

// ApplyReplicas sets the replica count of the workload with the given kind and name.
func ApplyReplicas(kind config.DeploymentKind, name string, replicas int32) Decorator {
	return ReplaceField{
		Target: NewSelector(glob.QuoteMeta(name), string(kind)),
		Path:   []string{"spec", "replicas"},
		Value:  int64(replicas),
	}
}

// ApplyHeadless turns the service with the given name into a headless service.
func ApplyHeadless(name string) Decorator {
	return ReplaceField{
		Target: NewSelector(glob.QuoteMeta(name), resources.KindService),
		Path:   []string{"spec", "clusterIP"},
		Value:  "None",
	}
}

// ApplyDeploymentTrigger adds an image change trigger (for the given image stream tag) to the deployment config
// with the given name; the trigger updates the container named like the deployment config.
func ApplyDeploymentTrigger(name string, imageStreamTag string) Decorator {
	return AddElement{
		Target: NewSelector(glob.QuoteMeta(name), resources.KindDeploymentConfig),
		Element: Element{
			Paths:    [][]string{{"spec", "triggers"}},
			Key:      "ImageChange",
			KeyField: "type",
		},
		Value: map[string]any{
			"type": "ImageChange",
			"imageChangeParams": map[string]any{
				"automatic":      true,
				"containerNames": []any{name},
				"from": map[string]any{
					"kind": "ImageStreamTag",
					"name": imageStreamTag,
				},
			},
		},
	}
}

// AddProvenanceAnnotation adds an annotation to the metadata of all documents and to the pod templates of workloads.
func AddProvenanceAnnotation(annotation config.Annotation) Decorator {
	return AddElement{
		Target: NewSelector("", annotation.Kinds...),
		Element: Element{
			Paths: [][]string{metadataAnnotationsPath, podTemplateAnnotationsPath},
			Key:   annotation.Key,
		},
		Value: annotation.Value,
	}
}

// AddVcsUrlAnnotation annotates all documents (and pod templates) with the given version control url.
func AddVcsUrlAnnotation(url string) Decorator {
	return AddProvenanceAnnotation(config.Annotation{Key: types.AnnotationKeyVcsUrl, Value: url})
}

// AddCommitIdAnnotation annotates all documents (and pod templates) with the given commit id.
func AddCommitIdAnnotation(commitId string) Decorator {
	return AddProvenanceAnnotation(config.Annotation{Key: types.AnnotationKeyCommitId, Value: commitId})
}

// RemoveAnnotation removes the given annotation from all documents of the given kinds (or all documents),
// including their pod templates.
func RemoveAnnotation(key string, kinds ...string) Decorator {
	return RemoveElement{
		Target: NewSelector("", kinds...),
		Element: Element{
			Paths: [][]string{metadataAnnotationsPath, podTemplateAnnotationsPath},
			Key:   key,
		},
	}
}

// RemoveLabel removes the given label from all documents of the given kinds (or all documents),
// including their pod templates.
func RemoveLabel(key string, kinds ...string) Decorator {
	return RemoveElement{
		Target: NewSelector("", kinds...),
		Element: Element{
			Paths: [][]string{metadataLabelsPath, podTemplateLabelsPath},
			Key:   key,
		},
	}
}

// When applies decorator only if condition holds at application time.
func When(condition func() bool, description string, decorator Decorator) Decorator {
	return Conditional{
		Condition:   condition,
		Description: description,
		Decorator:   decorator,
	}
}

// WhenAttribute applies decorator only if c carries the given extension attribute.
func WhenAttribute[T any](c *config.Config, key config.ConfigKey[T], decorator Decorator) Decorator {
	return When(func() bool { return key.Has(c) }, "has attribute "+key.Name(), decorator)
}
