/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// ObjectKey is implemented by all resource documents (in particular by every client.Object).
type ObjectKey interface {
	GetObjectKind() schema.ObjectKind
	GetNamespace() string
	GetName() string
}

// Render an ObjectKey in the kubectl resource notation, e.g. 'Deployment.apps/demo' or 'Service/demo'
// (qualified with the namespace, if any, as in 'Service/default/demo').
func ObjectKeyToString(key ObjectKey) string {
	gvk := key.GetObjectKind().GroupVersionKind()
	kind := gvk.Kind
	if gvk.Group != "" {
		kind += "." + gvk.Group
	}
	if namespace := key.GetNamespace(); namespace != "" {
		return kind + "/" + namespace + "/" + key.GetName()
	}
	return kind + "/" + key.GetName()
}
