/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package resources

import (
	"fmt"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// Key identifies a resource document within a group.
type Key struct {
	Kind string
	Name string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.Name)
}

// Return the key of the given document.
func KeyOf(document *unstructured.Unstructured) Key {
	return Key{Kind: document.GetKind(), Name: document.GetName()}
}

// Group is the mutable, ordered collection of documents of one deployment target.
// Documents are unique by key; insertion order is preserved.
type Group struct {
	name      string
	documents []*unstructured.Unstructured
}

// Create a new (empty) Group.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string {
	return g.name
}

func (g *Group) Len() int {
	return len(g.documents)
}

// Get the document with the given key, or nil.
func (g *Group) Get(key Key) *unstructured.Unstructured {
	if i := g.indexOf(key); i >= 0 {
		return g.documents[i]
	}
	return nil
}

// Put adds the given document; an existing document with the same key is replaced in place.
// Returns true if an existing document was replaced.
func (g *Group) Put(document *unstructured.Unstructured) bool {
	if i := g.indexOf(KeyOf(document)); i >= 0 {
		g.documents[i] = document
		return true
	}
	g.documents = append(g.documents, document)
	return false
}

// Remove the document with the given key; returns true if it existed.
func (g *Group) Remove(key Key) bool {
	if i := g.indexOf(key); i >= 0 {
		g.documents = append(g.documents[:i], g.documents[i+1:]...)
		return true
	}
	return false
}

// Select returns all documents matching the given predicate, in insertion order.
// The returned documents are live; changing them changes the group.
func (g *Group) Select(match func(document *unstructured.Unstructured) bool) []*unstructured.Unstructured {
	var result []*unstructured.Unstructured
	for _, document := range g.documents {
		if match(document) {
			result = append(result, document)
		}
	}
	return result
}

// Documents returns deep copies of all documents, in insertion order.
func (g *Group) Documents() []client.Object {
	result := make([]client.Object, len(g.documents))
	for i, document := range g.documents {
		result[i] = document.DeepCopy()
	}
	return result
}

func (g *Group) indexOf(key Key) int {
	for i, document := range g.documents {
		if KeyOf(document) == key {
			return i
		}
	}
	return -1
}
