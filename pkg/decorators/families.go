/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/resources"
)

// Element addresses a keyed entry below one or more paths of a document.
// If KeyField is empty, the entry is a map entry with the given key; otherwise, it is the item of a list
// whose field KeyField equals Key. Paths whose parent does not exist in a document are ignored for that document.
type Element struct {
	Paths    [][]string
	Key      string
	KeyField string
}

func (e Element) String() string {
	paths := make([]string, len(e.Paths))
	for i, path := range e.Paths {
		paths[i] = strings.Join(path, ".")
	}
	if e.KeyField == "" {
		return fmt.Sprintf("%s[%s]", strings.Join(paths, ","), e.Key)
	}
	return fmt.Sprintf("%s[%s=%s]", strings.Join(paths, ","), e.KeyField, e.Key)
}

// CreateResource adds a document to the group; an existing document with the same key is replaced.
type CreateResource struct {
	Resource resources.Key
	Build    func() (*unstructured.Unstructured, error)
}

var _ Decorator = CreateResource{}

func (d CreateResource) Family() Family {
	return FamilyCreateResource
}

func (d CreateResource) Tier() Tier {
	return TierCreate
}

func (d CreateResource) Selector() Selector {
	return NewSelector(glob.QuoteMeta(d.Resource.Name), d.Resource.Kind)
}

func (d CreateResource) Key() string {
	return "create:" + d.Resource.String()
}

// AddElement adds (or updates) a keyed element in all selected documents.
// Value must consist of JSON values only (string, bool, int64, float64, []any, map[string]any).
type AddElement struct {
	Target  Selector
	Element Element
	Value   any
}

var _ Decorator = AddElement{}

func (d AddElement) Family() Family {
	return FamilyAddElement
}

func (d AddElement) Tier() Tier {
	return TierModify
}

func (d AddElement) Selector() Selector {
	return d.Target
}

func (d AddElement) Key() string {
	return "add:" + d.Target.String() + ":" + d.Element.String()
}

// ReplaceField sets a (scalar or composite) field in all selected documents.
// Value must consist of JSON values only.
type ReplaceField struct {
	Target Selector
	Path   []string
	Value  any
}

var _ Decorator = ReplaceField{}

func (d ReplaceField) Family() Family {
	return FamilyReplaceField
}

func (d ReplaceField) Tier() Tier {
	return TierModify
}

func (d ReplaceField) Selector() Selector {
	return d.Target
}

func (d ReplaceField) Key() string {
	return "replace:" + d.Target.String() + ":" + strings.Join(d.Path, ".")
}

// RemoveElement removes a keyed element from all selected documents.
type RemoveElement struct {
	Target  Selector
	Element Element
}

var _ Decorator = RemoveElement{}

func (d RemoveElement) Family() Family {
	return FamilyRemoveElement
}

func (d RemoveElement) Tier() Tier {
	return TierRemove
}

func (d RemoveElement) Selector() Selector {
	return d.Target
}

func (d RemoveElement) Key() string {
	return "remove:" + d.Target.String() + ":" + d.Element.String()
}

// Conditional applies the wrapped decorator only if Condition returns true; it runs in the wrapped decorator's tier.
type Conditional struct {
	Condition   func() bool
	Description string
	Decorator   Decorator
}

var _ Decorator = Conditional{}

func (d Conditional) Family() Family {
	return FamilyConditional
}

func (d Conditional) Tier() Tier {
	if d.Decorator == nil {
		return TierModify
	}
	return d.Decorator.Tier()
}

func (d Conditional) Selector() Selector {
	if d.Decorator == nil {
		return Selector{}
	}
	return d.Decorator.Selector()
}

func (d Conditional) Key() string {
	if d.Decorator == nil {
		return "when(" + d.Description + "):<nil>"
	}
	return "when(" + d.Description + "):" + d.Decorator.Key()
}

// Validate checks that decorator is set; conditionals must wrap a (valid) decorator.
func Validate(decorator Decorator) error {
	switch d := decorator.(type) {
	case nil:
		return fmt.Errorf("decorator must not be nil")
	case Conditional:
		if d.Decorator == nil {
			return fmt.Errorf("conditional decorator (%s) does not wrap a decorator", d.Description)
		}
		return Validate(d.Decorator)
	}
	return nil
}
