/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"

	"github.com/sap/manifest-decoration-runtime/pkg/resources"
)

// ApplyFunc applies a decorator of a certain family to a group.
type ApplyFunc func(group *resources.Group, decorator Decorator) (Result, error)

var (
	familiesLock sync.RWMutex
	families     map[Family]ApplyFunc
)

func init() {
	families = map[Family]ApplyFunc{
		FamilyCreateResource: applyCreateResource,
		FamilyAddElement:     applyAddElement,
		FamilyReplaceField:   applyReplaceField,
		FamilyRemoveElement:  applyRemoveElement,
		FamilyConditional:    applyConditional,
	}
}

// Register the apply function of an additional decorator family.
// Registering a family twice (including the builtin ones) is an error.
func RegisterFamily(family Family, apply ApplyFunc) error {
	familiesLock.Lock()
	defer familiesLock.Unlock()
	if _, ok := families[family]; ok {
		return fmt.Errorf("decorator family %s is already registered", family)
	}
	families[family] = apply
	return nil
}

// Apply a single decorator to the given group.
func Apply(group *resources.Group, decorator Decorator) (Result, error) {
	if err := Validate(decorator); err != nil {
		return Result{}, err
	}
	familiesLock.RLock()
	apply, ok := families[decorator.Family()]
	familiesLock.RUnlock()
	if !ok {
		return Result{}, fmt.Errorf("unknown decorator family %s (decorator %s)", decorator.Family(), decorator.Key())
	}
	result, err := apply(group, decorator)
	if err != nil {
		return Result{}, errors.Wrapf(err, "error applying decorator %s", decorator.Key())
	}
	return result, nil
}

func applyCreateResource(group *resources.Group, decorator Decorator) (Result, error) {
	d, ok := decorator.(CreateResource)
	if !ok {
		return Result{}, unexpectedType(decorator)
	}
	document, err := d.Build()
	if err != nil {
		return Result{}, err
	}
	if key := resources.KeyOf(document); key != d.Resource {
		return Result{}, fmt.Errorf("built document %s does not match declared key %s", key, d.Resource)
	}
	if existing := group.Get(d.Resource); existing != nil && equality.Semantic.DeepEqual(existing.Object, document.Object) {
		return Result{Matched: 1}, nil
	}
	group.Put(document)
	return Result{Matched: 1, Changed: 1}, nil
}

func applyAddElement(group *resources.Group, decorator Decorator) (Result, error) {
	d, ok := decorator.(AddElement)
	if !ok {
		return Result{}, unexpectedType(decorator)
	}
	return forEachSelected(group, d.Target, func(object map[string]any) (bool, error) {
		changed := false
		for _, path := range d.Element.Paths {
			var c bool
			var err error
			if d.Element.KeyField == "" {
				c, err = upsertEntry(object, path, d.Element.Key, d.Value)
			} else {
				c, err = upsertItem(object, path, d.Element.KeyField, d.Element.Key, d.Value)
			}
			if err != nil {
				return false, err
			}
			changed = changed || c
		}
		return changed, nil
	})
}

func applyReplaceField(group *resources.Group, decorator Decorator) (Result, error) {
	d, ok := decorator.(ReplaceField)
	if !ok {
		return Result{}, unexpectedType(decorator)
	}
	return forEachSelected(group, d.Target, func(object map[string]any) (bool, error) {
		current, found, err := unstructured.NestedFieldNoCopy(object, d.Path...)
		if err != nil {
			return false, err
		}
		if found && equality.Semantic.DeepEqual(current, d.Value) {
			return false, nil
		}
		if err := unstructured.SetNestedField(object, d.Value, d.Path...); err != nil {
			return false, err
		}
		return true, nil
	})
}

func applyRemoveElement(group *resources.Group, decorator Decorator) (Result, error) {
	d, ok := decorator.(RemoveElement)
	if !ok {
		return Result{}, unexpectedType(decorator)
	}
	return forEachSelected(group, d.Target, func(object map[string]any) (bool, error) {
		changed := false
		for _, path := range d.Element.Paths {
			var c bool
			var err error
			if d.Element.KeyField == "" {
				c, err = removeEntry(object, path, d.Element.Key)
			} else {
				c, err = removeItem(object, path, d.Element.KeyField, d.Element.Key)
			}
			if err != nil {
				return false, err
			}
			changed = changed || c
		}
		return changed, nil
	})
}

func applyConditional(group *resources.Group, decorator Decorator) (Result, error) {
	d, ok := decorator.(Conditional)
	if !ok {
		return Result{}, unexpectedType(decorator)
	}
	if d.Condition != nil && !d.Condition() {
		return Result{Disabled: true}, nil
	}
	return Apply(group, d.Decorator)
}

func forEachSelected(group *resources.Group, selector Selector, mutate func(object map[string]any) (bool, error)) (Result, error) {
	var result Result
	for _, document := range group.Select(selector.Matches) {
		result.Matched++
		changed, err := mutate(document.Object)
		if err != nil {
			return Result{}, errors.Wrapf(err, "error mutating %s", resources.KeyOf(document))
		}
		if changed {
			result.Changed++
		}
	}
	return result, nil
}

func unexpectedType(decorator Decorator) error {
	return fmt.Errorf("unexpected type %T for decorator family %s", decorator, decorator.Family())
}
