/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package decorators

import (
	"fmt"

	"k8s.io/apimachinery/pkg/api/equality"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func upsertEntry(object map[string]any, path []string, key string, value any) (bool, error) {
	if !parentExists(object, path) {
		return false, nil
	}
	entryPath := extend(path, key)
	current, found, err := unstructured.NestedFieldNoCopy(object, entryPath...)
	if err != nil {
		return false, err
	}
	if found && equality.Semantic.DeepEqual(current, value) {
		return false, nil
	}
	if err := unstructured.SetNestedField(object, value, entryPath...); err != nil {
		return false, err
	}
	return true, nil
}

func upsertItem(object map[string]any, path []string, keyField string, key string, value any) (bool, error) {
	if !parentExists(object, path) {
		return false, nil
	}
	items, _, err := unstructured.NestedSlice(object, path...)
	if err != nil {
		return false, err
	}
	for i, item := range items {
		if !itemHasKey(item, keyField, key) {
			continue
		}
		if equality.Semantic.DeepEqual(item, value) {
			return false, nil
		}
		items[i] = value
		return true, unstructured.SetNestedSlice(object, items, path...)
	}
	items = append(items, value)
	return true, unstructured.SetNestedSlice(object, items, path...)
}

func removeEntry(object map[string]any, path []string, key string) (bool, error) {
	field, found, err := unstructured.NestedFieldNoCopy(object, path...)
	if err != nil || !found {
		return false, err
	}
	entries, ok := field.(map[string]any)
	if !ok {
		return false, fmt.Errorf("%v is not a map", path)
	}
	if _, ok := entries[key]; !ok {
		return false, nil
	}
	delete(entries, key)
	if len(entries) == 0 {
		unstructured.RemoveNestedField(object, path...)
	}
	return true, nil
}

func removeItem(object map[string]any, path []string, keyField string, key string) (bool, error) {
	items, found, err := unstructured.NestedSlice(object, path...)
	if err != nil || !found {
		return false, err
	}
	var remaining []any
	for _, item := range items {
		if !itemHasKey(item, keyField, key) {
			remaining = append(remaining, item)
		}
	}
	if len(remaining) == len(items) {
		return false, nil
	}
	if len(remaining) == 0 {
		unstructured.RemoveNestedField(object, path...)
		return true, nil
	}
	return true, unstructured.SetNestedSlice(object, remaining, path...)
}

func itemHasKey(item any, keyField string, key string) bool {
	m, ok := item.(map[string]any)
	if !ok {
		return false
	}
	value, ok := m[keyField].(string)
	return ok && value == key
}

func parentExists(object map[string]any, path []string) bool {
	if len(path) <= 1 {
		return true
	}
	parent, found, err := unstructured.NestedFieldNoCopy(object, path[:len(path)-1]...)
	if err != nil || !found {
		return false
	}
	_, ok := parent.(map[string]any)
	return ok
}

func extend(path []string, segment string) []string {
	result := make([]string, len(path), len(path)+1)
	copy(result, path)
	return append(result, segment)
}
