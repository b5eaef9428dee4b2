/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"fmt"
	"reflect"
	"strings"

	"dario.cat/mergo"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/sap/manifest-decoration-runtime/internal/walk"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// Compose builds the configuration record for one deployment target.
// The fallback configuration produced by supplier is overlaid with the given fragments, in order:
//   - scalar fields present in a later fragment replace earlier values
//   - ports, init containers, labels and annotations are merged by their identity key (port number, name, key);
//     later entries replace earlier entries with the same key, new entries are appended
//   - extension attributes are merged by name (nested maps are deep-merged); attributes declared by the supplier are
//     converted to their declared type.
//
// Afterwards, the supplier's derivations run, and the result is validated. A types.ConfigurationError is returned
// if a fragment is invalid, or if required fields remain unset. Neither the supplier nor the fragments are modified.
func Compose(supplier *Supplier, fragments ...*Fragment) (Configuration, error) {
	configuration, err := supplier.Get()
	if err != nil {
		return nil, err
	}
	c := configuration.GetConfig()

	keys := make(map[string]AttributeKey)
	for _, key := range supplier.keys {
		keys[key.Name()] = key
	}

	var scalars Fragment
	for i, fragment := range fragments {
		if fragment == nil {
			continue
		}
		if err := mergo.Merge(&scalars, scalarsOf(fragment), mergo.WithOverride, mergo.WithoutDereference); err != nil {
			return nil, types.NewConfigurationError(errors.Wrapf(err, "error merging configuration fragment (%d)", i))
		}
		c.Ports = mergeByKey(c.Ports, fragment.Ports, func(p Port) string { return p.Key() })
		c.InitContainers = mergeByKey(c.InitContainers, fragment.InitContainers, func(x Container) string { return x.Name })
		c.Labels = mergeByKey(c.Labels, fragment.Labels, func(l Label) string { return l.Key })
		c.Annotations = mergeByKey(c.Annotations, fragment.Annotations, func(a Annotation) string { return a.Key })
		for name, value := range fragment.Attributes {
			if key, ok := keys[name]; ok {
				if value, err = key.normalize(value); err != nil {
					return nil, types.NewConfigurationError(errors.Wrapf(err, "error converting attribute %s in configuration fragment (%d)", name, i), "attributes."+name)
				}
			}
			if c.Attributes == nil {
				c.Attributes = make(Attributes)
			}
			existing, isMap := c.Attributes[name].(map[string]any)
			if addition, ok := value.(map[string]any); ok && isMap {
				value = MergeMaps(existing, addition)
			}
			c.Attributes[name] = value
		}
	}
	scalars.applyScalarsTo(c)
	if applier, ok := configuration.(interface{ applyFragment(*Fragment) }); ok {
		applier.applyFragment(&scalars)
	}

	for _, derivation := range supplier.derivations {
		derivation.Configure(configuration)
	}

	if err := validate(configuration); err != nil {
		return nil, err
	}

	return deepCopy(configuration)
}

// strip collections, so that mergo only deals with scalars
func scalarsOf(fragment *Fragment) *Fragment {
	scalars := *fragment
	scalars.Ports = nil
	scalars.InitContainers = nil
	scalars.Labels = nil
	scalars.Annotations = nil
	scalars.Attributes = nil
	return &scalars
}

func mergeByKey[T any](existing []T, additions []T, key func(T) string) []T {
	if len(additions) == 0 {
		return existing
	}
	result := make([]T, len(existing), len(existing)+len(additions))
	copy(result, existing)
	index := make(map[string]int)
	for i, x := range result {
		index[key(x)] = i
	}
	for _, x := range additions {
		if i, ok := index[key(x)]; ok {
			result[i] = x
		} else {
			index[key(x)] = len(result)
			result = append(result, x)
		}
	}
	return result
}

func validate(configuration Configuration) error {
	err := walk.Walk(configuration, func(x any, path []string, tag reflect.StructTag) error {
		if tag.Get("required") != "true" {
			return nil
		}
		if s, ok := x.(*string); ok && *s == "" {
			return fmt.Errorf("required field is empty")
		}
		return nil
	})
	if err == nil {
		return nil
	}
	var missing []string
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			var walkErr walk.Error
			if errors.As(e, &walkErr) {
				missing = append(missing, strings.Join(walkErr.Path, "."))
			}
		}
		merr.ErrorFormat = func(errs []error) string {
			messages := make([]string, len(errs))
			for i, err := range errs {
				messages[i] = err.Error()
			}
			return strings.Join(messages, "; ")
		}
	}
	return types.NewConfigurationError(err, missing...)
}
