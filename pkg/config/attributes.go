/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"github.com/spf13/cast"
)

// Attributes holds extension attributes of a configuration record.
// A key which is present but maps to nil is different from an absent key.
type Attributes map[string]any

// AttributeKey is the type independent view of a ConfigKey.
type AttributeKey interface {
	Name() string
	// Convert a raw value into the key's declared type.
	normalize(value any) (any, error)
}

// ConfigKey is a typed key of an extension attribute.
type ConfigKey[T any] struct {
	name    string
	convert func(any) (T, error)
}

var _ AttributeKey = ConfigKey[string]{}

// Create a new ConfigKey; convert is used to coerce raw values (e.g. decoded from yaml) into T.
func NewConfigKey[T any](name string, convert func(any) (T, error)) ConfigKey[T] {
	return ConfigKey[T]{name: name, convert: convert}
}

// Create a new string-valued ConfigKey.
func NewStringKey(name string) ConfigKey[string] {
	return NewConfigKey(name, cast.ToStringE)
}

// Create a new bool-valued ConfigKey.
func NewBoolKey(name string) ConfigKey[bool] {
	return NewConfigKey(name, cast.ToBoolE)
}

// Create a new int-valued ConfigKey.
func NewIntKey(name string) ConfigKey[int] {
	return NewConfigKey(name, cast.ToIntE)
}

// Create a new string-slice-valued ConfigKey.
func NewStringSliceKey(name string) ConfigKey[[]string] {
	return NewConfigKey(name, cast.ToStringSliceE)
}

// Create a new string-map-valued ConfigKey.
func NewStringMapKey(name string) ConfigKey[map[string]string] {
	return NewConfigKey(name, cast.ToStringMapStringE)
}

func (k ConfigKey[T]) Name() string {
	return k.name
}

func (k ConfigKey[T]) normalize(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	return k.convert(value)
}

// Has reports whether the attribute is present (possibly with a nil value).
func (k ConfigKey[T]) Has(c *Config) bool {
	_, ok := c.Attributes[k.name]
	return ok
}

// Get returns the attribute value and whether it is present.
// Present nil values, or values not convertible into T, yield the zero value of T.
func (k ConfigKey[T]) Get(c *Config) (T, bool) {
	var zero T
	value, ok := c.Attributes[k.name]
	if !ok {
		return zero, false
	}
	if value == nil {
		return zero, true
	}
	if v, ok := value.(T); ok {
		return v, true
	}
	v, err := k.convert(value)
	if err != nil {
		return zero, true
	}
	return v, true
}

// Set sets the attribute value.
func (k ConfigKey[T]) Set(c *Config, value T) {
	if c.Attributes == nil {
		c.Attributes = make(Attributes)
	}
	c.Attributes[k.name] = value
}
