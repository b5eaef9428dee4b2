/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"reflect"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
)

// Configurator mutates a configuration record while the fallback configuration is built.
type Configurator interface {
	Configure(config Configuration)
}

// ConfiguratorFunc is a function implementing the Configurator interface.
type ConfiguratorFunc func(config Configuration)

var _ Configurator = ConfiguratorFunc(nil)

func (f ConfiguratorFunc) Configure(config Configuration) {
	f(config)
}

// Supplier builds a fallback configuration from a base record (built-in defaults) and configurators
// (project derived facts), and declares the extension attribute keys its consumer understands.
type Supplier struct {
	base          Configuration
	configurators []Configurator
	derivations   []Configurator
	keys          []AttributeKey
}

// Create a new Supplier; the given base record is never modified.
func NewSupplier(base Configuration) *Supplier {
	return &Supplier{base: base}
}

// Add a configurator; configurators are applied in the order they were added.
func (s *Supplier) WithConfigurator(configurator Configurator) *Supplier {
	s.configurators = append(s.configurators, configurator)
	return s
}

// Add a derivation; derivations run after all user fragments have been merged, and are meant to fill
// fields which depend on other (possibly overridden) fields, such as the image name.
func (s *Supplier) WithDerivation(configurator Configurator) *Supplier {
	s.derivations = append(s.derivations, configurator)
	return s
}

// Declare typed extension attribute keys; attributes with these names are converted (or rejected) during composition.
func (s *Supplier) WithAttributeKeys(keys ...AttributeKey) *Supplier {
	s.keys = append(s.keys, keys...)
	return s
}

// Return the configuration variant produced by this supplier.
func (s *Supplier) GetType() Type {
	return s.base.GetType()
}

// Build the fallback configuration.
func (s *Supplier) Get() (Configuration, error) {
	config, err := deepCopy(s.base)
	if err != nil {
		return nil, err
	}
	for _, configurator := range s.configurators {
		configurator.Configure(config)
	}
	return config, nil
}

func deepCopy(config Configuration) (Configuration, error) {
	// attributes are copied separately; copier does not handle nested interface values
	var source, result Configuration
	switch c := config.(type) {
	case *KubernetesConfig:
		x := *c
		x.Attributes = nil
		source, result = &x, &KubernetesConfig{}
	case *OpenshiftConfig:
		x := *c
		x.Attributes = nil
		source, result = &x, &OpenshiftConfig{}
	default:
		return nil, errors.Errorf("unsupported configuration type %T", config)
	}
	if err := copier.CopyWithOption(result, source, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrapf(err, "error copying configuration of type %s", config.GetType())
	}
	// copier turns nil slices into empty ones
	restoreNilSlices(reflect.ValueOf(source).Elem(), reflect.ValueOf(result).Elem())
	if attributes := config.GetConfig().Attributes; attributes != nil {
		result.GetConfig().Attributes = Attributes(copyValue(map[string]any(attributes)).(map[string]any))
	}
	return result, nil
}

func restoreNilSlices(source reflect.Value, target reflect.Value) {
	switch source.Kind() {
	case reflect.Struct:
		for i := 0; i < source.NumField(); i++ {
			if target.Field(i).CanSet() {
				restoreNilSlices(source.Field(i), target.Field(i))
			}
		}
	case reflect.Slice:
		if source.IsNil() {
			target.Set(reflect.Zero(target.Type()))
			return
		}
		for i := 0; i < source.Len() && i < target.Len(); i++ {
			restoreNilSlices(source.Index(i), target.Index(i))
		}
	case reflect.Pointer:
		if !source.IsNil() && !target.IsNil() {
			restoreNilSlices(source.Elem(), target.Elem())
		}
	}
}
