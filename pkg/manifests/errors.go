/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package manifests

import (
	"fmt"
	"strings"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
)

// AmbiguousGeneratorError is returned if more than one generator accepts the same configuration type.
type AmbiguousGeneratorError struct {
	configType config.Type
	generators []string
}

func (e AmbiguousGeneratorError) Error() string {
	return fmt.Sprintf("more than one generator accepts configuration type %s (%s)", e.configType, strings.Join(e.generators, ", "))
}

func (e AmbiguousGeneratorError) Type() config.Type {
	return e.configType
}

// NoGeneratorError is returned if no generator accepts a configuration type.
type NoGeneratorError struct {
	configType config.Type
}

func (e NoGeneratorError) Error() string {
	return fmt.Sprintf("no generator accepts configuration type %s", e.configType)
}

func (e NoGeneratorError) Type() config.Type {
	return e.configType
}
