/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

import (
	"fmt"
	"strings"
)

// ConfigurationError is returned if composition cannot produce a fully populated configuration record.
type ConfigurationError struct {
	fields []string
	err    error
}

// Create a new ConfigurationError for the given (missing or invalid) fields.
func NewConfigurationError(err error, fields ...string) ConfigurationError {
	return ConfigurationError{fields: fields, err: err}
}

func (e ConfigurationError) Error() string {
	if len(e.fields) == 0 {
		return fmt.Sprintf("invalid configuration: %s", e.err)
	}
	return fmt.Sprintf("invalid configuration (%s): %s", strings.Join(e.fields, ", "), e.err)
}

func (e ConfigurationError) Unwrap() error {
	return e.err
}

func (e ConfigurationError) Cause() error {
	return e.err
}

// Fields returns the names of the fields causing the error.
func (e ConfigurationError) Fields() []string {
	return e.fields
}

// UnknownGroupError is returned if a decorator is registered against a group which was never ensured.
type UnknownGroupError struct {
	group string
}

func NewUnknownGroupError(group string) UnknownGroupError {
	return UnknownGroupError{group: group}
}

func (e UnknownGroupError) Error() string {
	return fmt.Sprintf("unknown resource group: %s", e.group)
}

// Group returns the name of the unknown group.
func (e UnknownGroupError) Group() string {
	return e.group
}

// InvalidStateError is returned if a single-use object (registry, session) is driven out of order or reused.
type InvalidStateError struct {
	state  string
	action string
}

func NewInvalidStateError(state string, action string) InvalidStateError {
	return InvalidStateError{state: state, action: action}
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s in state %s", e.action, e.state)
}

func (e InvalidStateError) State() string {
	return e.state
}
