/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package types

// Unstructurable represents records which can be rendered as a string-keyed map of JSON values.
// Project facts and configuration records implement it; the result is used as template data and for logging.
type Unstructurable interface {
	ToUnstructured() map[string]any
}
