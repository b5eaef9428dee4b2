/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

// Package kubernetes implements the manifest generator for the plain kubernetes deployment target.
package kubernetes
