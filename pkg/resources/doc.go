/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package resources contains the resource documents decorators operate on, the mutable Group builder holding them
while a generation run is in progress, and factories for the resource kinds created by the builtin decorators.
Documents are unstructured objects; typed API structs are only used to build them.
*/
package resources
