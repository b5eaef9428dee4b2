/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package manifests contains the Generator interface, the decoration routine shared by all generators,
and the Session type, which orchestrates a complete generation run: it composes the configuration of every
deployment target, lets the responsible generators register their decorators, and applies them.
*/
package manifests
