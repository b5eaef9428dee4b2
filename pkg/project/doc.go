/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

/*
Package project resolves facts about the source project (root, build name and version, git remotes and HEAD commit).
The result is plain data; it is resolved before generation starts and never touched afterwards.
*/
package project
