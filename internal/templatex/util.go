/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex

import "bytes"

// Fragment templates are rendered with the missingkey=zero option; still, a missing key in map[string]any data
// renders as '<no value>'. Like Helm, we replace all occurrences of that string by the empty string, so that
// absent project facts (e.g. .Project.scm on a project without git) render as empty values.
func AdjustTemplateOutput(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("<no value>"), []byte(""))
}
