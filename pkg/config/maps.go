/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

// Deep-merge two maps with the usual logic and return the result.
// Nested maps (of type map[string]any) are merged recursively; all other values of y replace the values of x.
// The maps given as input will not be changed. Both maps can be passed as nil.
func MergeMaps(x, y map[string]any) map[string]any {
	result := make(map[string]any, len(x))
	MergeMapInto(result, x)
	MergeMapInto(result, y)
	return result
}

// Deep-merge second map (y) over first map (x) with the usual logic.
// The first map will be changed (unless y is empty or nil), the second map will not be changed,
// and x will not share any nested maps or slices with y afterwards.
// The first map must not be nil, the second map is allowed to be nil.
func MergeMapInto(x map[string]any, y map[string]any) {
	for k := range y {
		if v, ok := x[k].(map[string]any); ok {
			if w, ok := y[k].(map[string]any); ok {
				MergeMapInto(v, w)
				continue
			}
		}
		x[k] = copyValue(y[k])
	}
}

func copyValue(x any) any {
	switch v := x.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, w := range v {
			result[k] = copyValue(w)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, w := range v {
			result[i] = copyValue(w)
		}
		return result
	case map[string]string:
		result := make(map[string]string, len(v))
		for k, w := range v {
			result[k] = w
		}
		return result
	case []string:
		return append([]string(nil), v...)
	default:
		return x
	}
}
