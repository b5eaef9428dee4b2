/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package templatex

import (
	"encoding/json"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	kyaml "sigs.k8s.io/yaml"
)

const (
	maxIncludeDepth   = 1000
	maxDnsLabelLength = 63
	shortCommitLength = 7
)

// Return the functions available in fragment templates, in addition to the sprig library.
// Functions which need access to the template itself (include, tpl) are bound to t.
func FuncMap(t *template.Template) template.FuncMap {
	return template.FuncMap{
		"toYaml":      toYaml,
		"fromYaml":    fromYaml,
		"toJson":      toJson,
		"fromJson":    fromJson,
		"required":    required,
		"dnsLabel":    dnsLabel,
		"shortCommit": shortCommit,
		"include":     newIncludeFunc(t),
		"tpl":         newTplFunc(t),
	}
}

func toYaml(data any) (string, error) {
	raw, err := kyaml.Marshal(data)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(raw), "\n"), nil
}

func fromYaml(data string) (map[string]any, error) {
	var result map[string]any
	if err := kyaml.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func toJson(data any) (string, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func fromJson(data string) (map[string]any, error) {
	var result map[string]any
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, err
	}
	return result, nil
}

func required(message string, data any) (any, error) {
	if s, ok := data.(string); data == nil || ok && s == "" {
		return data, errors.New(message)
	}
	return data, nil
}

// convert an arbitrary name (e.g. a go module path or a camel case build name) into a valid resource name
func dnsLabel(name string) string {
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	label := strcase.ToKebab(name)
	if len(label) > maxDnsLabelLength {
		label = label[:maxDnsLabelLength]
	}
	return strings.Trim(label, "-")
}

func shortCommit(commit string) string {
	if len(commit) > shortCommitLength {
		return commit[:shortCommitLength]
	}
	return commit
}

func newIncludeFunc(t *template.Template) func(string, any) (string, error) {
	depths := make(map[string]int)

	return func(name string, data any) (string, error) {
		if depths[name] >= maxIncludeDepth {
			return "", errors.Errorf("error including template %s: maximum nesting depth exceeded", name)
		}
		depths[name]++
		defer func() { depths[name]-- }()
		var buf strings.Builder
		if err := t.ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}

func newTplFunc(t *template.Template) func(string, any) (string, error) {
	return func(text string, data any) (string, error) {
		clone, err := t.Clone()
		if err != nil {
			return "", errors.Wrap(err, "error cloning template")
		}
		if _, err := clone.New("tpl").Parse(text); err != nil {
			return "", err
		}
		var buf strings.Builder
		if err := clone.ExecuteTemplate(&buf, "tpl", data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
}
