/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package config

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pkg/errors"

	"github.com/sap/manifest-decoration-runtime/internal/templatex"
	"github.com/sap/manifest-decoration-runtime/pkg/project"
	"github.com/sap/manifest-decoration-runtime/pkg/types"
)

// TemplateFragmentSource produces a configuration fragment by rendering a go template over the project facts.
// The template can use all functions from the sprig library, plus toYaml, fromYaml, toJson, fromJson, required,
// include, tpl, dnsLabel and shortCommit. The project facts are available as .Project (see project.Project.ToUnstructured()).
type TemplateFragmentSource struct {
	template *template.Template
}

// Create a new TemplateFragmentSource (reading the template from the given fsys and path).
// If fsys is nil, the local OS filesystem will be used.
func NewTemplateFragmentSource(fsys fs.FS, path string) (*TemplateFragmentSource, error) {
	if fsys == nil {
		fsys = os.DirFS("/")
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		path = absolutePath[1:]
	}

	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading fragment template %s", path)
	}
	return NewTemplateFragmentSourceFromString(filepath.Base(path), string(raw))
}

// Create a new TemplateFragmentSource from the given template text.
func NewTemplateFragmentSourceFromString(name string, text string) (*TemplateFragmentSource, error) {
	t := template.New(name)
	t.Option("missingkey=zero").
		Funcs(sprig.TxtFuncMap()).
		Funcs(templatex.FuncMap(t))
	if _, err := t.Parse(text); err != nil {
		return nil, types.NewConfigurationError(errors.Wrapf(err, "error parsing fragment template %s", name))
	}
	return &TemplateFragmentSource{template: t}, nil
}

// Render the template and decode the result as fragment (see LoadFragment()).
func (s *TemplateFragmentSource) Render(p *project.Project, lookup func(string) string) (*Fragment, error) {
	data := map[string]any{
		"Project": map[string]any{},
	}
	if p != nil {
		data["Project"] = p.ToUnstructured()
	}
	var buf bytes.Buffer
	if err := s.template.Execute(&buf, data); err != nil {
		return nil, types.NewConfigurationError(errors.Wrapf(err, "error rendering fragment template %s", s.template.Name()))
	}
	return LoadFragment(templatex.AdjustTemplateOutput(buf.Bytes()), lookup)
}
