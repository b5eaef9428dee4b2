/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package cmd

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sap/go-generics/slices"

	"github.com/sap/manifest-decoration-runtime/pkg/config"
)

// Return the root filesystem, and the given local paths relative to it.
func rootFS(paths []string) (fs.FS, []string, error) {
	var result []string
	for _, path := range paths {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return nil, nil, err
		}
		relativePath := filepath.ToSlash(absolutePath)[1:]
		if relativePath == "" {
			relativePath = "."
		}
		result = append(result, relativePath)
	}
	return os.DirFS("/"), result, nil
}

func configTypeNames() []string {
	return slices.Collect(config.Types, func(t config.Type) string { return string(t) })
}
