/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package fileutils

import (
	"io/fs"
	"path"

	"github.com/pkg/errors"
)

// Name patterns of configuration fragment files.
var FragmentPatterns = []string{"*.yaml", "*.yml", "*.json"}

// Expand the given paths (relative to fsys) into a list of files. Regular files are returned as they are;
// directories are replaced by the fragment files they contain (see FragmentPatterns), recursively and in
// lexical order. The order of the given paths is retained.
func ExpandPaths(fsys fs.FS, paths []string) ([]string, error) {
	var result []string
	for _, p := range paths {
		info, err := fs.Stat(fsys, p)
		if err != nil {
			return nil, errors.Wrapf(err, "error reading %s", p)
		}
		if !info.IsDir() {
			result = append(result, path.Clean(p))
			continue
		}
		files, err := Find(fsys, p, FragmentPatterns, FileTypeRegular, 0)
		if err != nil {
			return nil, errors.Wrapf(err, "error scanning directory %s", p)
		}
		result = append(result, files...)
	}
	return result, nil
}
