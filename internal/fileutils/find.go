/*
SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and manifest-decoration-runtime contributors
SPDX-License-Identifier: Apache-2.0
*/

package fileutils

import (
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/sap/go-generics/slices"
)

const (
	FileTypeRegular uint = 1 << iota
	FileTypeDir
	FileTypeSymlink
	FileTypeOther
	FileTypeAny = FileTypeRegular | FileTypeDir | FileTypeSymlink | FileTypeOther
)

const maxDepthLimit = 10000

func fileTypeFromMode(mode fs.FileMode) uint {
	switch {
	case mode&fs.ModeType == 0:
		return FileTypeRegular
	case mode&fs.ModeDir != 0:
		return FileTypeDir
	case mode&fs.ModeSymlink != 0:
		return FileTypeSymlink
	default:
		return FileTypeOther
	}
}

// Search fsys for all entries under dir whose name matches one of namePatterns and whose type matches fileType.
// An empty dir means the whole fsys. Name patterns are matched with path.Match() and must not contain slashes
// (otherwise a panic is raised); no patterns means that all names match. A zero fileType is the same as FileTypeAny.
// A zero maxDepth means unlimited (that is, 10000 levels). Returned paths are relative to fsys, cleaned, and sorted.
// A non-existing dir yields an empty result.
func Find(fsys fs.FS, dir string, namePatterns []string, fileType uint, maxDepth uint) ([]string, error) {
	if dir == "" {
		dir = "."
	}
	if slices.Any(namePatterns, func(pattern string) bool { return strings.Contains(pattern, "/") }) {
		panic("invalid name pattern; must not contain slashes")
	}
	if fileType == 0 {
		fileType = FileTypeAny
	} else if fileType&FileTypeAny != fileType {
		panic("invalid file type")
	}
	if maxDepth == 0 || maxDepth > maxDepthLimit {
		maxDepth = maxDepthLimit
	}

	var result []string
	if err := find(fsys, path.Clean(dir), namePatterns, fileType, maxDepth, &result); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return slices.Sort(result), nil
}

func find(fsys fs.FS, dir string, namePatterns []string, fileType uint, depth uint, result *[]string) error {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		entryPath := path.Join(dir, entry.Name())
		matches, err := matchesAny(namePatterns, entry.Name())
		if err != nil {
			return err
		}
		if matches && fileTypeFromMode(entry.Type())&fileType != 0 {
			*result = append(*result, entryPath)
		}
		if entry.IsDir() && depth > 1 {
			if err := find(fsys, entryPath, namePatterns, fileType, depth-1, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func matchesAny(patterns []string, name string) (bool, error) {
	if len(patterns) == 0 {
		return true, nil
	}
	for _, pattern := range patterns {
		match, err := path.Match(pattern, name)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
