// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// walkGroup walks one glob group's subtree and yields surviving entries.
//
// Directories are pruned before their children are read: an excluded or
// prefix-rejected directory is skipped whole. Files are never prefix-pruned;
// final acceptance is the iterator's job. Depth counts components below the
// walk root, so depth 1 yields the root and its immediate children.
//
// Per-entry I/O errors and non-UTF-8 names are skipped, never fatal.
func walkGroup(group globGroup, exclude *globSet, relative bool, depth int) iter.Seq2[Path, bool] {
	return func(yield func(Path, bool) bool) {
		root := fromSlashRoot(group.base)

		_ = filepath.WalkDir(root, func(osPath string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}

			candidate, ok := newPathLossy(osPath)
			if !ok {
				if entry.IsDir() {
					return fs.SkipDir
				}

				return nil
			}

			if !entry.IsDir() {
				if !yield(candidate, false) {
					return fs.SkipAll
				}

				return nil
			}

			if pathExcluded(candidate, group.base, exclude, relative) {
				return fs.SkipDir
			}

			if len(group.prefixes) > 0 && !dirMatchesPrefixes(candidate, group.base, group.prefixes) {
				return fs.SkipDir
			}

			if !yield(candidate, true) {
				return fs.SkipAll
			}

			if entryDepth(root, osPath) >= depth {
				return fs.SkipDir
			}

			return nil
		})
	}
}

// pathExcluded reports whether the exclude set rejects a walked path.
//
// Relative mode matches the path relative to base; a failed relative-path
// computation means no match, not an error.
func pathExcluded(candidate Path, base Path, exclude *globSet, relative bool) bool {
	if exclude == nil {
		return false
	}

	if relative {
		rel, ok := candidate.Diff(base)
		if !ok {
			return false
		}

		return exclude.Match(rel)
	}

	return exclude.Match(candidate)
}

// dirMatchesPrefixes reports whether a directory aligns with allowed prefixes.
//
// The base itself always passes. A directory passes when its base-relative
// path is a component-prefix of an allowed prefix (descent toward it) or an
// allowed prefix is a component-prefix of the path (enumeration below it).
func dirMatchesPrefixes(dir Path, base Path, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}

	rel, ok := dir.Diff(base)
	if !ok {
		return true
	}

	relStr := strings.TrimPrefix(rel.String(), "./")
	if relStr == "" {
		return true
	}

	relPath := Path{raw: relStr}
	for _, prefix := range prefixes {
		if prefix == "" {
			return true
		}

		prefixPath := Path{raw: prefix}
		if relPath.StartsWith(prefixPath) || prefixPath.StartsWith(relPath) {
			return true
		}
	}

	return false
}

// entryDepth returns the component depth of a walked path below the root.
func entryDepth(root string, osPath string) int {
	rel, err := filepath.Rel(root, osPath)
	if err != nil || rel == "." {
		return 0
	}

	return strings.Count(rel, string(filepath.Separator)) + 1
}
