// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"iter"
	"slices"
)

// IterFiles returns a lazy sequence of files under dir matching the include
// patterns and surviving the exclude set.
//
// Patterns may be absolute (walked from their own wildcard-free base) or
// relative to dir, and may be negated with a leading "!". Pattern compile
// errors are returned before any directory I/O begins. The sequence is
// single-use; stopping early stops the underlying walk.
func IterFiles(dir string, includeGlobs []string, opts *ListOptions) (iter.Seq[Path], error) {
	return globsIter(dir, includeGlobs, opts, false)
}

// ListFiles collects IterFiles results into a slice.
func ListFiles(dir string, includeGlobs []string, opts *ListOptions) ([]Path, error) {
	seq, err := IterFiles(dir, includeGlobs, opts)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// IterDirs returns a lazy sequence of directories under dir.
//
// Exclude and prefix pruning work as for files. Include patterns only
// restrict the result when the caller supplied some: a nil pattern list
// yields every surviving directory.
func IterDirs(dir string, includeGlobs []string, opts *ListOptions) (iter.Seq[Path], error) {
	return globsIter(dir, includeGlobs, opts, true)
}

// ListDirs collects IterDirs results into a slice.
func ListDirs(dir string, includeGlobs []string, opts *ListOptions) ([]Path, error) {
	seq, err := IterDirs(dir, includeGlobs, opts)
	if err != nil {
		return nil, err
	}

	return slices.Collect(seq), nil
}

// groupWalk is one prepared per-group walk with its compiled include set.
type groupWalk struct {
	group globGroup
	set   *globSet
	depth int
}

// globsIter builds the chained, deduplicated walk sequence shared by file
// and directory iteration.
//
// All grouping and pattern compilation happens here, eagerly; the returned
// sequence performs only walking and matching.
func globsIter(dir string, includeGlobs []string, opts *ListOptions, wantDirs bool) (iter.Seq[Path], error) {
	mainBase, err := NewPath(dir)
	if err != nil {
		return nil, err
	}

	includes, negated := splitNegatedGlobs(includeGlobs)

	excludeSet, err := newGlobSet(foldExcludes(opts, negated))
	if err != nil {
		return nil, err
	}

	groups, err := processGlobs(mainBase, includes)
	if err != nil {
		return nil, err
	}

	relative := opts.relativeGlob()
	matchIncludes := !wantDirs || includeGlobs != nil

	walks := make([]groupWalk, 0, len(groups))
	for _, group := range groups {
		set, err := newGlobSet(group.patterns)
		if err != nil {
			return nil, err
		}

		walks = append(walks, groupWalk{
			group: group,
			set:   set,
			depth: resolveDepth(group.patterns, opts.depth()),
		})
	}

	seq := func(yield func(Path) bool) {
		// First occurrence wins across overlapping groups.
		seen := make(map[string]struct{})

		for _, walk := range walks {
			for candidate, isDir := range walkGroup(walk.group, excludeSet, relative, walk.depth) {
				if isDir != wantDirs {
					continue
				}

				if !wantDirs && pathExcluded(candidate, mainBase, excludeSet, relative) {
					continue
				}

				if matchIncludes {
					rel, ok := candidate.Diff(walk.group.base)
					if !ok {
						continue
					}

					if !walk.set.Match(rel) {
						continue
					}
				}

				key := candidate.String()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}

				if !yield(candidate) {
					return
				}
			}
		}
	}

	return seq, nil
}

// foldExcludes resolves the effective exclusion pattern list.
//
// Negated include patterns extend caller excludes; when the caller supplied
// none, negated patterns replace the default set instead of extending it.
func foldExcludes(opts *ListOptions, negated []string) []string {
	if len(negated) == 0 {
		return opts.excludeGlobs()
	}

	if opts == nil || opts.ExcludeGlobs == nil {
		return negated
	}

	return append(slices.Clone(opts.ExcludeGlobs), negated...)
}
