// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

// ListOptions controls file and directory listing behavior.
type ListOptions struct {
	// ExcludeGlobs are exclusion patterns matched during the walk.
	// Nil applies DefaultExcludeGlobs; an empty non-nil slice disables
	// exclusion entirely.
	ExcludeGlobs []string `json:"exclude_globs,omitempty" yaml:"exclude_globs,omitempty"`
	// RelativeGlob evaluates include and exclude patterns against paths
	// relative to the starting directory instead of full walked paths.
	RelativeGlob bool `json:"relative_glob,omitempty" yaml:"relative_glob,omitempty"`
	// Depth bounds walk recursion. Zero derives the bound from the
	// governing patterns.
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// globGroup is one walkable unit produced by pattern grouping.
//
// Invariant: every pattern and every prefix is expressed relative to base.
// Groups are created once per call and never mutated afterwards.
type globGroup struct {
	// base is the directory the group walk starts from.
	base Path
	// patterns are include patterns relative to base, in caller order.
	patterns []string
	// prefixes are literal directory prefixes used for pruning.
	// Empty means pruning is impossible and the subtree is fully traversed.
	prefixes []string
}

// excludeGlobs returns the effective exclusion pattern list.
func (opts *ListOptions) excludeGlobs() []string {
	if opts == nil || opts.ExcludeGlobs == nil {
		return DefaultExcludeGlobs
	}

	return opts.ExcludeGlobs
}

// relativeGlob reports whether relative matching mode is enabled.
func (opts *ListOptions) relativeGlob() bool {
	return opts != nil && opts.RelativeGlob
}

// depth returns the caller-provided depth bound, zero when unset.
func (opts *ListOptions) depth() int {
	if opts == nil {
		return 0
	}

	return opts.Depth
}
