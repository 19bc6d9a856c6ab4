// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"path/filepath"
	"slices"
	"strings"
)

// topMaxDepth caps walk recursion for patterns with unbounded depth ("**").
const topMaxDepth = 100

// splitNegatedGlobs separates include patterns from "!" negated exclusions.
//
// A nil pattern list and an all-negated list both fall back to a single "**"
// include so grouping always has something to traverse.
func splitNegatedGlobs(globs []string) (includes []string, negated []string) {
	if globs == nil {
		return []string{"**"}, nil
	}

	includes = make([]string, 0, len(globs))
	for _, pattern := range globs {
		if stripped, ok := strings.CutPrefix(pattern, "!"); ok {
			negated = append(negated, stripped)
			continue
		}

		includes = append(includes, pattern)
	}

	if len(includes) == 0 && len(negated) > 0 {
		includes = append(includes, "**")
	}

	return includes, negated
}

// processGlobs partitions include patterns into glob groups.
//
// Phase 1 assigns every pattern a base directory: absolute patterns get their
// longest wildcard-free prefix, relative patterns collapse onto mainBase.
// Phase 2 folds bases related by the directory-prefix relation into merged
// groups, rewriting patterns by the base offset, then computes each group's
// literal pruning prefixes.
func processGlobs(mainBase Path, globs []string) ([]globGroup, error) {
	raw, err := collectRawGroups(mainBase, globs)
	if err != nil {
		return nil, err
	}

	// Shortest base first, so ancestors are finalized before descendants.
	slices.SortStableFunc(raw, func(a, b rawGroup) int {
		return len(a.base.String()) - len(b.base.String())
	})

	final := make([]globGroup, 0, len(raw))
	for _, group := range raw {
		final = mergeRawGroup(final, group)
	}

	for i := range final {
		final[i].prefixes = groupPrefixes(final[i].patterns)
	}

	return final, nil
}

// rawGroup is a pre-merge (base, patterns) pair.
type rawGroup struct {
	base     Path
	patterns []string
}

// collectRawGroups builds the immutable pre-merge group list.
func collectRawGroups(mainBase Path, globs []string) ([]rawGroup, error) {
	groups := make([]rawGroup, 0, len(globs))
	var relative []string

	for _, pattern := range globs {
		patternPath, err := NewPath(pattern)
		if err != nil {
			return nil, err
		}

		if patternPath.IsAbs() {
			base := longestWildFreeBase(patternPath)
			rel := relativeFromAbsolute(patternPath, base)

			idx := slices.IndexFunc(groups, func(g rawGroup) bool {
				return g.base.String() == base.String()
			})
			if idx >= 0 {
				groups[idx].patterns = append(groups[idx].patterns, rel)
			} else {
				groups = append(groups, rawGroup{base: base, patterns: []string{rel}})
			}

			continue
		}

		relative = append(relative, collapseRelativePattern(mainBase, patternPath.String()))
	}

	if len(relative) > 0 {
		groups = append(groups, rawGroup{base: mainBase, patterns: relative})
	}

	return groups, nil
}

// collapseRelativePattern strips mainBase from a relative pattern spelled
// with the base directory included, so "dir/x/*.md" under base "dir" becomes
// "x/*.md". The comparison is component-safe: the base must be followed by a
// separator in the pattern.
func collapseRelativePattern(mainBase Path, pattern string) string {
	cleaned := strings.TrimPrefix(pattern, "./")

	base := strings.TrimPrefix(mainBase.String(), "./")
	base = strings.TrimSuffix(base, "/")
	if base == "" {
		return cleaned
	}

	if rest, ok := strings.CutPrefix(cleaned, base+"/"); ok {
		return rest
	}

	return cleaned
}

// mergeRawGroup folds one raw group into the finalized group list.
//
// Only one merge direction can apply per pair: two related bases are totally
// ordered by the directory-prefix relation.
func mergeRawGroup(final []globGroup, group rawGroup) []globGroup {
	for i := range final {
		if group.base.StartsWith(final[i].base) {
			// Existing base is an ancestor of (or equals) the new base:
			// adopt the new patterns, shifted by the base offset.
			offset, _ := group.base.Diff(final[i].base)
			final[i].patterns = append(final[i].patterns, rewritePatterns(offset, group.patterns)...)
			return final
		}

		if final[i].base.StartsWith(group.base) {
			// New base is an ancestor of the existing base: rebase the group,
			// shifting the previously collected patterns instead.
			offset, _ := final[i].base.Diff(group.base)
			patterns := slices.Clone(group.patterns)
			patterns = append(patterns, rewritePatterns(offset, final[i].patterns)...)
			final[i] = globGroup{base: group.base, patterns: patterns}
			return final
		}
	}

	return append(final, globGroup{base: group.base, patterns: slices.Clone(group.patterns)})
}

// rewritePatterns prepends a base offset to every pattern.
func rewritePatterns(offset Path, patterns []string) []string {
	if offset.String() == "" {
		return slices.Clone(patterns)
	}

	out := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		out = append(out, offset.Join(pattern).String())
	}

	return out
}

// groupPrefixes unions literal prefixes across the group's patterns.
//
// A single pattern without a usable prefix disables pruning for the group.
func groupPrefixes(patterns []string) []string {
	var union []string
	for _, pattern := range patterns {
		prefixes := globLiteralPrefixes(pattern)
		if len(prefixes) == 0 {
			return nil
		}

		union = append(union, prefixes...)
	}

	return normalizePrefixes(union)
}

// longestWildFreeBase returns the longest leading path free of "*" and "?".
func longestWildFreeBase(pattern Path) Path {
	raw := pattern.String()

	var b strings.Builder
	rooted := strings.HasPrefix(raw, "/")
	if rooted {
		b.WriteByte('/')
	}

	first := true
	for segment := range strings.SplitSeq(strings.TrimPrefix(raw, "/"), "/") {
		if segment == "" {
			continue
		}

		if strings.ContainsAny(segment, "*?") {
			break
		}

		if !first {
			b.WriteByte('/')
		}

		b.WriteString(segment)
		first = false
	}

	return Path{raw: b.String()}
}

// relativeFromAbsolute rewrites an absolute pattern relative to its base.
//
// Falls back to the full pattern when no relation can be computed.
func relativeFromAbsolute(pattern Path, base Path) string {
	rel, ok := pattern.Diff(base)
	if !ok {
		return pattern.String()
	}

	return rel.String()
}

// resolveDepth computes the walk depth bound for a pattern set.
//
// An explicit positive depth wins. Any "**" makes the depth effectively
// unbounded (capped at topMaxDepth). Otherwise the bound is the maximum
// separator-delimited segment count across patterns, at least 1.
func resolveDepth(patterns []string, depth int) int {
	if depth > 0 {
		return depth
	}

	for _, pattern := range patterns {
		if strings.Contains(pattern, "**") {
			return topMaxDepth
		}
	}

	maxDepth := 0
	for _, pattern := range patterns {
		count := strings.Count(pattern, "/") + strings.Count(pattern, `\`) + 1
		if count > maxDepth {
			maxDepth = count
		}
	}

	if maxDepth < 1 {
		return 1
	}

	return maxDepth
}

// fromSlashRoot converts a group base into an OS walk root.
func fromSlashRoot(base Path) string {
	root := filepath.FromSlash(base.String())
	if root == "" {
		root = "."
	}

	return root
}
