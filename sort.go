// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// noMatchRank orders items matching no pattern after everything else.
const noMatchRank = int(^uint(0) >> 1)

// SortByGlobs orders paths by glob priority, then by full path string.
//
// Each item's rank is the index of the first matching pattern, or of the
// last one when endWeighted is set. Items matching nothing sort after all
// matches. The sort is stable and, with the path tiebreaker, deterministic.
func SortByGlobs(items []Path, globs []string, endWeighted bool) error {
	matchers := make([]glob.Glob, 0, len(globs))
	for _, pattern := range globs {
		// No separator: ranking patterns are priority labels, not path
		// filters, so a bare "*" covers nested paths too.
		matcher, err := glob.Compile(pattern)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, err)
		}

		matchers = append(matchers, matcher)
	}

	ranks := make(map[string]int, len(items))
	for _, item := range items {
		ranks[item.String()] = matchRank(item, matchers, endWeighted)
	}

	slices.SortStableFunc(items, func(a, b Path) int {
		if diff := ranks[a.String()] - ranks[b.String()]; diff != 0 {
			return diff
		}

		return strings.Compare(a.String(), b.String())
	})

	return nil
}

// matchRank returns the ordering rank of one path against the matchers.
func matchRank(item Path, matchers []glob.Glob, endWeighted bool) int {
	if len(matchers) == 0 {
		return noMatchRank
	}

	// Callers often produce "./" prefixed paths while patterns rarely
	// include it, so strip it for matching.
	candidate := strings.TrimPrefix(item.String(), "./")

	rank := noMatchRank
	for idx, matcher := range matchers {
		if !matcher.Match(candidate) {
			continue
		}

		if !endWeighted {
			return idx
		}

		rank = idx
	}

	return rank
}
