// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"slices"
	"strings"
)

// globLiteralPrefixes extracts literal directory prefixes from a glob pattern.
//
// A prefix is a wildcard-free leading directory path usable for traversal
// pruning. The final segment is the filename part and never contributes.
// An empty result means pruning is impossible and the whole subtree must be
// traversed.
func globLiteralPrefixes(pattern string) []string {
	clean := strings.TrimPrefix(pattern, "./")
	if clean == "" {
		return nil
	}

	segments := make([]string, 0, strings.Count(clean, "/")+1)
	for segment := range strings.SplitSeq(clean, "/") {
		if segment != "" && segment != "." {
			segments = append(segments, segment)
		}
	}

	// A bare filename pattern has no directory component to prune on.
	if len(segments) <= 1 {
		return nil
	}

	prefixes := []string{""}
	for _, segment := range segments[:len(segments)-1] {
		if segment == ".." || segmentHasWildcard(segment) {
			break
		}

		var next []string
		if options, ok := expandBraceSegment(segment); ok {
			// Cartesian product of accumulated prefixes and brace options.
			for _, prefix := range prefixes {
				for _, option := range options {
					next = append(next, joinPrefix(prefix, option))
				}
			}
		} else if strings.ContainsAny(segment, "{}") {
			// Unparseable brace use: stop with whatever was accumulated.
			break
		} else {
			for _, prefix := range prefixes {
				next = append(next, joinPrefix(prefix, segment))
			}
		}

		if len(next) == 0 {
			break
		}

		prefixes = next
	}

	if len(prefixes) == 1 && prefixes[0] == "" {
		return nil
	}

	return prefixes
}

// expandBraceSegment expands one "{a,b}" segment into concrete options.
func expandBraceSegment(segment string) ([]string, bool) {
	if !strings.HasPrefix(segment, "{") || !strings.HasSuffix(segment, "}") {
		return nil, false
	}

	inner := segment[1 : len(segment)-1]
	if strings.ContainsAny(inner, "{}") {
		return nil, false
	}

	options := make([]string, 0, strings.Count(inner, ",")+1)
	for option := range strings.SplitSeq(inner, ",") {
		option = strings.TrimSpace(option)
		if option != "" {
			options = append(options, option)
		}
	}

	if len(options) == 0 {
		return nil, false
	}

	return options, true
}

// segmentHasWildcard reports whether a path segment contains glob wildcards.
func segmentHasWildcard(segment string) bool {
	return strings.ContainsAny(segment, "*?[")
}

// joinPrefix joins one accumulated prefix with the next literal segment.
func joinPrefix(prefix string, segment string) string {
	if prefix == "" {
		return segment
	}

	return prefix + "/" + segment
}

// normalizePrefixes dedups prefix candidates and rejects unusable sets.
//
// Any empty member means a pattern offered no prunable prefix, which
// invalidates pruning for the whole set.
func normalizePrefixes(prefixes []string) []string {
	if len(prefixes) == 0 {
		return nil
	}

	if slices.Contains(prefixes, "") {
		return nil
	}

	slices.Sort(prefixes)
	return slices.Compact(prefixes)
}
