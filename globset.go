// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludeGlobs is applied when list options carry no exclude set.
//
// Covers version-control metadata, build output, and dependency directories.
var DefaultExcludeGlobs = []string{"**/.git", "**/.DS_Store", "**/target", "**/node_modules"}

// globSet matches a path string against a compiled ordered pattern set.
type globSet struct {
	// patterns are validated patterns with any leading "./" stripped.
	patterns []string
}

// newGlobSet validates patterns eagerly and builds a set matcher.
//
// Validation happens before any directory I/O so malformed patterns fail the
// whole call up front.
func newGlobSet(patterns []string) (*globSet, error) {
	compiled := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		trimmed := strings.TrimPrefix(filepath.ToSlash(pattern), "./")
		if !doublestar.ValidatePattern(trimmed) {
			return nil, fmt.Errorf("%w: %q: %v", ErrInvalidGlob, pattern, doublestar.ErrBadPattern)
		}

		compiled = append(compiled, trimmed)
	}

	return &globSet{patterns: compiled}, nil
}

// Match reports whether any pattern in the set matches the path.
func (s *globSet) Match(candidate Path) bool {
	return s.MatchString(candidate.String())
}

// MatchString reports whether any pattern in the set matches the path string.
//
// A leading "./" on the candidate is ignored, so dotted walk roots and plain
// patterns compare on equal footing. The empty candidate (a path equal to
// its group base) goes through normal matching: "**" covers the base itself,
// and the empty pattern of a wildcard-free absolute file matches only it.
func (s *globSet) MatchString(candidate string) bool {
	if s == nil {
		return false
	}

	candidate = strings.TrimPrefix(candidate, "./")
	for _, pattern := range s.patterns {
		if doublestar.MatchUnvalidated(pattern, candidate) {
			return true
		}
	}

	return false
}
