// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

/*
Package pathglob implements glob-driven filesystem traversal with prune-aware
directory walking and priority sorting.

Given a starting directory, include/exclude glob patterns (possibly absolute,
possibly negated with a leading "!"), and list options, the package produces
the exact deduplicated set of matching files or directories without scanning
the same subtree twice and without descending into subtrees that provably
cannot contain a match.

Basic flow:
  - list or iterate files (`ListFiles` / `IterFiles`)
  - list or iterate directories (`ListDirs` / `IterDirs`)
  - optionally order results by pattern priority (`SortByGlobs`)

Pattern handling:
  - absolute patterns are grouped under their wildcard-free base directory
    and walked from there, even outside the starting directory
  - relative patterns are evaluated against the starting directory
  - "!" prefixed patterns become exclusions
  - groups whose bases are ancestors of each other are merged, and literal
    directory prefixes extracted from patterns prune the walk

Pattern syntax is the doublestar dialect: "*" and "?" do not cross "/",
"**" does, "{a,b}" alternation and "[...]" classes are supported.

For pattern lists kept in files, use `LoadPatternsFile` / `ParsePatterns`;
for extension-based includes use `ExtensionPatterns`.
*/
package pathglob
