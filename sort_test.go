// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"errors"
	"slices"
	"testing"
)

func pathList(raws ...string) []Path {
	items := make([]Path, 0, len(raws))
	for _, raw := range raws {
		items = append(items, Path{raw: raw})
	}

	return items
}

func pathStrings(items []Path) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.String())
	}

	return out
}

func TestSortByGlobsEndWeighted(t *testing.T) {
	t.Parallel()

	items := pathList("src/list/sort.rs", "src/list/mod.rs")
	globs := []string{"src/**", "src/list/**", "src/list/sort.rs"}

	// With end weighting the most specific (last) matching pattern wins,
	// so mod.rs (rank 1) sorts before sort.rs (rank 2).
	if err := SortByGlobs(items, globs, true); err != nil {
		t.Fatalf("SortByGlobs: %v", err)
	}

	want := []string{"src/list/mod.rs", "src/list/sort.rs"}
	if got := pathStrings(items); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortByGlobsFirstWeighted(t *testing.T) {
	t.Parallel()

	items := pathList("src/list/mod.rs", "src/list/sort.rs")
	globs := []string{"src/list/sort.rs", "src/**"}

	if err := SortByGlobs(items, globs, false); err != nil {
		t.Fatalf("SortByGlobs: %v", err)
	}

	want := []string{"src/list/sort.rs", "src/list/mod.rs"}
	if got := pathStrings(items); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortByGlobsNonMatchesLast(t *testing.T) {
	t.Parallel()

	items := pathList("README.md", "src/main.rs", "Cargo.toml")

	if err := SortByGlobs(items, []string{"src/**"}, false); err != nil {
		t.Fatalf("SortByGlobs: %v", err)
	}

	want := []string{"src/main.rs", "Cargo.toml", "README.md"}
	if got := pathStrings(items); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortByGlobsStarCrossesSeparators(t *testing.T) {
	t.Parallel()

	// Ranking patterns are not path filters: a bare "*.rs" must rank
	// nested paths too.
	items := pathList("docs/a.md", "src/deep/b.rs")

	if err := SortByGlobs(items, []string{"*.rs"}, false); err != nil {
		t.Fatalf("SortByGlobs: %v", err)
	}

	want := []string{"src/deep/b.rs", "docs/a.md"}
	if got := pathStrings(items); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortByGlobsDottedPrefix(t *testing.T) {
	t.Parallel()

	items := pathList("./src/b.rs", "./docs/a.md")

	if err := SortByGlobs(items, []string{"src/**"}, false); err != nil {
		t.Fatalf("SortByGlobs: %v", err)
	}

	want := []string{"./src/b.rs", "./docs/a.md"}
	if got := pathStrings(items); !slices.Equal(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestSortByGlobsInvalidPattern(t *testing.T) {
	t.Parallel()

	items := pathList("a.md")
	if err := SortByGlobs(items, []string{"[unclosed"}, false); !errors.Is(err, ErrInvalidGlob) {
		t.Fatalf("error = %v, want ErrInvalidGlob", err)
	}
}
