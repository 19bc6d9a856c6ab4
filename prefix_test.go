// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"slices"
	"testing"
)

func TestGlobLiteralPrefixes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pattern string
		want    []string
	}{
		{"assets/images/*.png", []string{"assets/images"}},
		{"./assets/images/*.png", []string{"assets/images"}},
		{"*.png", nil},
		{"assets", nil},
		{"**/*.md", nil},
		{"src/**/*.rs", []string{"src"}},
		{"a/b*/c/d.txt", []string{"a"}},
		{"a/../b/*.txt", []string{"a"}},
		{"a/b?/*.txt", []string{"a"}},
		{"a/[xy]/*.txt", []string{"a"}},
	}

	for _, tc := range cases {
		got := globLiteralPrefixes(tc.pattern)
		if !slices.Equal(got, tc.want) {
			t.Fatalf("globLiteralPrefixes(%q) = %v, want %v", tc.pattern, got, tc.want)
		}
	}
}

func TestGlobLiteralPrefixesBraceExpansion(t *testing.T) {
	t.Parallel()

	got := globLiteralPrefixes("{foo,bar}/images/*.png")
	want := []string{"bar/images", "foo/images"}
	got = normalizePrefixes(got)
	if !slices.Equal(got, want) {
		t.Fatalf("brace expansion = %v, want %v", got, want)
	}

	// Nested braces cannot be cleanly parsed: stop with the accumulated set.
	got = globLiteralPrefixes("a/{b,{c,d}}/e/*.md")
	if !slices.Equal(got, []string{"a"}) {
		t.Fatalf("nested brace = %v, want [a]", got)
	}

	// Leading unparseable brace segment leaves nothing to prune on.
	if got := globLiteralPrefixes("{a,{b}}/c/*.md"); got != nil {
		t.Fatalf("leading nested brace = %v, want nil", got)
	}
}

func TestExpandBraceSegment(t *testing.T) {
	t.Parallel()

	options, ok := expandBraceSegment("{foo, bar}")
	if !ok || !slices.Equal(options, []string{"foo", "bar"}) {
		t.Fatalf("expandBraceSegment = %v (%v), want [foo bar]", options, ok)
	}

	if _, ok := expandBraceSegment("{}"); ok {
		t.Fatalf("empty brace must not expand")
	}

	if _, ok := expandBraceSegment("plain"); ok {
		t.Fatalf("plain segment must not expand")
	}

	if _, ok := expandBraceSegment("{a,{b}}"); ok {
		t.Fatalf("nested brace must not expand")
	}
}

func TestNormalizePrefixes(t *testing.T) {
	t.Parallel()

	if got := normalizePrefixes([]string{"b", "a", "a"}); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("normalizePrefixes = %v, want [a b]", got)
	}

	if got := normalizePrefixes([]string{"", "a"}); got != nil {
		t.Fatalf("empty member must invalidate the set, got %v", got)
	}

	if got := normalizePrefixes(nil); got != nil {
		t.Fatalf("nil input must stay nil, got %v", got)
	}
}
