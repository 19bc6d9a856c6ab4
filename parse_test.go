// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"slices"
	"testing"
)

func TestParsePatterns(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString(`
# comment
**/*.md
!**/target/**
\#literal
\!bang
` + "name\\ \n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	want := []string{
		"**/*.md",
		"!**/target/**",
		"#literal",
		"!bang",
		"name ",
	}
	if !slices.Equal(patterns, want) {
		t.Fatalf("patterns = %v, want %v", patterns, want)
	}
}

func TestParsePatternsBlankAndWhitespace(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("   \n\t\n*.md   \n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if !slices.Equal(patterns, []string{"*.md"}) {
		t.Fatalf("patterns = %v, want [*.md]", patterns)
	}
}

func TestParsePatternsCRLF(t *testing.T) {
	t.Parallel()

	patterns, err := ParsePatternsString("a/*.md\r\nb/*.txt\r\n")
	if err != nil {
		t.Fatalf("ParsePatternsString: %v", err)
	}

	if !slices.Equal(patterns, []string{"a/*.md", "b/*.txt"}) {
		t.Fatalf("patterns = %v", patterns)
	}
}
