// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"slices"
	"testing"
)

func TestMergePatterns(t *testing.T) {
	t.Parallel()

	a := []string{"*.md"}
	b := []string{"!*.tmp", "src/**"}

	merged := MergePatterns(a, nil, b)
	if !slices.Equal(merged, []string{"*.md", "!*.tmp", "src/**"}) {
		t.Fatalf("unexpected merged order: %v", merged)
	}

	// Ensure result does not alias input backing arrays for appended tail.
	b[0] = "mutated"
	if merged[1] != "!*.tmp" {
		t.Fatalf("merged slice was unexpectedly aliased")
	}
}
