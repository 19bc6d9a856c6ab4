// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"os"
)

// LoadPatternsFile reads and parses a glob pattern list from a file.
func LoadPatternsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open patterns file: %w", err)
	}
	defer func() { _ = f.Close() }()

	patterns, err := ParsePatterns(f)
	if err != nil {
		return nil, fmt.Errorf("parse patterns file: %w", err)
	}

	return patterns, nil
}

// LoadPatternsFiles reads and merges pattern lists from files in the given order.
//
// Returned patterns preserve file order and line order inside each file.
func LoadPatternsFiles(paths ...string) ([]string, error) {
	out := make([]string, 0, len(paths)*8)
	for _, path := range paths {
		patterns, err := LoadPatternsFile(path)
		if err != nil {
			return nil, err
		}

		out = append(out, patterns...)
	}

	return out, nil
}
