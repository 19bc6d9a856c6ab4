// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import "errors"

// Sentinel errors for pathglob operations.
var (
	// ErrInvalidGlob indicates malformed or unsupported glob pattern syntax.
	ErrInvalidGlob = errors.New("invalid glob pattern")
	// ErrPathNotUTF8 indicates an OS path that is not valid UTF-8.
	ErrPathNotUTF8 = errors.New("path is not valid utf-8")
)
