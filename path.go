// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathglob

package pathglob

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Path is an immutable UTF-8 guaranteed slash-separated path value.
//
// The original spelling is preserved (leading "./", trailing "/"), only the
// separator is normalized. Comparisons (`Diff`, `StartsWith`) work on the
// cleaned component form.
type Path struct {
	raw string
}

// NewPath creates a path value from an OS or slash path string.
//
// Fails when the input is not valid UTF-8.
func NewPath(raw string) (Path, error) {
	if !utf8.ValidString(raw) {
		return Path{}, fmt.Errorf("%w: %q", ErrPathNotUTF8, raw)
	}

	return Path{raw: filepath.ToSlash(raw)}, nil
}

// newPathLossy creates a path value, reporting false for non-UTF-8 input.
//
// Used on walk entries where invalid names are skipped, not surfaced.
func newPathLossy(raw string) (Path, bool) {
	if !utf8.ValidString(raw) {
		return Path{}, false
	}

	return Path{raw: filepath.ToSlash(raw)}, true
}

// String returns the slash-separated path string.
func (p Path) String() string {
	return p.raw
}

// IsAbs reports whether path is absolute.
func (p Path) IsAbs() bool {
	return path.IsAbs(p.raw) || filepath.IsAbs(filepath.FromSlash(p.raw))
}

// Clean returns the path in cleaned component form.
func (p Path) Clean() Path {
	segments := cleanSegments(p.raw)
	joined := strings.Join(segments, "/")
	if p.IsAbs() && !strings.HasPrefix(joined, "/") && !strings.Contains(joined, ":") {
		joined = "/" + joined
	}

	return Path{raw: joined}
}

// Join appends slash path fragments to the path.
//
// An absolute fragment replaces the accumulated value, mirroring standard
// path join semantics.
func (p Path) Join(parts ...string) Path {
	out := p.raw
	for _, part := range parts {
		part = filepath.ToSlash(part)
		if part == "" {
			continue
		}

		if strings.HasPrefix(part, "/") {
			out = part
			continue
		}

		if out == "" {
			out = part
			continue
		}

		out = strings.TrimSuffix(out, "/") + "/" + part
	}

	return Path{raw: out}
}

// Parent returns the parent directory path.
//
// Reports false for the filesystem root and for single-component relative
// paths, which have no expressible parent.
func (p Path) Parent() (Path, bool) {
	cleaned := p.Clean().raw
	if cleaned == "" || cleaned == "/" {
		return Path{}, false
	}

	idx := strings.LastIndexByte(cleaned, '/')
	if idx < 0 {
		return Path{}, false
	}

	if idx == 0 {
		return Path{raw: "/"}, true
	}

	return Path{raw: cleaned[:idx]}, true
}

// Diff returns the relative path from base to p.
//
// Reports false when no relation can be computed: one path is absolute and
// the other is not, or ascending through an unresolved ".." in base would
// be required.
func (p Path) Diff(base Path) (Path, bool) {
	if p.IsAbs() != base.IsAbs() {
		return Path{}, false
	}

	ps := cleanSegments(p.raw)
	bs := cleanSegments(base.raw)

	shared := 0
	for shared < len(ps) && shared < len(bs) && ps[shared] == bs[shared] {
		shared++
	}

	ascend := bs[shared:]
	for _, segment := range ascend {
		if segment == ".." {
			return Path{}, false
		}
	}

	out := make([]string, 0, len(ascend)+len(ps)-shared)
	for range ascend {
		out = append(out, "..")
	}
	out = append(out, ps[shared:]...)

	return Path{raw: strings.Join(out, "/")}, true
}

// StartsWith reports whether prefix is a whole-component prefix of the path.
func (p Path) StartsWith(prefix Path) bool {
	if p.IsAbs() != prefix.IsAbs() {
		return false
	}

	ps := cleanSegments(p.raw)
	qs := cleanSegments(prefix.raw)
	if len(qs) > len(ps) {
		return false
	}

	for i := range qs {
		if ps[i] != qs[i] {
			return false
		}
	}

	return true
}

// Canonicalize resolves symlinks and ".." against the filesystem.
//
// Fails when the path does not exist on disk.
func (p Path) Canonicalize() (Path, error) {
	resolved, err := filepath.EvalSymlinks(filepath.FromSlash(p.raw))
	if err != nil {
		return Path{}, fmt.Errorf("canonicalize %s: %w", p.raw, err)
	}

	abs, err := filepath.Abs(resolved)
	if err != nil {
		return Path{}, fmt.Errorf("canonicalize %s: %w", p.raw, err)
	}

	return NewPath(abs)
}

// cleanSegments splits a slash path into cleaned path components.
func cleanSegments(raw string) []string {
	raw = strings.TrimPrefix(raw, "./")
	cleaned := path.Clean(raw)
	if cleaned == "." || cleaned == "/" || cleaned == "" {
		return nil
	}

	cleaned = strings.TrimPrefix(cleaned, "/")
	return strings.Split(cleaned, "/")
}
