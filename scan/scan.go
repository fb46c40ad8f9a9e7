// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package scan discovers text files in a project tree and checks that each
// one ends with a trailing newline.
//
// A file is compliant when it is empty or its last byte is '\n' or '\r'
// (which also covers the two-byte "\r\n" sequence). Files are selected for
// checking by a fixed extension allow-list, a set of well-known build and
// config filenames, or, failing both, a content heuristic that treats any
// file without a null byte in its first kilobyte as text.
package scan

import (
	"io"
	"io/fs"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// sampleSize is how many leading bytes the text heuristic examines.
const sampleSize = 1024

// Scanner discovers and checks files under a single project root.
//
// The zero value is not usable; construct it with [New]. All methods are
// safe to call with paths relative to the root or absolute paths.
type Scanner struct {
	// Root is the absolute path of the project root.
	Root string

	// Extensions, Special and Excludes are the classification tables.
	// New fills them with the built-in defaults; callers may add entries
	// before scanning.
	Extensions map[string]bool
	Special    map[string]bool
	Excludes   []string

	// Log receives debug traces of classification and pruning decisions.
	Log *slog.Logger
}

// New returns a Scanner for the project rooted at root.
func New(root string) *Scanner {
	return &Scanner{
		Root:       root,
		Extensions: maps.Clone(defaultExtensions),
		Special:    maps.Clone(specialFiles),
		Excludes:   slices.Clone(defaultExcludes),
		Log:        slog.New(slog.DiscardHandler),
	}
}

// abs resolves path against the project root, leaving absolute paths as is.
func (s *Scanner) abs(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.Root, path)
}

// IsCheckable reports whether the file should be checked for a trailing
// newline. Unreadable files are not checkable.
func (s *Scanner) IsCheckable(path string) bool {
	full := s.abs(path)

	if s.Extensions[strings.ToLower(filepath.Ext(full))] {
		return true
	}
	if s.Special[filepath.Base(full)] {
		return true
	}

	// Fall back to a content heuristic: a file without null bytes in its
	// first kilobyte is considered text. An empty file is checkable too.
	f, err := os.Open(full)
	if err != nil {
		s.Log.Debug("classify: open failed", "path", path, "err", err)
		return false
	}
	defer f.Close()

	sample := make([]byte, sampleSize)
	n, err := io.ReadFull(f, sample)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		s.Log.Debug("classify: read failed", "path", path, "err", err)
		return false
	}
	for _, b := range sample[:n] {
		if b == 0 {
			s.Log.Debug("classify: binary", "path", path)
			return false
		}
	}
	return true
}

// HasTrailingNewline reports whether the file ends with a newline.
// Empty files are considered compliant. I/O errors report false, so an
// unreadable file surfaces as a check failure.
func (s *Scanner) HasTrailingNewline(path string) bool {
	f, err := os.Open(s.abs(path))
	if err != nil {
		return false
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false
	}
	if info.Size() == 0 {
		return true
	}

	var last [1]byte
	if _, err := f.ReadAt(last[:], info.Size()-1); err != nil {
		return false
	}
	return last[0] == '\n' || last[0] == '\r'
}

// Discover walks the project tree and returns the root-relative,
// slash-separated paths of all checkable files, sorted lexicographically.
//
// Directories whose name matches an exclude pattern are pruned and never
// descended into; files whose name matches an exclude pattern are skipped.
// When include patterns are given, a file is kept only if its name or its
// root-relative path matches at least one of them. Note the asymmetry:
// excludes match bare names only, includes match names and relative paths.
func (s *Scanner) Discover(includes, excludes []string) ([]string, error) {
	excludes = append(slices.Clone(s.Excludes), excludes...)

	var files []string
	err := filepath.WalkDir(s.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == s.Root {
				return err
			}
			// Unreadable entries are silently excluded.
			s.Log.Debug("discover: skipping unreadable entry", "path", path, "err", err)
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path != s.Root && matchAny(excludes, name) {
				s.Log.Debug("discover: pruning directory", "path", path)
				return fs.SkipDir
			}
			return nil
		}

		if matchAny(excludes, name) {
			return nil
		}

		rel, err := filepath.Rel(s.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if len(includes) > 0 && !matchAny(includes, name) && !matchAny(includes, rel) {
			return nil
		}

		if s.IsCheckable(path) {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}

// matchAny reports whether name matches at least one of patterns.
// Malformed patterns never match.
func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}
	return false
}

// Check partitions paths into compliant and non-compliant files, preserving
// input order within each partition. If report is non-nil, it is called for
// every path as it is checked.
func (s *Scanner) Check(paths []string, report func(path string, ok bool)) (compliant, missing []string) {
	for _, path := range paths {
		ok := s.HasTrailingNewline(path)
		if ok {
			compliant = append(compliant, path)
		} else {
			missing = append(missing, path)
		}
		if report != nil {
			report(path, ok)
		}
	}
	return compliant, missing
}

// FixAll fixes every path, continuing past individual failures, and returns
// counts of successful and failed fixes. If report is non-nil, it is called
// with each path and the fix outcome.
func (s *Scanner) FixAll(paths []string, backup bool, report func(path string, err error)) (fixed, failed int) {
	for _, path := range paths {
		err := s.Fix(path, backup)
		if err != nil {
			failed++
		} else {
			fixed++
		}
		if report != nil {
			report(path, err)
		}
	}
	return fixed, failed
}
