// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Eofnl verifies and enforces that text files end with a trailing newline.

It walks the project tree, picks out text files by extension, well-known
filename or a content heuristic, and either reports files that are missing
a newline at end of file (-check) or appends one in place (-fix). A POSIX
line ends with a newline, and plenty of tools misbehave on files that don't.

The project root is the first ancestor of the working directory that
contains a build marker file (go.mod, CMakeLists.txt, Cargo.toml,
package.json, Makefile or a .git directory). All reported paths are
relative to it.

Exactly one of -check or -fix is required. -check exits with status 1 if
any checked file is missing its trailing newline; -fix exits with status 1
if any file could not be rewritten. Finding no files at all is not an
error.

Usage:

	eofnl -check [-filter glob] [-exclude globs] [-show-details] [-quiet]
	eofnl -fix [-backup] [-filter glob] [-exclude globs] [-quiet]
	eofnl -check -filter-from-file staged.txt

A -filter glob matches a file's bare name or its path relative to the
project root. -exclude takes comma-separated globs merged with a built-in
set covering build directories, VCS metadata, caches, binary artifacts and
editor swap files; exclude globs match directory and file names only.

With -filter-from-file, the newline-delimited paths in the given file
(relative to the project root unless absolute) are processed instead of
walking the tree. Paths that don't exist or aren't text files are silently
skipped.

If a .eofnl.txtar file exists in the project root, it is parsed as a txtar
archive that may carry extensions.json, specials.json and excludes.json
members, each a JSON array of strings merged into the built-in extension,
filename and exclude tables.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/eofnl/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
