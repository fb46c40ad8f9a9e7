// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package scan

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoRoot is returned by [FindRoot] when no ancestor of the starting
// directory contains a project marker file.
var ErrNoRoot = errors.New("project root not found")

// FindRoot ascends from dir to the first directory containing a project
// marker file (go.mod, CMakeLists.txt, Cargo.toml, package.json, Makefile
// or a .git directory) and returns its absolute path.
func FindRoot(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	start := dir
	for {
		for _, marker := range rootMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w: no %v in %s or any parent directory", ErrNoRoot, rootMarkers, start)
		}
		dir = parent
	}
}
