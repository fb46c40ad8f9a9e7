// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version provides information about the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"

	"go.astrophena.name/eofnl/syncx"
)

// Info contains information about the running binary.
type Info struct {
	// Name is the base name of the binary.
	Name string
	// Version is the version of the binary, from build information.
	Version string
	// Commit is the VCS commit the binary was built from, if known.
	Commit string
	// Dirty reports whether the working tree had local modifications.
	Dirty bool
}

// String implements the [fmt.Stringer] interface.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (commit %s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	fmt.Fprintf(&sb, "\n%s/%s, %s\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
	return sb.String()
}

var lazyInfo syncx.Lazy[Info]

// Version returns information about the running binary.
func Version() Info {
	return lazyInfo.Get(loadInfo)
}

// CmdName returns the base name of the running binary.
func CmdName() string {
	return Version().Name
}

func loadInfo() Info {
	i := Info{
		Name:    cmdName(),
		Version: "devel",
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return i
	}
	if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			i.Commit = s.Value
		case "vcs.modified":
			i.Dirty = s.Value == "true"
		}
	}
	return i
}

func cmdName() string {
	exe, err := os.Executable()
	if err != nil {
		return "(unknown)"
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
