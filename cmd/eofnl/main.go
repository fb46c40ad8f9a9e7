// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.astrophena.name/eofnl/cli"
	"go.astrophena.name/eofnl/logger"
	"go.astrophena.name/eofnl/scan"
	"go.astrophena.name/eofnl/txtar"
)

// configFile is the optional per-project configuration archive, looked up
// in the project root.
const configFile = ".eofnl.txtar"

// failListLimit caps how many non-compliant paths the check summary lists.
const failListLimit = 10

var (
	errNonCompliant = errors.New("some files are missing an EOF newline")
	errFixFailed    = errors.New("some files could not be fixed")
)

func main() { cli.Main(new(app)) }

type app struct {
	check          bool
	fix            bool
	filter         string
	filterFromFile string
	exclude        string
	backup         bool
	showDetails    bool
	quiet          bool
	verbose        bool
	dir            string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Check files for EOF newlines without fixing.")
	fs.BoolVar(&a.fix, "fix", false, "Fix missing EOF newlines automatically.")
	fs.StringVar(&a.filter, "filter", "", "Include only files matching this `glob`.")
	fs.StringVar(&a.filterFromFile, "filter-from-file", "", "Include only files listed in `file`, one per line.")
	fs.StringVar(&a.exclude, "exclude", "", "Exclude files and directories matching these comma-separated `globs`.")
	fs.BoolVar(&a.backup, "backup", false, "Create backup files before fixing (use with -fix).")
	fs.BoolVar(&a.showDetails, "show-details", false, "Show a result line for each checked file.")
	fs.BoolVar(&a.quiet, "quiet", false, "Reduce output verbosity.")
	fs.BoolVar(&a.verbose, "verbose", false, "Log file classification and discovery decisions.")
	fs.StringVar(&a.dir, "C", ".", "Run as if started in `dir`.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	if a.check == a.fix {
		return fmt.Errorf("%w: exactly one of -check or -fix is required", cli.ErrInvalidArgs)
	}

	root, err := scan.FindRoot(a.dir)
	if err != nil {
		return err
	}

	s := scan.New(root)
	s.Log = logger.New(env.Stderr, a.verbose)
	if err := loadConfig(s, root); err != nil {
		return err
	}

	if !a.quiet {
		fmt.Fprintf(env.Stdout, "End-of-file newline checker\n")
		fmt.Fprintf(env.Stdout, "Project root: %s\n\n", root)
	}

	var includes, excludes []string
	if a.filter != "" {
		includes = []string{a.filter}
	}
	for pattern := range strings.SplitSeq(a.exclude, ",") {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			excludes = append(excludes, pattern)
		}
	}

	var files []string
	if a.filterFromFile != "" {
		files, err = readFileList(s, root, a.filterFromFile)
		if err != nil {
			return fmt.Errorf("reading file list from %s: %w", a.filterFromFile, err)
		}
	} else {
		files, err = s.Discover(includes, excludes)
		if err != nil {
			return err
		}
	}

	if len(files) == 0 {
		fmt.Fprintln(env.Stdout, "No files found matching criteria")
		return nil
	}

	if !a.quiet {
		fmt.Fprintf(env.Stdout, "Found %d files to check\n", len(files))
		if a.filter != "" {
			fmt.Fprintf(env.Stdout, "Include pattern: %s\n", a.filter)
		}
		if a.filterFromFile != "" {
			fmt.Fprintf(env.Stdout, "Files from: %s\n", a.filterFromFile)
		}
		if a.exclude != "" {
			fmt.Fprintf(env.Stdout, "Exclude patterns: %s\n", a.exclude)
		}
		fmt.Fprintln(env.Stdout)
	}

	p := newPrinter(env.Stdout)

	if a.check {
		return a.runCheck(p, s, files)
	}
	return a.runFix(p, s, files)
}

func (a *app) runCheck(p *printer, s *scan.Scanner, files []string) error {
	var report func(path string, ok bool)
	if a.showDetails {
		report = func(path string, ok bool) {
			if ok {
				p.ok("%s", path)
			} else {
				p.fail("%s - missing EOF newline", path)
			}
		}
	}

	_, missing := s.Check(files, report)

	if !a.quiet {
		fmt.Fprintf(p.out, "\nResults:\n")
		fmt.Fprintf(p.out, "Files with EOF newline: %d\n", len(files)-len(missing))
		fmt.Fprintf(p.out, "Files missing EOF newline: %d\n", len(missing))
	}

	if len(missing) == 0 {
		if !a.quiet {
			fmt.Fprintf(p.out, "\nAll %d files have proper EOF newlines\n", len(files))
		}
		return nil
	}

	if !a.showDetails {
		fmt.Fprintf(p.out, "\nFiles missing EOF newline:\n")
		for _, path := range missing[:min(len(missing), failListLimit)] {
			fmt.Fprintf(p.out, "  %s\n", path)
		}
		if rest := len(missing) - failListLimit; rest > 0 {
			fmt.Fprintf(p.out, "  ... and %d more\n", rest)
		}
	}

	fmt.Fprintf(p.out, "\nTo fix all files: eofnl -fix\n")
	if !a.backup {
		fmt.Fprintf(p.out, "Add -backup to create backup files before fixing\n")
	}

	return errNonCompliant
}

func (a *app) runFix(p *printer, s *scan.Scanner, files []string) error {
	_, missing := s.Check(files, nil)

	if len(missing) == 0 {
		fmt.Fprintf(p.out, "All %d files already have EOF newlines\n", len(files))
		return nil
	}

	if !a.quiet {
		fmt.Fprintf(p.out, "Fixing EOF newlines in %d files...\n", len(missing))
		if a.backup {
			fmt.Fprintf(p.out, "Creating backup files with %s extension\n", scan.BackupSuffix)
		}
		fmt.Fprintln(p.out)
	}

	fixed, failed := s.FixAll(missing, a.backup, func(path string, err error) {
		if err != nil {
			p.fail("Failed to fix %s: %v", path, err)
		} else {
			p.ok("Fixed %s", path)
		}
	})

	if !a.quiet {
		fmt.Fprintf(p.out, "\nResults:\n")
		fmt.Fprintf(p.out, "Successfully fixed: %d\n", fixed)
		if failed > 0 {
			fmt.Fprintf(p.out, "Failed to fix: %d\n", failed)
		}
	}

	if failed > 0 {
		return errFixFailed
	}
	return nil
}

// loadConfig merges the optional .eofnl.txtar archive in the project root
// into the scanner's classification tables. A missing file is fine; a
// malformed one is a fatal configuration error.
func loadConfig(s *scan.Scanner, root string) error {
	ar, err := txtar.ParseFile(filepath.Join(root, configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, f := range ar.Files {
		var list []string
		switch f.Name {
		case "extensions.json", "specials.json", "excludes.json":
			if err := json.Unmarshal(f.Data, &list); err != nil {
				return fmt.Errorf("%s: parsing %s: %w", configFile, f.Name, err)
			}
		default:
			continue
		}
		switch f.Name {
		case "extensions.json":
			for _, ext := range list {
				s.Extensions[strings.ToLower(ext)] = true
			}
		case "specials.json":
			for _, name := range list {
				s.Special[name] = true
			}
		case "excludes.json":
			s.Excludes = append(s.Excludes, list...)
		}
	}
	return nil
}

// readFileList reads a newline-delimited list of paths and keeps those that
// exist and are checkable. Relative paths are resolved against the project
// root. Missing or non-text entries are silently dropped.
func readFileList(s *scan.Scanner, root, listPath string) ([]string, error) {
	data, err := os.ReadFile(listPath)
	if err != nil {
		return nil, err
	}

	var files []string
	for line := range strings.Lines(string(data)) {
		path := strings.TrimSpace(line)
		if path == "" {
			continue
		}
		full := path
		if !filepath.IsAbs(full) {
			full = filepath.Join(root, full)
		}
		if _, err := os.Stat(full); err != nil {
			continue
		}
		if !s.IsCheckable(full) {
			continue
		}
		if rel, err := filepath.Rel(root, full); err == nil && !strings.HasPrefix(rel, "..") {
			files = append(files, filepath.ToSlash(rel))
		} else {
			files = append(files, full)
		}
	}
	return files, nil
}

// ANSI escape codes for TTY output.
const (
	ansiReset = "\033[0m"
	ansiRed   = "\033[31m"
	ansiGreen = "\033[32m"
)

// printer writes per-file result markers, colorized when the output is a
// terminal.
type printer struct {
	out   io.Writer
	color bool
}

func newPrinter(out io.Writer) *printer {
	f, ok := out.(*os.File)
	return &printer{
		out:   out,
		color: ok && cli.IsTerminal(int(f.Fd())),
	}
}

func (p *printer) ok(format string, args ...any) {
	p.mark(ansiGreen, "✓", format, args...)
}

func (p *printer) fail(format string, args ...any) {
	p.mark(ansiRed, "✗", format, args...)
}

func (p *printer) mark(color, glyph, format string, args ...any) {
	if p.color {
		glyph = color + glyph + ansiReset
	}
	fmt.Fprintf(p.out, "%s %s\n", glyph, fmt.Sprintf(format, args...))
}
