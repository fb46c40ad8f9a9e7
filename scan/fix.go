// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package scan

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/natefinch/atomic"
)

// BackupSuffix is appended to a file's name when a backup copy is created
// before fixing.
const BackupSuffix = ".bak"

// Fix appends a newline to the file if it is missing one. Empty and already
// compliant files are left untouched, so Fix is idempotent.
//
// If backup is true, a byte-identical copy of the file is written to a
// sibling path with [BackupSuffix] appended before the file is modified.
func (s *Scanner) Fix(path string, backup bool) error {
	full := s.abs(path)

	if backup {
		if err := backupFile(full); err != nil {
			return fmt.Errorf("creating backup of %s: %w", path, err)
		}
	}

	content, err := os.ReadFile(full)
	if err != nil {
		return fmt.Errorf("fixing %s: %w", path, err)
	}

	// Nothing to do for empty or already compliant files.
	if len(content) == 0 {
		return nil
	}
	if last := content[len(content)-1]; last == '\n' || last == '\r' {
		return nil
	}

	content = append(content, '\n')
	if err := atomic.WriteFile(full, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("fixing %s: %w", path, err)
	}
	return nil
}

// backupFile copies path to path+BackupSuffix, preserving permissions and,
// best-effort, modification time.
func backupFile(path string) error {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}

	bak := path + BackupSuffix
	dst, err := os.OpenFile(bak, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Close(); err != nil {
		return err
	}
	// Timestamps are nice to have, but their loss is not worth failing the
	// backup over.
	os.Chtimes(bak, info.ModTime(), info.ModTime())
	return nil
}
