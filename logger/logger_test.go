// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/eofnl/testutil"
)

func TestLogfWriter(t *testing.T) {
	var (
		logged  bool
		message string
	)
	logf := func(format string, args ...any) {
		logged = true
		message = fmt.Sprintf(format, args...)
	}
	Logf(logf).Write([]byte("hello"))
	testutil.AssertEqual(t, logged, true)
	testutil.AssertEqual(t, message, "hello")
}

func TestNew(t *testing.T) {
	t.Run("debug disabled by default", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, false)
		l.Debug("invisible")
		l.Info("visible")
		if strings.Contains(buf.String(), "invisible") {
			t.Errorf("debug message must not be logged: %q", buf.String())
		}
		if !strings.Contains(buf.String(), "visible") {
			t.Errorf("info message must be logged: %q", buf.String())
		}
	})

	t.Run("verbose enables debug", func(t *testing.T) {
		var buf bytes.Buffer
		l := New(&buf, true)
		l.Debug("now visible")
		if !strings.Contains(buf.String(), "now visible") {
			t.Errorf("debug message must be logged: %q", buf.String())
		}
	})
}

func TestErrorAttr(t *testing.T) {
	testutil.AssertEqual(t, Error(nil).Key, "")
	attr := Error(fmt.Errorf("boom"))
	testutil.AssertEqual(t, attr.Key, "err")
	testutil.AssertEqual(t, attr.Value.String(), "boom")
}
