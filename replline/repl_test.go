/*
File   : nougo/replline/repl_test.go
Package: replline

Buffer-capture tests: drive PrintBannerInfo/executeWithRecovery
against a bytes.Buffer instead of a real terminal, since readline.New
needs a pty Start() can't get in tests.
*/
package replline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nougo-lang/nougo/eval"
)

func TestRepl_PrintBannerInfoIncludesVersionAuthorLicense(t *testing.T) {
	r := NewRepl("=====", "nougo v1.0", "me", "---", "MIT", "> ", "", "")
	var buf bytes.Buffer
	r.PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "nougo v1.0")
	assert.Contains(t, out, "Version: nougo v1.0 | Author: me | License: MIT")
	assert.Contains(t, out, "Welcome to nougo!")
}

func TestRepl_ExecuteWithRecoveryPrintsInspectedValue(t *testing.T) {
	r := NewRepl("", "", "", "", "", "> ", t.TempDir(), t.TempDir())
	ev := eval.New(r.WorkDir, r.ModuleDir)
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "1 + 2", 1, ev)
	assert.Contains(t, buf.String(), "3")
}

func TestRepl_ExecuteWithRecoveryBindingsPersistAcrossLines(t *testing.T) {
	r := NewRepl("", "", "", "", "", "> ", t.TempDir(), t.TempDir())
	ev := eval.New(r.WorkDir, r.ModuleDir)
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "var x = 10", 1, ev)
	buf.Reset()
	r.executeWithRecovery(&buf, "x + 1", 2, ev)
	assert.Contains(t, buf.String(), "11")
}

func TestRepl_ExecuteWithRecoveryReportsParseError(t *testing.T) {
	r := NewRepl("", "", "", "", "", "> ", t.TempDir(), t.TempDir())
	ev := eval.New(r.WorkDir, r.ModuleDir)
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "var = 5", 1, ev)
	assert.Contains(t, buf.String(), "InvalidSyntaxError")
}

func TestRepl_ExecuteWithRecoveryReportsRuntimeError(t *testing.T) {
	r := NewRepl("", "", "", "", "", "> ", t.TempDir(), t.TempDir())
	ev := eval.New(r.WorkDir, r.ModuleDir)
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "undefined_name", 1, ev)
	assert.Contains(t, buf.String(), "RTNameError")
}
