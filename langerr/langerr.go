/*
File   : nougo/langerr/langerr.go
Package: langerr

Package langerr implements the structured error model: a closed
taxonomy of error kinds, each carrying a source range, message, and a
context-chain snapshot for "In <name>, file X, line Y" framing. The
range and chain feed the caret-and-frame rendering the REPL and CLI
show for every failure.
*/
package langerr

import (
	"fmt"
	"strings"

	"github.com/nougo-lang/nougo/position"
)

// Kind is the closed error taxonomy.
type Kind string

const (
	InvalidSyntaxError Kind = "InvalidSyntaxError"
	ExpectedCharError  Kind = "ExpectedCharError"
	RTNameError        Kind = "RTNameError"
	RTAttributeError   Kind = "RTAttributeError"
	RTTypeError        Kind = "RTTypeError"
	RTArithmeticError  Kind = "RTArithmeticError"
	RTIndexError       Kind = "RTIndexError"
	RTAssertionError   Kind = "RTAssertionError"
	RunTimeError       Kind = "RunTimeError"
)

// Frame is one entry in a context chain: the named scope active when
// the error fired, and the call-site range within its caller.
type Frame struct {
	DisplayName string
	CallRange   position.Range
}

// Error is the Language's structured error value, implementing the
// standard error interface so it can also travel through ordinary Go
// error returns (e.g. value.OpError is wrapped into one of these by
// eval).
type Error struct {
	Kind    Kind
	Range   position.Range
	Message string
	Context []Frame // innermost call first, outermost last; Render prints them in reverse
}

// New builds an Error with no context chain; eval attaches the frames of
// its current call stack, innermost first, when it creates the error.
func New(kind Kind, rng position.Range, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Range: rng, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Render() }

// WithFrame returns a copy of e with frame appended to its context
// chain, used by eval to record each active call frame.
func (e *Error) WithFrame(frame Frame) *Error {
	cp := *e
	cp.Context = append(append([]Frame{}, e.Context...), frame)
	return &cp
}

// Render produces the user-visible form:
//
//	In <name>, file X, line Y
//	...
//	<File X, line Y>
//	    <source line>
//	    <caret span>
//	<ErrorKind>: <message>
func (e *Error) Render() string {
	var b strings.Builder
	for i := len(e.Context) - 1; i >= 0; i-- {
		f := e.Context[i]
		fmt.Fprintf(&b, "In %s, file %s, line %d\n", f.DisplayName, f.CallRange.Start.FileName(), f.CallRange.Start.Line)
	}
	fmt.Fprintf(&b, "<File %s, line %d>\n", e.Range.Start.FileName(), e.Range.Start.Line)
	line := e.Range.Start.Src.Line(e.Range.Start.Line)
	b.WriteString("    " + line + "\n")
	b.WriteString("    " + caretSpan(e.Range, line) + "\n")
	fmt.Fprintf(&b, "%s: %s\n", e.Kind, e.Message)
	return b.String()
}

// caretSpan draws spaces up to the error's start column, then carets
// spanning to its end column on the same line (or to the line's end if
// the range crosses lines).
func caretSpan(rng position.Range, line string) string {
	start := rng.Start.Column - 1
	if start < 0 {
		start = 0
	}
	end := start + 1
	if rng.End.Line == rng.Start.Line && rng.End.Column > rng.Start.Column {
		end = rng.End.Column - 1
	}
	if end > len(line) {
		end = len(line)
	}
	if end <= start {
		end = start + 1
	}
	return strings.Repeat(" ", start) + strings.Repeat("^", end-start)
}
