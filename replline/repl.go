/*
File   : nougo/replline/repl.go
Package: replline

Package replline implements the interactive Read-Eval-Print Loop.
Each line is parsed on its own but evaluated against one persistent
Evaluator and root scope, so bindings and imports survive across
prompts.
*/
package replline

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/nougo-lang/nougo/eval"
	"github.com/nougo-lang/nougo/parser"
	"github.com/nougo-lang/nougo/position"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's banner/prompt configuration plus the
// working/module directories its Evaluator is constructed with.
type Repl struct {
	Banner    string
	Version   string
	Author    string
	Line      string
	License   string
	Prompt    string
	WorkDir   string
	ModuleDir string
}

// NewRepl builds a Repl with the work/module directories every
// Evaluator needs.
func NewRepl(banner, version, author, line, license, prompt, workDir, moduleDir string) *Repl {
	return &Repl{
		Banner: banner, Version: version, Author: author,
		Line: line, License: license, Prompt: prompt,
		WorkDir: workDir, ModuleDir: moduleDir,
	}
}

// PrintBannerInfo prints the startup banner in the
// separator/banner/info/separator layout.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to nougo!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-eval-print loop until '.exit', EOF, or a
// readline error, one persistent Evaluator/root scope shared across
// every line so bindings accumulate across prompts.
func (r *Repl) Start(writer io.Writer) error {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New(r.WorkDir, r.ModuleDir)
	lineNo := 0

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		lineNo++
		r.executeWithRecovery(writer, line, lineNo, evaluator)
	}
	return nil
}

// executeWithRecovery parses and evaluates one line against the
// session's persistent root scope, recovering from any panic so a
// single bad input never kills the REPL.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, lineNo int, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	src := position.NewSource("<stdin>", line)
	program, perr := parser.Parse(src)
	if perr != nil {
		redColor.Fprintf(writer, "%s\n", perr.Render())
		return
	}

	result := evaluator.Eval(program, evaluator.Root)
	if result.IsError() {
		redColor.Fprintf(writer, "%s\n", result.Err.Error())
		return
	}
	if result.Value != nil {
		yellowColor.Fprintf(writer, "%s\n", result.Value.Inspect())
	}
}
