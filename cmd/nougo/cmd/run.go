/*
File   : nougo/cmd/nougo/cmd/run.go
Package: cmd

The `nougo run` subcommand: executes a source file or an inline -e
expression through the lexer/parser/evaluator pipeline, rendering
errors to stderr.
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nougo-lang/nougo/eval"
	"github.com/nougo-lang/nougo/parser"
	"github.com/nougo-lang/nougo/position"
)

var (
	evalExpr  string
	moduleDir string
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a nougo script file or expression",
	Long: `Execute a nougo program from a file or an inline expression.

Examples:
  nougo run script.ng
  nougo run -e "write 1 + 1 >> \"out.txt\""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().StringVar(&moduleDir, "module-dir", "", "library root for source-module imports (defaults to the script's directory)")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string

	switch {
	case evalExpr != "":
		input = evalExpr
		filename = "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	src := position.NewSource(filename, input)
	program, perr := parser.Parse(src)
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Render())
		return fmt.Errorf("parsing failed")
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}
	libRoot := moduleDir
	if libRoot == "" && filename != "<eval>" {
		libRoot = filepath.Dir(filename)
	}
	if libRoot == "" {
		libRoot = workDir
	}

	evaluator := eval.New(workDir, libRoot)
	result := evaluator.Eval(program, evaluator.Root)
	if result.IsError() {
		fmt.Fprintln(os.Stderr, result.Err.Error())
		return fmt.Errorf("execution failed")
	}
	return nil
}
