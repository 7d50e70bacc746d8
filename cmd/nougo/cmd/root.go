/*
File   : nougo/cmd/nougo/cmd/root.go
Package: cmd

The nougo CLI's root cobra.Command: subcommand registration,
Execute(), and the shared exit-with-error helper.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version = "1.0.0"
	Author  = "nougo-lang"
	License = "MIT"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "nougo [file]",
	Short: "nougo interpreter",
	Long: `nougo is an interpreter for the Language: a small, dynamically
typed, imperative scripting language with numbers, strings, lists,
functions, single-inheritance classes, modules, and line-addressed file
I/O via dedicated read/write statements.

With a file argument the script is executed; without one an interactive
session starts.`,
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runScript(cmd, args)
		}
		replCmd.Run(cmd, nil)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
`))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
