/*
File   : nougo/cmd/nougo/cmd/repl.go
Package: cmd

The `nougo repl` subcommand, wiring replline.Repl into the CLI
surface.
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nougo-lang/nougo/replline"
)

const banner = `
 _ __   ___  _   _  __ _  ___
| '_ \ / _ \| | | |/ _ |/ _ \
| | | | (_) | |_| | (_| | (_) |
|_| |_|\___/ \__,_|\__, |\___/
                   |___/
`

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive nougo session",
	Run: func(cmd *cobra.Command, args []string) {
		workDir, err := os.Getwd()
		if err != nil {
			workDir = "."
		}
		r := replline.NewRepl(banner, Version, Author, "--------------------------------", License, "nougo >>> ", workDir, workDir)
		if err := r.Start(os.Stdout); err != nil {
			exitWithError("could not start the repl: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
