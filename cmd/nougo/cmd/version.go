/*
File   : nougo/cmd/nougo/cmd/version.go
Package: cmd

The `nougo version` subcommand.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("nougo version %s\n", Version)
		fmt.Printf("Author: %s | License: %s\n", Author, License)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
