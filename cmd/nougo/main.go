/*
File   : nougo/cmd/nougo/main.go
Package: main

The nougo CLI's entry point.
*/
package main

import (
	"fmt"
	"os"

	"github.com/nougo-lang/nougo/cmd/nougo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
