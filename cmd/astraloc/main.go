// Package main provides the entry point for the astraloc CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/astra-gui/astraloc/cmd/astraloc/commands"
)

func main() {
	err := commands.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
