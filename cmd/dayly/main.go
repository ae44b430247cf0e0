package main

import (
	"fmt"
	"os"

	"github.com/dori/dayly/cmd/dayly/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	rootCmd.AddCommand(commands.NewVersionCmd())
	rootCmd.AddCommand(commands.NewDatesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
