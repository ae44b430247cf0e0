package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dayly v%s\n", version)
		},
	}
}
