package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newTUICmd())
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse property list classes interactively",
		Long: `The tui command opens a terminal browser over the predefined classes.
Pick a class to create a list of it, query property names, and clone it.

Example:
  h5plist tui
  h5plist tui --backend sim`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal) {
				return fmt.Errorf("tui needs a terminal on stdout")
			}
			return runInteractive()
		},
	}
	return cmd
}
