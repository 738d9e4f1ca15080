package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/hdf5"
)

func init() {
	rootCmd.AddCommand(newListCmd())
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <class> [property...]",
		Short: "List the properties of a new property list",
		Long: `The list command creates a property list of the given class with default
values and prints its property names. With property arguments it reports
whether each one is present instead.

Example:
  h5plist list file-access
  h5plist list "file create" "link info" sieve_buf_size
  h5plist list dataset-xfer --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

type listResult struct {
	Class      string          `json:"class"`
	ID         int64           `json:"id"`
	Properties []string        `json:"properties,omitempty"`
	Has        map[string]bool `json:"has,omitempty"`
}

func runList(args []string) error {
	kind, err := parseKind(args[0])
	if err != nil {
		return err
	}

	p, err := hdf5.NewPropertyList(kind)
	if err != nil {
		return fmt.Errorf("create %s list: %w", kind, err)
	}
	defer p.Close()

	printVerbose("Created %s\n", p)

	res := listResult{Class: kind.String(), ID: int64(p.ID())}
	if len(args) > 1 {
		res.Has = make(map[string]bool, len(args)-1)
		for _, name := range args[1:] {
			res.Has[name] = p.Has(name)
		}
	} else {
		res.Properties = p.Properties()
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("%s\n", render(titleStyle, displayName(kind.String())))
	if res.Has != nil {
		for _, name := range args[1:] {
			mark := render(errorStyle, "✗")
			if res.Has[name] {
				mark = render(resultStyle, "✓")
			}
			printInfo("  %s %s\n", mark, render(nameStyle, name))
		}
		return nil
	}
	for _, name := range res.Properties {
		printInfo("  %s\n", render(nameStyle, name))
	}
	printInfo("\n%d properties\n", len(res.Properties))
	return nil
}
