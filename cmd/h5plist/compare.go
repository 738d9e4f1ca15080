package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/hdf5"
)

func init() {
	rootCmd.AddCommand(newCompareCmd())
}

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <class> <class>",
		Short: "Compare default property lists of two classes",
		Long: `The compare command creates a default property list of each class, reports
whether the lists are equal, and lists the properties only one of them has.

Example:
  h5plist compare file-access file-access
  h5plist compare dataset-access link-access`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(args)
		},
	}
	return cmd
}

type compareResult struct {
	A     string   `json:"a"`
	B     string   `json:"b"`
	Equal bool     `json:"equal"`
	OnlyA []string `json:"only_a"`
	OnlyB []string `json:"only_b"`
}

func runCompare(args []string) error {
	lists := make([]*hdf5.PropertyList, 2)
	for i, arg := range args {
		kind, err := parseKind(arg)
		if err != nil {
			return err
		}
		p, err := hdf5.NewPropertyList(kind)
		if err != nil {
			return fmt.Errorf("create %s list: %w", kind, err)
		}
		defer p.Close()
		lists[i] = p
	}
	a, b := lists[0], lists[1]

	res := compareResult{
		A:     args[0],
		B:     args[1],
		Equal: a.Equal(b),
		OnlyA: missingFrom(a, b),
		OnlyB: missingFrom(b, a),
	}

	if jsonOut {
		return printJSON(res)
	}

	if res.Equal {
		printInfo("%s\n", render(resultStyle, "equal"))
	} else {
		printInfo("%s\n", render(errorStyle, "not equal"))
	}
	for _, name := range res.OnlyA {
		printInfo("  < %s\n", render(nameStyle, name))
	}
	for _, name := range res.OnlyB {
		printInfo("  > %s\n", render(nameStyle, name))
	}
	return nil
}

// missingFrom returns the properties of a that b does not have.
func missingFrom(a, b *hdf5.PropertyList) []string {
	var names []string
	for _, name := range a.Properties() {
		if !b.Has(name) {
			names = append(names, name)
		}
	}
	return names
}
