package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wippyai/hdf5"
	"github.com/wippyai/hdf5/sys"
)

func init() {
	rootCmd.AddCommand(newClassesCmd())
}

func newClassesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the predefined property list classes",
		Long: `The classes command lists every predefined property list class with its
parent class and the number of properties the library reports for it.

Example:
  h5plist classes
  h5plist classes --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClasses()
		},
	}
	return cmd
}

type classInfo struct {
	Name       string `json:"name"`
	Parent     string `json:"parent,omitempty"`
	Properties int    `json:"properties"`
}

func describeClass(kind sys.ClassKind) (classInfo, error) {
	cls, err := hdf5.ClassOf(kind)
	if err != nil {
		return classInfo{}, fmt.Errorf("class %s: %w", kind, err)
	}
	defer cls.Close()

	info := classInfo{Name: cls.Name()}
	if parent, err := cls.Parent(); err == nil {
		info.Parent = parent.Name()
		_ = parent.Close()
	}
	n, err := cls.Len()
	if err != nil {
		return classInfo{}, fmt.Errorf("class %s: %w", kind, err)
	}
	info.Properties = n
	return info, nil
}

func runClasses() error {
	var infos []classInfo
	for _, kind := range sys.ClassKinds() {
		info, err := describeClass(kind)
		if err != nil {
			return err
		}
		infos = append(infos, info)
	}

	if jsonOut {
		return printJSON(infos)
	}

	printInfo("%-20s %-20s %s\n", "CLASS", "PARENT", "PROPERTIES")
	for _, info := range infos {
		parent := info.Parent
		if parent == "" {
			parent = "-"
		}
		printInfo("%s %s %d\n",
			render(classStyle, fmt.Sprintf("%-20s", info.Name)),
			fmt.Sprintf("%-20s", parent),
			info.Properties)
	}
	return nil
}
