package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/hdf5"
	"github.com/wippyai/hdf5/sim"
	"github.com/wippyai/hdf5/sys"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	noColor bool
	backend string
)

// out receives command output. Tests replace it.
var out io.Writer = os.Stdout

var rootCmd = &cobra.Command{
	Use:   "h5plist",
	Short: "Inspect HDF5 property lists and property list classes",
	Long: `h5plist creates property lists from the predefined HDF5 classes and
reports their properties, class hierarchy, equality and clone behavior.

Run without a command on a terminal to browse the classes interactively.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return configure()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if isTerminal(int(os.Stdout.Fd()), &stdoutIsTerminal) {
			return runInteractive()
		}
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output and debug logging")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&backend, "backend", "auto", "Library backend: auto, native or sim")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		os.Exit(1)
	}
}

// configure selects the backend and logger from the global flags.
func configure() error {
	opts := hdf5.DefaultOptions()

	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		opts.Logger = l
		sim.SetLogger(l)
	}

	switch backend {
	case "", "auto":
	case "native":
		lib := sys.Registered()
		if lib == nil {
			return fmt.Errorf("native backend not available: build with -tags hdf5")
		}
		opts.Library = lib
	case "sim":
		opts.Library = sim.Default()
	default:
		return fmt.Errorf("unknown backend %q (want auto, native or sim)", backend)
	}

	hdf5.Configure(opts)
	printVerbose("Using backend: %s\n", hdf5.Backend().Name())
	return nil
}

// parseKind resolves a class argument such as "file-access".
func parseKind(arg string) (sys.ClassKind, error) {
	kind := sys.ClassKindByName(arg)
	if kind == sys.ClassUnknown {
		return kind, fmt.Errorf("unknown property list class %q (see h5plist classes)", arg)
	}
	return kind, nil
}

var stdoutIsTerminal int32 = -1 // -1 = unchecked, 0 = no, 1 = yes

func isTerminal(fd int, cached *int32) bool {
	if v := atomic.LoadInt32(cached); v >= 0 {
		return v == 1
	}
	result := term.IsTerminal(fd)
	if result {
		atomic.StoreInt32(cached, 1)
	} else {
		atomic.StoreInt32(cached, 0)
	}
	return result
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(out, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(out, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
