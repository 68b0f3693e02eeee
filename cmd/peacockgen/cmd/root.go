// Package cmd wires the peacockgen CLI's cobra commands: generate, run,
// watch, and version, plus the peacock.yaml config file they all share.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:           "peacockgen",
	Short:         "Compile grammars into zero-allocation Go derivation engines",
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "peacock.yaml", "path to a peacock.yaml config file")
}

// Execute runs the CLI, printing any error to stderr before returning a
// process exit code to main.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "peacockgen: %v\n", err)
		return 1
	}
	return 0
}
