// Package cmd defines command-line interface commands for vscode-box.
package cmd

import (
	"github.com/spf13/cobra"
)

var version string

var rootCmd = &cobra.Command{
	Use:   "vscode-box",
	Short: "VS Code workspace setup for FieldLab",
	Long: "vscode-box wires the FieldLab toolkit's bundled Python interpreter and\n" +
		"module search paths into the VS Code workspace configuration.",
	// Errors are printed once by main, which maps them to exit codes.
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root CLI command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string for the CLI.
func SetVersion(v string) {
	version = v
	rootCmd.Version = version
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(checkCmd)
}
