// Package main is the entry point for the vscode-box CLI application.
package main

import (
	"os"

	"github.com/fieldlab/vscode-box/cmd"
	"github.com/fieldlab/vscode-box/internal/errors"
	"github.com/fieldlab/vscode-box/internal/ui"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		ui.Error("Error: %v\n", err)
		os.Exit(errors.GetExitCode(err))
	}
}
