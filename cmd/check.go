package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldlab/vscode-box/internal/config"
	"github.com/fieldlab/vscode-box/internal/errors"
	"github.com/fieldlab/vscode-box/internal/ui"
	"github.com/fieldlab/vscode-box/internal/vscode"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Report the state of the generated workspace configuration",
	Long: `Report which workspace configuration files exist, whether they were
generated by vscode-box, and whether the toolkit layout is in place.

This is a read-only command; it never modifies any file.`,
	Example: `  vscode-box check`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runCheck() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errors.NewRuntimeError("could not load workspace configuration", err)
	}

	fmt.Println("=== Workspace Files ===")
	headers := []string{"File", "Status"}
	rows := [][]string{
		{relToRoot(cfg.WorkspaceRoot, cfg.Paths.SettingsTemplate), fileStatus(cfg.Paths.SettingsTemplate)},
		{relToRoot(cfg.WorkspaceRoot, cfg.Paths.LaunchTemplate), fileStatus(cfg.Paths.LaunchTemplate)},
		{relToRoot(cfg.WorkspaceRoot, cfg.Paths.Settings), generatedStatus(cfg.Paths.Settings)},
		{relToRoot(cfg.WorkspaceRoot, cfg.Paths.Launch), generatedStatus(cfg.Paths.Launch)},
	}
	ui.PrintTable(os.Stdout, headers, rows)

	fmt.Println("\n=== Toolkit ===")
	toolkitSettings := filepath.Join(cfg.ToolkitDir, ".vscode", "settings.json")
	interpreter := filepath.Join(cfg.ToolkitDir, vscode.InterpreterName)
	ui.PrintTable(os.Stdout, headers, [][]string{
		{toolkitSettings, fileStatus(toolkitSettings)},
		{interpreter, fileStatus(interpreter)},
	})

	if fileStatus(toolkitSettings) == "missing" {
		ui.Warning("\nToolkit settings not found. Is the toolkit installed under %s?\n", cfg.ToolkitDir)
	} else if generatedStatus(cfg.Paths.Settings) != "generated" {
		ui.Info("\nRun 'vscode-box setup' to generate the workspace settings.\n")
	}

	return nil
}

// fileStatus reports "present" or "missing" for a path.
func fileStatus(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return "present"
}

// generatedStatus distinguishes vscode-box output from hand-written files by
// the provenance header.
func generatedStatus(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return "missing"
	}
	if vscode.HasHeader(string(data)) {
		return "generated"
	}
	return "present (no header)"
}

func relToRoot(root, path string) string {
	if rel, err := filepath.Rel(root, path); err == nil {
		return rel
	}
	return path
}
