package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fieldlab/vscode-box/internal/config"
	"github.com/fieldlab/vscode-box/internal/errors"
	"github.com/fieldlab/vscode-box/internal/pathutil"
	"github.com/fieldlab/vscode-box/internal/ui"
	"github.com/fieldlab/vscode-box/internal/vscode"
)

var setupFieldLabPath string

var setupCmd = &cobra.Command{
	Use:   "setup [--fieldlab-path <dir>]",
	Short: "Generate the VS Code workspace configuration",
	Long: `Generate .vscode/settings.json from its template.

The extra analysis paths are merged in from the toolkit's own settings file
(<fieldlab-path>/_toolkit/.vscode/settings.json) and the default interpreter
is pointed at the toolkit's bundled python.sh. The settings file is always
overwritten; .vscode/launch.json is seeded from its template only if absent.

The FieldLab installation root defaults to the workspace root and can also be
set with the FIELDLAB_PATH environment variable.`,
	Example: `  # Standard checkout (toolkit symlinked into the workspace)
  vscode-box setup

  # Toolkit installed elsewhere
  vscode-box setup --fieldlab-path /opt/fieldlab`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if setupFieldLabPath != "" && !filepath.IsAbs(setupFieldLabPath) {
			return errors.NewValidationError(
				fmt.Sprintf("--fieldlab-path must be an absolute path, got %q", setupFieldLabPath), nil)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSetup(); err != nil {
			ui.Error("Error: %v\n", err)
			os.Exit(errors.GetExitCode(err))
		}
	},
}

func runSetup() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return errors.NewRuntimeError("could not load workspace configuration", err)
	}

	toolkitDir := cfg.ToolkitDir
	if setupFieldLabPath != "" {
		toolkitDir = filepath.Join(setupFieldLabPath, config.ToolkitDirName)
	}

	for _, out := range []string{cfg.Paths.Settings, cfg.Paths.Launch} {
		if err := pathutil.ValidatePath(out, cfg.WorkspaceRoot); err != nil {
			return errors.NewRuntimeError("refusing to write outside the workspace", err)
		}
	}

	if err := vscode.Setup(cfg.Paths, toolkitDir); err != nil {
		return errors.NewRuntimeError("setup failed", err)
	}

	ui.Success("Wrote %s\n", cfg.Paths.Settings)
	return nil
}

func init() {
	setupCmd.Flags().StringVar(&setupFieldLabPath, "fieldlab-path", "", "Absolute path to the FieldLab installation (default: workspace root)")
}
