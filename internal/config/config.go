// Package config provides configuration management for vscode-box.
package config

import (
	"os"
	"path/filepath"

	"github.com/fieldlab/vscode-box/internal/vscode"
	"github.com/fieldlab/vscode-box/internal/workspace"
)

// ToolkitDirName is the fixed directory name of the bundled simulator
// installation under the FieldLab root.
const ToolkitDirName = "_toolkit"

type Config struct {
	WorkspaceRoot string
	FieldLabPath  string
	ToolkitDir    string
	Paths         vscode.Paths
}

// LoadConfig loads the vscode-box configuration from the workspace.
//
// The FieldLab installation root defaults to the workspace root itself (the
// repository doubles as the installation) and can be overridden with the
// FIELDLAB_PATH environment variable.
func LoadConfig() (*Config, error) {
	root, err := workspace.FindRoot()
	if err != nil {
		return nil, err
	}

	fieldlabPath := os.Getenv("FIELDLAB_PATH")
	if fieldlabPath == "" {
		fieldlabPath = root
	}

	return &Config{
		WorkspaceRoot: root,
		FieldLabPath:  fieldlabPath,
		ToolkitDir:    filepath.Join(fieldlabPath, ToolkitDirName),
		Paths: vscode.Paths{
			SettingsTemplate: filepath.Join(root, ".vscode", "tools", "settings.template.json"),
			LaunchTemplate:   filepath.Join(root, ".vscode", "tools", "launch.template.json"),
			Settings:         filepath.Join(root, ".vscode", "settings.json"),
			Launch:           filepath.Join(root, ".vscode", "launch.json"),
		},
	}, nil
}
