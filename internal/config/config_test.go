package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldlab/vscode-box/internal/workspace"
)

func TestLoadConfig(t *testing.T) {
	if _, err := workspace.FindRoot(); err != nil {
		t.Skipf("not running inside a git checkout: %v", err)
	}

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.WorkspaceRoot, ".vscode", "tools", "settings.template.json"), cfg.Paths.SettingsTemplate)
	assert.Equal(t, filepath.Join(cfg.WorkspaceRoot, ".vscode", "tools", "launch.template.json"), cfg.Paths.LaunchTemplate)
	assert.Equal(t, filepath.Join(cfg.WorkspaceRoot, ".vscode", "settings.json"), cfg.Paths.Settings)
	assert.Equal(t, filepath.Join(cfg.WorkspaceRoot, ".vscode", "launch.json"), cfg.Paths.Launch)
	assert.Equal(t, filepath.Join(cfg.FieldLabPath, ToolkitDirName), cfg.ToolkitDir)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	if _, err := workspace.FindRoot(); err != nil {
		t.Skipf("not running inside a git checkout: %v", err)
	}

	t.Setenv("FIELDLAB_PATH", "/opt/fieldlab")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	assert.Equal(t, "/opt/fieldlab", cfg.FieldLabPath)
	assert.Equal(t, filepath.Join("/opt/fieldlab", ToolkitDirName), cfg.ToolkitDir)
	// Templates and outputs stay rooted in the workspace regardless of the override.
	assert.Equal(t, filepath.Join(cfg.WorkspaceRoot, ".vscode", "settings.json"), cfg.Paths.Settings)
}
