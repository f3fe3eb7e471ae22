package vscode

import (
	"fmt"
	"io/fs"
	"os"
)

// Paths carries the fixed file locations under a workspace root.
type Paths struct {
	SettingsTemplate string
	LaunchTemplate   string
	Settings         string
	Launch           string
}

// Setup rewrites the workspace settings file from its template and seeds the
// launch configuration if it is absent.
//
// The settings file is always overwritten. The launch file is only written
// when missing; an existing launch file is left alone without comparing
// contents. A missing template or toolkit settings file aborts before any
// output for that file is written.
func Setup(ws Paths, toolkitDir string) error {
	template, err := os.ReadFile(ws.SettingsTemplate)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("could not find the settings template file %s: %w", ws.SettingsTemplate, fs.ErrNotExist)
		}
		return fmt.Errorf("failed to read settings template %s: %w", ws.SettingsTemplate, err)
	}

	settings, err := RelocateExtraPaths(string(template), toolkitDir)
	if err != nil {
		return err
	}
	settings = OverrideInterpreterPath(settings, toolkitDir)
	settings = Header(ws.SettingsTemplate) + settings

	if err := os.WriteFile(ws.Settings, []byte(settings), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ws.Settings, err)
	}

	return seedLaunch(ws)
}

// seedLaunch copies the launch template to the launch destination unless the
// destination already exists.
func seedLaunch(ws Paths) error {
	if _, err := os.Stat(ws.Launch); err == nil {
		return nil
	}

	template, err := os.ReadFile(ws.LaunchTemplate)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("could not find the launch template file %s: %w", ws.LaunchTemplate, fs.ErrNotExist)
		}
		return fmt.Errorf("failed to read launch template %s: %w", ws.LaunchTemplate, err)
	}

	launch := Header(ws.LaunchTemplate) + string(template)
	if err := os.WriteFile(ws.Launch, []byte(launch), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ws.Launch, err)
	}
	return nil
}
