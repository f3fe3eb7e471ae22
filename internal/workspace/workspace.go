// Package workspace provides utilities for finding the workspace root directory.
package workspace

import (
	"fmt"
	"os/exec"
	"strings"
)

// FindRoot finds the workspace root directory by running `git rev-parse --show-toplevel`.
// vscode-box resolves all of its template and output paths relative to this root, so it
// must be invoked from inside the FieldLab checkout.
func FindRoot() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("could not locate the workspace root (run vscode-box from inside the FieldLab checkout): %w", err)
	}
	return strings.TrimSpace(string(output)), nil
}
