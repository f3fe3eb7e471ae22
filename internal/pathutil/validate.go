// Package pathutil provides boundary checking for file operations.
// vscode-box writes generated files under the workspace .vscode directory;
// ValidatePath ensures no resolved output path escapes the workspace root,
// which could otherwise happen through symlinks or a mis-set FIELDLAB_PATH.
package pathutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrOutsideWorkspace is returned when a path resolves outside the workspace root.
var ErrOutsideWorkspace = errors.New("path escapes the workspace root")

// ValidatePath validates that path is contained within baseDir. Relative paths
// are resolved against baseDir, symlinks are resolved where possible, and the
// resolved path must equal baseDir or live below it.
func ValidatePath(path, baseDir string) error {
	if path == "" {
		return fmt.Errorf("path cannot be empty")
	}
	if baseDir == "" {
		return fmt.Errorf("baseDir cannot be empty")
	}

	absBase, err := filepath.Abs(filepath.Clean(baseDir))
	if err != nil {
		return fmt.Errorf("cannot resolve baseDir to absolute path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(absBase); err == nil {
		absBase = resolved
	}

	absPath := filepath.Clean(path)
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(absBase, absPath)
	}
	// The output file may not exist yet; fall back to the lexical path.
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	if absPath == absBase {
		return nil
	}
	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return fmt.Errorf("%w: %s is not within %s", ErrOutsideWorkspace, path, baseDir)
	}
	return nil
}
