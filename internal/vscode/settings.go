// Package vscode rewrites VS Code workspace configuration so that the
// FieldLab toolkit's bundled Python interpreter and module search paths
// are picked up by the editor.
//
// The toolkit ships its own .vscode/settings.json with the extra analysis
// paths for its bundled packages. Those paths are relative to the toolkit
// root, so they are merged into the workspace settings with the toolkit
// directory prepended.
package vscode

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// InterpreterName is the bundled interpreter launcher inside the toolkit directory.
const InterpreterName = "python.sh"

const (
	interpreterKey = `"python.defaultInterpreterPath": `

	// The placeholder value the settings template ships with. The override is
	// an exact-literal replacement: if the template carries anything else the
	// substitution is a silent no-op.
	interpreterPlaceholder = `"${env:FIELDLAB_PATH}/_toolkit/python.sh"`
)

// extraPathsPattern matches the extraPaths block up to the first closing
// bracket. Entries containing a literal "]" would truncate the match; the
// toolkit settings never contain such paths.
var extraPathsPattern = regexp.MustCompile(`(?s)"python\.analysis\.extraPaths": \[.*?\]`)

// RelocateExtraPaths replaces the extraPaths block in the template with the
// entries from the toolkit's own settings file, each prefixed with toolkitDir.
//
// It returns an error if the toolkit settings file does not exist or carries
// no extraPaths block. A template without an extraPaths block is returned
// unchanged.
func RelocateExtraPaths(template string, toolkitDir string) (string, error) {
	toolkitSettings := filepath.Join(toolkitDir, ".vscode", "settings.json")

	data, err := os.ReadFile(toolkitSettings)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("could not find the toolkit settings file %s: %w", toolkitSettings, fs.ErrNotExist)
		}
		return "", fmt.Errorf("failed to read toolkit settings file %s: %w", toolkitSettings, err)
	}

	block := extraPathsPattern.FindString(string(data))
	if block == "" {
		return "", fmt.Errorf("no extraPaths entry in toolkit settings file %s", toolkitSettings)
	}

	// Strip the key and brackets, leaving the raw comma-separated entries.
	inner := block[strings.Index(block, "[")+1:]
	inner = inner[:strings.Index(inner, "]")]

	var entries []string
	for _, entry := range strings.Split(inner, ",") {
		entry = strings.Trim(strings.TrimSpace(entry), `"`)
		if entry == "" {
			continue
		}
		entries = append(entries, `"`+toolkitDir+"/"+entry+`"`)
	}

	replacement := `"python.analysis.extraPaths": [` + "\n        " +
		strings.Join(entries, ",\n        ") +
		"\n    ]"

	loc := extraPathsPattern.FindStringIndex(template)
	if loc == nil {
		return template, nil
	}
	return template[:loc[0]] + replacement + template[loc[1]:], nil
}

// OverrideInterpreterPath points the default interpreter setting at the
// toolkit's bundled launcher. Only the exact placeholder value from the
// template is replaced; a modified template passes through untouched.
func OverrideInterpreterPath(template string, toolkitDir string) string {
	placeholder := interpreterKey + interpreterPlaceholder
	override := interpreterKey + `"` + filepath.Join(toolkitDir, InterpreterName) + `"`
	return strings.Replace(template, placeholder, override, 1)
}

// headerMarker is the first line of every generated file.
const headerMarker = "// This file is generated by vscode-box. Do not edit it directly."

// Header returns the provenance comment block prepended to generated files.
func Header(src string) string {
	return headerMarker + "\n" +
		"//\n" +
		"// Generated from: " + src + "\n"
}

// HasHeader reports whether content was written by vscode-box.
func HasHeader(content string) bool {
	return strings.HasPrefix(content, headerMarker)
}
