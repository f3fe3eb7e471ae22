package ui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// captureStderr redirects os.Stderr around fn and returns what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stderr")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	old := os.Stderr
	os.Stderr = f
	defer func() { os.Stderr = old }()

	fn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}

func TestOutputFunctions(t *testing.T) {
	tests := []struct {
		name string
		fn   func(format string, args ...interface{})
		want string
	}{
		{name: "success", fn: Success, want: "Wrote settings.json"},
		{name: "warning", fn: Warning, want: "toolkit not found"},
		{name: "error", fn: Error, want: "Error: missing template"},
		{name: "info", fn: Info, want: "run setup"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureStderr(t, func() {
				tt.fn("%s\n", tt.want)
			})
			assert.Contains(t, out, tt.want)
		})
	}
}
