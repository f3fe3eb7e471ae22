package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/fieldlab/vscode-box/internal/errors"
)

func TestSetupFlags(t *testing.T) {
	assert.NotNil(t, setupCmd.Flags().Lookup("fieldlab-path"))

	path, _ := setupCmd.Flags().GetString("fieldlab-path")
	assert.Equal(t, "", path)
}

func TestSetupValidationErrorReachesCaller(t *testing.T) {
	// A PreRunE failure must surface from Execute() so main can map it to
	// exit code 2; the command must not print or exit on its own.
	defer func() {
		setupFieldLabPath = ""
		rootCmd.SetArgs([]string{})
	}()

	rootCmd.SetArgs([]string{"setup", "--fieldlab-path", "relative/path"})
	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be an absolute path")
	assert.Equal(t, 2, errors.GetExitCode(err))
}

func TestSetupValidation(t *testing.T) {
	tests := []struct {
		name         string
		fieldlabPath string
		wantErr      bool
		errMsg       string
	}{
		{
			name:         "no flag uses workspace default",
			fieldlabPath: "",
			wantErr:      false,
		},
		{
			name:         "absolute path accepted",
			fieldlabPath: "/opt/fieldlab",
			wantErr:      false,
		},
		{
			name:         "relative path rejected",
			fieldlabPath: "fieldlab",
			wantErr:      true,
			errMsg:       "must be an absolute path",
		},
		{
			name:         "dotted relative path rejected",
			fieldlabPath: "../fieldlab",
			wantErr:      true,
			errMsg:       "must be an absolute path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.Flags().AddFlagSet(setupCmd.Flags())

			setupFieldLabPath = tt.fieldlabPath

			err := setupCmd.PreRunE(cmd, []string{})

			if tt.wantErr {
				assert.Error(t, err)
				if tt.errMsg != "" {
					assert.Contains(t, err.Error(), tt.errMsg)
				}
				assert.Equal(t, 2, errors.GetExitCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
