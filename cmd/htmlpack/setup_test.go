package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/htmlpack/internal/config"
)

func TestRunSetup(t *testing.T) {
	tests := []struct {
		name    string
		project bool
		path    func() string
	}{
		{name: "global", path: config.GlobalPath},
		{name: "project", project: true, path: config.ProjectPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
			t.Chdir(tmpDir)
			t.Cleanup(func() { setupFlags.project, setupFlags.force = false, false })

			var out bytes.Buffer
			setupCmd.SetOut(&out)
			setupFlags.project = tt.project

			require.NoError(t, runSetup(setupCmd, nil))
			assert.True(t, config.Exists(tt.path()))
			assert.Contains(t, out.String(), tt.path())

			require.NoError(t, os.WriteFile(tt.path(), []byte("output_dir: keep\n"), 0644))
			assert.ErrorContains(t, runSetup(setupCmd, nil), "already exists")
			data, err := os.ReadFile(tt.path())
			require.NoError(t, err)
			assert.Equal(t, "output_dir: keep\n", string(data))

			setupFlags.force = true
			require.NoError(t, runSetup(setupCmd, nil))
			data, err = os.ReadFile(tt.path())
			require.NoError(t, err)
			assert.NotEqual(t, "output_dir: keep\n", string(data))
		})
	}
}
