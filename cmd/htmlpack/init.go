package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/mark3labs/htmlpack/internal/manifest"
)

var initFlags struct {
	dir   string
	force bool
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Write a starter manifest",
	Long: `Write a starter manifest for "htmlpack build". The file is named after
the app, e.g. "htmlpack init My App" writes my-app.yml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initFlags.dir, "dir", "d", ".", "Directory to write the manifest into")
	initCmd.Flags().BoolVarP(&initFlags.force, "force", "f", false, "Overwrite an existing manifest")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	path := filepath.Join(initFlags.dir, manifest.FileName(name))

	if err := writeSample(afero.NewOsFs(), path, name, initFlags.force); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Manifest written to: %s\n\n", path)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Edit it, then run 'htmlpack build %s'.\n", path)
	return nil
}

func writeSample(fsys afero.Fs, path, name string, force bool) error {
	if !force {
		if ok, err := afero.Exists(fsys, path); err == nil && ok {
			return fmt.Errorf("manifest already exists at %s\n\nUse --force to overwrite", path)
		}
	}
	return manifest.Write(fsys, path, manifest.Sample(name))
}
