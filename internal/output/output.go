// Package output delivers artifacts to the filesystem.
package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/packager"
)

// ErrExists is returned when the target file exists and overwrite is off.
var ErrExists = errors.New("output file already exists")

// SafeName keeps a suggested filename inside the output directory by
// replacing path separators.
func SafeName(name string) string {
	name = strings.NewReplacer("/", "-", `\`, "-").Replace(name)
	if name == "" || name == "." || name == ".." {
		return packager.FallbackFilename
	}
	return name
}

// Write saves art in dir and returns the path written.
func Write(fsys afero.Fs, dir string, art *packager.Artifact, overwrite bool) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, SafeName(art.Filename))

	if !overwrite {
		if _, err := fsys.Stat(path); err == nil {
			return "", fmt.Errorf("%w: %s (use --force to replace it)", ErrExists, path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := afero.WriteFile(fsys, path, art.Content, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	logger.Info("Wrote %s (%d bytes)", path, len(art.Content))
	return path, nil
}
