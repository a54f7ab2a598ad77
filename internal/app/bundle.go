package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

// BundleFile is one file of a multi-page bundle. Its content is read on
// demand, so selecting a large bundle costs nothing until export.
type BundleFile struct {
	Name string
	read func() ([]byte, error)
}

// MemFile returns a bundle file backed by an in-memory string.
func MemFile(name, content string) BundleFile {
	return BundleFile{
		Name: name,
		read: func() ([]byte, error) { return []byte(content), nil },
	}
}

// FSFile returns a bundle file read from fsys at path when needed.
func FSFile(fsys afero.Fs, name, path string) BundleFile {
	return BundleFile{
		Name: name,
		read: func() ([]byte, error) { return afero.ReadFile(fsys, path) },
	}
}

// Text reads the file's content as UTF-8 text.
func (f BundleFile) Text(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.read == nil {
		return "", nil
	}
	data, err := f.read()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return string(data), nil
}

// LoadBundle turns a selection of paths into bundle files. Regular files keep
// their base name; directories contribute every regular file below them, named
// by their slash-separated path relative to the directory. Order follows the
// selection, with directory contents sorted.
func LoadBundle(fsys afero.Fs, paths []string) ([]BundleFile, error) {
	var files []BundleFile
	for _, p := range paths {
		info, err := fsys.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("selecting %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, FSFile(fsys, filepath.Base(p), p))
			continue
		}

		var found []BundleFile
		err = afero.Walk(fsys, p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.Mode().IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(p, path)
			if err != nil {
				return err
			}
			found = append(found, FSFile(fsys, filepath.ToSlash(rel), path))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
		sort.SliceStable(found, func(i, j int) bool { return found[i].Name < found[j].Name })
		files = append(files, found...)
	}
	return files, nil
}
