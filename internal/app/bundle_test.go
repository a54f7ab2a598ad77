package app

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemFile_Text(t *testing.T) {
	f := MemFile("index.html", "<html>X</html>")
	got, err := f.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html>X</html>", got)
}

func TestBundleFile_TextHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := MemFile("index.html", "x").Text(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFSFile_ReadsLazily(t *testing.T) {
	fsys := afero.NewMemMapFs()
	f := FSFile(fsys, "index.html", "/site/index.html")

	// Created after selection: content is only read at Text time.
	require.NoError(t, afero.WriteFile(fsys, "/site/index.html", []byte("late"), 0644))

	got, err := f.Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "late", got)

	require.NoError(t, fsys.Remove("/site/index.html"))
	_, err = f.Text(context.Background())
	assert.Error(t, err)
}

func TestLoadBundle(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/site/index.html", []byte("<html>home</html>"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/site/css/style.css", []byte("body{}"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/site/about.html", []byte("about"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/extra/README.txt", []byte("readme"), 0644))

	t.Run("files and directories", func(t *testing.T) {
		files, err := LoadBundle(fsys, []string{"/extra/README.txt", "/site"})
		require.NoError(t, err)

		var names []string
		for _, f := range files {
			names = append(names, f.Name)
		}
		assert.Equal(t, []string{"README.txt", "about.html", "css/style.css", "index.html"}, names)

		text, err := files[3].Text(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "<html>home</html>", text)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := LoadBundle(fsys, []string{"/nope"})
		assert.Error(t, err)
	})

	t.Run("empty selection", func(t *testing.T) {
		files, err := LoadBundle(fsys, nil)
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}
