package output

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/htmlpack/internal/packager"
)

func TestSafeName(t *testing.T) {
	assert.Equal(t, "My-App.html", SafeName("My-App.html"))
	assert.Equal(t, "a-b.html", SafeName("a/b.html"))
	assert.Equal(t, "..-..-etc.html", SafeName("../../etc.html"))
	assert.Equal(t, "x-y.html", SafeName(`x\y.html`))
	assert.Equal(t, "my-app.html", SafeName(""))
}

func TestWrite(t *testing.T) {
	fsys := afero.NewMemMapFs()
	art := &packager.Artifact{Filename: "Test-App.html", Content: []byte("<html></html>")}

	path, err := Write(fsys, "/out/apps", art, false)
	require.NoError(t, err)
	assert.Equal(t, "/out/apps/Test-App.html", path)

	data, err := afero.ReadFile(fsys, path)
	require.NoError(t, err)
	assert.Equal(t, "<html></html>", string(data))

	t.Run("refuses to overwrite", func(t *testing.T) {
		_, err := Write(fsys, "/out/apps", &packager.Artifact{Filename: "Test-App.html", Content: []byte("new")}, false)
		assert.ErrorIs(t, err, ErrExists)

		data, err := afero.ReadFile(fsys, path)
		require.NoError(t, err)
		assert.Equal(t, "<html></html>", string(data))
	})

	t.Run("overwrites when forced", func(t *testing.T) {
		_, err := Write(fsys, "/out/apps", &packager.Artifact{Filename: "Test-App.html", Content: []byte("new")}, true)
		require.NoError(t, err)

		data, err := afero.ReadFile(fsys, path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})
}

func TestWrite_DefaultDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	path, err := Write(fsys, "", &packager.Artifact{Filename: "a.html"}, false)
	require.NoError(t, err)
	assert.Equal(t, "a.html", path)
}
