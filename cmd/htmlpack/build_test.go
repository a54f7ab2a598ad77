package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/output"
	"github.com/mark3labs/htmlpack/internal/packager"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
}

func TestAppFlags_LoadState(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeFile(t, fsys, "/proj/page.html", "<html><head></head><body>Page</body></html>")
	writeFile(t, fsys, "/proj/ad.html", "<script>ad()</script>")
	writeFile(t, fsys, "/proj/site/index.html", "<html>X</html>")
	writeFile(t, fsys, "/proj/app.yml", "name: From Manifest\nsource:\n  type: url\n  url: https://a.example\n")

	tests := []struct {
		name     string
		flags    appFlags
		manifest string
		check    func(t *testing.T, s *app.State)
	}{
		{
			name:  "url flag",
			flags: appFlags{name: "Flags", url: "https://x.com"},
			check: func(t *testing.T, s *app.State) {
				assert.Equal(t, "Flags", s.AppName())
				assert.Equal(t, app.SourceURL, s.SourceType())
				assert.Equal(t, "https://x.com", s.AppURL())
			},
		},
		{
			name:  "html file with ads",
			flags: appFlags{htmlFile: "/proj/page.html", adsScriptFile: "/proj/ad.html"},
			check: func(t *testing.T, s *app.State) {
				assert.Equal(t, app.SourceHTML, s.SourceType())
				assert.True(t, s.AdsEnabled())
				assert.Equal(t, "<script>ad()</script>", s.AdScript())
			},
		},
		{
			name:  "bundle directory",
			flags: appFlags{files: []string{"/proj/site"}},
			check: func(t *testing.T, s *app.State) {
				assert.Equal(t, app.SourceMultiPage, s.SourceType())
				assert.Equal(t, "index.html", s.FilesSummary())
			},
		},
		{
			name:     "flags override manifest",
			flags:    appFlags{name: "Override"},
			manifest: "/proj/app.yml",
			check: func(t *testing.T, s *app.State) {
				assert.Equal(t, "Override", s.AppName())
				assert.Equal(t, "https://a.example", s.AppURL())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.flags.loadState(fsys, tt.manifest, 0)
			require.NoError(t, err)
			tt.check(t, s)
		})
	}
}

func TestAppFlags_LoadStateErrors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := (&appFlags{url: "https://x.com", htmlFile: "a.html"}).loadState(fsys, "", 0)
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = (&appFlags{htmlFile: "/missing.html"}).loadState(fsys, "", 0)
	assert.Error(t, err)

	_, err = (&appFlags{}).loadState(fsys, "/missing.yml", 0)
	assert.Error(t, err)
}

func TestAppFlags_Any(t *testing.T) {
	assert.False(t, (&appFlags{}).any())
	assert.True(t, (&appFlags{name: "x"}).any())
	assert.True(t, (&appFlags{files: []string{"a"}}).any())
}

func TestValidate(t *testing.T) {
	s := app.New()
	assert.ErrorContains(t, validate(s), "no content source")

	s.SetURL("nope")
	assert.ErrorContains(t, validate(s), "not an absolute URL")

	s.SetURL("https://x.com")
	assert.NoError(t, validate(s))

	s.SetAppName(" ")
	assert.ErrorContains(t, validate(s), "app name is required")
}

func TestBuildHeadless_WritesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := app.New()
	s.SetAppName("My Cool App")
	s.SetURL("https://x.com")

	var stdout, stderr bytes.Buffer
	err := buildHeadless(context.Background(), &stdout, &stderr, fsys, packager.New(packager.Options{}), s,
		buildOptions{outputDir: "/out"})
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(stdout.String()), "/out/My-Cool-App.html")

	data, err := afero.ReadFile(fsys, "/out/My-Cool-App.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), `<iframe src="https://x.com"></iframe>`)

	err = buildHeadless(context.Background(), &stdout, &stderr, fsys, packager.New(packager.Options{}), s,
		buildOptions{outputDir: "/out"})
	assert.ErrorIs(t, err, output.ErrExists)
}

func TestBuildHeadless_StdoutAndDiff(t *testing.T) {
	s := app.New()
	s.SelectSourceType(app.SourceHTML)
	s.SetHTML("<html>\n<head>\n</head>\n<body>x</body>\n</html>\n")
	s.SetAds(true)
	s.SetAdScript("<script>ad()</script>")

	var stdout, stderr bytes.Buffer
	err := buildHeadless(context.Background(), &stdout, &stderr, afero.NewMemMapFs(), packager.New(packager.Options{}), s,
		buildOptions{stdout: true, diff: true})
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "<script>ad()</script>\n</head>")
	diff := ansi.Strip(stderr.String())
	assert.Contains(t, diff, "+<script>ad()</script>")
	assert.Contains(t, diff, "--- My-App.html (source)")
}

func TestBuildHeadless_MissingIndex(t *testing.T) {
	fsys := afero.NewMemMapFs()
	s := app.New()
	s.SelectSourceType(app.SourceMultiPage)
	s.SetFiles([]app.BundleFile{app.MemFile("style.css", "body{}")})

	var stdout, stderr bytes.Buffer
	err := buildHeadless(context.Background(), &stdout, &stderr, fsys, packager.New(packager.Options{}), s,
		buildOptions{outputDir: "/out"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, packager.ErrMissingIndexFile))
	assert.Contains(t, err.Error(), "include an index.html file")

	exists, err := afero.DirExists(fsys, "/out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestColorizeDiff(t *testing.T) {
	in := "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n same\n"
	out := colorizeDiff(in)
	assert.Equal(t, "--- a\n+++ b\n@@ -1 +1 @@\n-old\n+new\n same", ansi.Strip(out))
}
