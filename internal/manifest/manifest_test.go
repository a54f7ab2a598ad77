package manifest

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mark3labs/htmlpack/internal/app"
)

func TestParse(t *testing.T) {
	m, err := Parse([]byte(`
name: My Cool App
logo: logo.svg
source:
  type: multipage
  files:
    - site
ads:
  enabled: true
  script: <script>ping()</script>
`))
	require.NoError(t, err)
	assert.Equal(t, "My Cool App", m.Name)
	assert.Equal(t, "logo.svg", m.Logo)
	assert.Equal(t, "multipage", m.Source.Type)
	assert.Equal(t, []string{"site"}, m.Source.Files)
	assert.True(t, m.Ads.Enabled)
	assert.Equal(t, "<script>ping()</script>", m.Ads.Script)

	_, err = Parse([]byte("name: [oops"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "my-cool-app.yml", FileName("My Cool App"))
	assert.Equal(t, "app.yml", FileName("   "))
	assert.Equal(t, "app.yml", FileName(""))
}

func TestSample_RoundTrip(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, Write(fsys, "/apps/demo.yml", Sample("Demo")))

	m, err := Load(fsys, "/apps/demo.yml")
	require.NoError(t, err)
	assert.Equal(t, Sample("Demo"), m)

	assert.Equal(t, app.DefaultAppName, Sample("").Name)
}

func TestApply_URL(t *testing.T) {
	s := app.New()
	m := &Manifest{Name: "Test App", Source: Source{Type: "url", URL: "https://x.com"}}

	require.NoError(t, m.Apply(afero.NewMemMapFs(), s, ApplyOptions{}))
	assert.Equal(t, "Test App", s.AppName())
	assert.Equal(t, app.SourceURL, s.SourceType())
	assert.Equal(t, "https://x.com", s.AppURL())
	assert.True(t, s.Validity().Complete())
}

func TestApply_RelativePathsResolveAgainstBaseDir(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/page.html", []byte("<p>page</p>"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/ad.html", []byte("<script>ad()</script>\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/logo.svg",
		[]byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`), 0644))

	m := &Manifest{
		Name:   "Page",
		Logo:   "logo.svg",
		Source: Source{Type: "html", HTML: "ignored", HTMLFile: "page.html"},
		Ads:    Ads{Enabled: true, ScriptFile: "ad.html"},
	}
	s := app.New()
	require.NoError(t, m.Apply(fsys, s, ApplyOptions{BaseDir: "/proj"}))

	assert.Equal(t, "<p>page</p>", s.HTMLContent(), "html_file wins over inline html")
	assert.True(t, s.AdsEnabled())
	assert.Equal(t, "<script>ad()</script>\n", s.AdScript())
	assert.Contains(t, s.AppLogo(), "data:image/svg+xml;base64,")
}

func TestApply_Errors(t *testing.T) {
	fsys := afero.NewMemMapFs()

	tests := []struct {
		name string
		m    Manifest
	}{
		{"bad source type", Manifest{Source: Source{Type: "ftp"}}},
		{"missing html file", Manifest{Source: Source{Type: "html", HTMLFile: "nope.html"}}},
		{"missing bundle path", Manifest{Source: Source{Type: "multipage", Files: []string{"nope"}}}},
		{"missing logo", Manifest{Logo: "nope.png"}},
		{"missing ad script", Manifest{Ads: Ads{Enabled: true, ScriptFile: "nope.js"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.m.Apply(fsys, app.New(), ApplyOptions{BaseDir: "/proj"}))
		})
	}
}

func TestLoadState_MultiPage(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/proj/site/index.html", []byte("<html>X</html>"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/site/style.css", []byte("body{}"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "/proj/app.yml", []byte(`
name: Bundle
source:
  type: multipage
  files: [site]
`), 0644))

	s, err := LoadState(fsys, "/proj/app.yml", 0)
	require.NoError(t, err)
	assert.Equal(t, app.SourceMultiPage, s.SourceType())
	assert.Equal(t, "2 files selected", s.FilesSummary())

	text, err := s.Files()[0].Text(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "<html>X</html>", text)
}
