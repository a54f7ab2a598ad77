// Package manifest reads and writes YAML app descriptions used for
// non-interactive builds.
package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/logger"
)

// Manifest describes an app the way a user would enter it in the wizard.
type Manifest struct {
	Name   string `yaml:"name"`
	Logo   string `yaml:"logo,omitempty"`
	Source Source `yaml:"source"`
	Ads    Ads    `yaml:"ads,omitempty"`
}

// Source selects and describes the content source.
type Source struct {
	Type     string   `yaml:"type"`
	URL      string   `yaml:"url,omitempty"`
	HTML     string   `yaml:"html,omitempty"`
	HTMLFile string   `yaml:"html_file,omitempty"`
	Files    []string `yaml:"files,omitempty"`
}

// Ads configures ad-script injection.
type Ads struct {
	Enabled    bool   `yaml:"enabled"`
	Script     string `yaml:"script,omitempty"`
	ScriptFile string `yaml:"script_file,omitempty"`
}

// Parse decodes a manifest from YAML.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Parse(data)
}

// Write stores m as YAML at path, creating parent directories.
func Write(fsys afero.Fs, path string, m *Manifest) error {
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := afero.WriteFile(fsys, path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}

// FileName returns the manifest file name for an app name.
func FileName(name string) string {
	s := slug.Make(name)
	if s == "" {
		s = "app"
	}
	return s + ".yml"
}

// Sample returns a starter manifest for name.
func Sample(name string) *Manifest {
	if strings.TrimSpace(name) == "" {
		name = app.DefaultAppName
	}
	return &Manifest{
		Name: name,
		Source: Source{
			Type: string(app.SourceURL),
			URL:  "https://example.com",
		},
	}
}

// ApplyOptions control how a manifest is replayed.
type ApplyOptions struct {
	// BaseDir resolves relative paths; usually the manifest's directory.
	BaseDir string
	// LogoMaxSize bounds raster logos, see app.EncodeLogo.
	LogoMaxSize int
}

// Apply replays m onto s as a sequence of input events: name, logo, source
// type, source content, ads. Only the selected source's content is read.
func (m *Manifest) Apply(fsys afero.Fs, s *app.State, opts ApplyOptions) error {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) || opts.BaseDir == "" {
			return p
		}
		return filepath.Join(opts.BaseDir, p)
	}

	if m.Name != "" {
		s.SetAppName(m.Name)
	}

	if m.Logo != "" {
		if err := s.LoadLogo(fsys, resolve(m.Logo), opts.LogoMaxSize); err != nil {
			return fmt.Errorf("logo %s: %w", m.Logo, err)
		}
	}

	if m.Source.Type != "" {
		st, err := app.ParseSourceType(m.Source.Type)
		if err != nil {
			return err
		}
		s.SelectSourceType(st)
	}

	switch s.SourceType() {
	case app.SourceURL:
		s.SetURL(m.Source.URL)
	case app.SourceHTML:
		content := m.Source.HTML
		if m.Source.HTMLFile != "" {
			data, err := afero.ReadFile(fsys, resolve(m.Source.HTMLFile))
			if err != nil {
				return fmt.Errorf("reading html file: %w", err)
			}
			content = string(data)
		}
		s.SetHTML(content)
	case app.SourceMultiPage:
		paths := make([]string, len(m.Source.Files))
		for i, p := range m.Source.Files {
			paths[i] = resolve(p)
		}
		files, err := app.LoadBundle(fsys, paths)
		if err != nil {
			return err
		}
		s.SetFiles(files)
	}

	s.SetAds(m.Ads.Enabled)
	script := m.Ads.Script
	if m.Ads.ScriptFile != "" {
		data, err := afero.ReadFile(fsys, resolve(m.Ads.ScriptFile))
		if err != nil {
			return fmt.Errorf("reading ad script: %w", err)
		}
		script = string(data)
	}
	s.SetAdScript(script)

	logger.Debug("Applied manifest for %q (%s source)", s.AppName(), s.SourceType())
	return nil
}

// LoadState reads the manifest at path and replays it onto a fresh session.
// Relative paths inside the manifest resolve against its directory.
func LoadState(fsys afero.Fs, path string, logoMaxSize int) (*app.State, error) {
	m, err := Load(fsys, path)
	if err != nil {
		return nil, err
	}
	s := app.New()
	if err := m.Apply(fsys, s, ApplyOptions{BaseDir: filepath.Dir(path), LogoMaxSize: logoMaxSize}); err != nil {
		return nil, err
	}
	return s, nil
}
