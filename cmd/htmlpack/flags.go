package main

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/manifest"
)

// appFlags describe an app on the command line. Set flags are replayed on
// top of a manifest in wizard order.
type appFlags struct {
	name          string
	logo          string
	url           string
	htmlFile      string
	files         []string
	adsScriptFile string
}

func (f *appFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.name, "name", "n", "", "App name")
	fs.StringVarP(&f.logo, "logo", "l", "", "Logo image file")
	fs.StringVarP(&f.url, "url", "u", "", "Website URL to wrap in a full-page frame")
	fs.StringVar(&f.htmlFile, "html-file", "", "HTML document to export as is")
	fs.StringSliceVar(&f.files, "files", nil, "Bundle files or directories; one must be index.html")
	fs.StringVar(&f.adsScriptFile, "ads-script-file", "", "Enable ads and inject the markup in this file before </head>")
}

// sourceCount is the number of mutually exclusive source flags given.
func (f *appFlags) sourceCount() int {
	n := 0
	for _, set := range []bool{f.url != "", f.htmlFile != "", len(f.files) > 0} {
		if set {
			n++
		}
	}
	return n
}

// any reports whether a flag describing the app was given.
func (f *appFlags) any() bool {
	return f.name != "" || f.logo != "" || f.sourceCount() > 0 || f.adsScriptFile != ""
}

// loadState builds the session from an optional manifest plus flags.
func (f *appFlags) loadState(fsys afero.Fs, manifestPath string, logoMaxSize int) (*app.State, error) {
	if f.sourceCount() > 1 {
		return nil, fmt.Errorf("--url, --html-file and --files are mutually exclusive")
	}

	s := app.New()
	if manifestPath != "" {
		loaded, err := manifest.LoadState(fsys, manifestPath, logoMaxSize)
		if err != nil {
			return nil, err
		}
		s = loaded
	}

	if f.name != "" {
		s.SetAppName(f.name)
	}
	if f.logo != "" {
		if err := s.LoadLogo(fsys, f.logo, logoMaxSize); err != nil {
			return nil, fmt.Errorf("logo %s: %w", f.logo, err)
		}
	}

	switch {
	case f.url != "":
		s.SelectSourceType(app.SourceURL)
		s.SetURL(f.url)
	case f.htmlFile != "":
		data, err := afero.ReadFile(fsys, f.htmlFile)
		if err != nil {
			return nil, fmt.Errorf("reading html file: %w", err)
		}
		s.SelectSourceType(app.SourceHTML)
		s.SetHTML(string(data))
	case len(f.files) > 0:
		files, err := app.LoadBundle(fsys, f.files)
		if err != nil {
			return nil, err
		}
		s.SelectSourceType(app.SourceMultiPage)
		s.SetFiles(files)
	}

	if f.adsScriptFile != "" {
		data, err := afero.ReadFile(fsys, f.adsScriptFile)
		if err != nil {
			return nil, fmt.Errorf("reading ad script: %w", err)
		}
		s.SetAds(true)
		s.SetAdScript(string(data))
	}
	return s, nil
}

// validate turns step validity into a user-facing error for headless runs.
func validate(s *app.State) error {
	v := s.Validity()
	switch {
	case !v.Details:
		return fmt.Errorf("app name is required (use --name)")
	case !v.Source:
		switch s.SourceType() {
		case app.SourceURL:
			if strings.TrimSpace(s.AppURL()) == "" {
				return fmt.Errorf("no content source: use --url, --html-file, --files or a manifest")
			}
			return fmt.Errorf("%q is not an absolute URL", s.AppURL())
		case app.SourceHTML:
			return fmt.Errorf("HTML content is empty")
		default:
			return fmt.Errorf("no bundle files selected")
		}
	}
	return nil
}
