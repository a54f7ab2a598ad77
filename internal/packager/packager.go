// Package packager turns a finished wizard session into a single HTML document.
//
// Exported content is never sanitized: what the user authored, or the bundle's
// index.html, is emitted byte for byte apart from ad-script injection.
package packager

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/logger"
	"github.com/mark3labs/htmlpack/internal/template"
)

// ErrMissingIndexFile is returned when a multi-page bundle has no index.html.
var ErrMissingIndexFile = errors.New(`"index.html" not found in the selected files`)

// IndexFileName is the bundle entry used as the exported document.
const IndexFileName = "index.html"

// MediaType of every artifact.
const MediaType = "text/html; charset=utf-8"

// Artifact is a generated document ready to be saved.
type Artifact struct {
	Filename  string
	MediaType string
	Content   []byte
}

// Options configure a Packager.
type Options struct {
	// WrapperTemplate overrides the document used for URL sources.
	WrapperTemplate string
	// ShellTemplate overrides the shell used when a document lacks </head>.
	ShellTemplate string
}

// Packager builds artifacts. The zero value is not usable; call New.
type Packager struct {
	wrapper string
	shell   string
}

// New returns a packager using the built-in templates for any option left empty.
func New(opts Options) *Packager {
	p := &Packager{
		wrapper: opts.WrapperTemplate,
		shell:   opts.ShellTemplate,
	}
	if p.wrapper == "" {
		p.wrapper = template.DefaultWrapper
	}
	if p.shell == "" {
		p.shell = template.DefaultShell
	}
	return p
}

// NewFromFiles loads template overrides from disk; empty paths use defaults.
func NewFromFiles(wrapperPath, shellPath string) (*Packager, error) {
	wrapper, err := template.GetTemplate(wrapperPath, template.DefaultWrapper)
	if err != nil {
		return nil, fmt.Errorf("loading wrapper template: %w", err)
	}
	shell, err := template.GetTemplate(shellPath, template.DefaultShell)
	if err != nil {
		return nil, fmt.Errorf("loading shell template: %w", err)
	}
	return New(Options{WrapperTemplate: wrapper, ShellTemplate: shell}), nil
}

// Export builds the artifact for s. It fails only with ErrMissingIndexFile or
// an error reading the bundle; on failure no artifact is produced and s is
// left untouched.
func (p *Packager) Export(ctx context.Context, s *app.State) (*Artifact, error) {
	doc, err := p.Document(ctx, s)
	if err != nil {
		return nil, err
	}
	doc = p.InjectAds(doc, s)

	name := Filename(s.AppName())
	logger.Info("Exported %s (%s source, %d bytes)", name, s.SourceType(), len(doc))
	return &Artifact{Filename: name, MediaType: MediaType, Content: []byte(doc)}, nil
}

// Document returns the document for the selected source before ad injection.
func (p *Packager) Document(ctx context.Context, s *app.State) (string, error) {
	switch s.SourceType() {
	case app.SourceURL:
		return p.wrapURL(s), nil
	case app.SourceHTML:
		return s.HTMLContent(), nil
	case app.SourceMultiPage:
		return indexDocument(ctx, s.Files())
	default:
		return "", fmt.Errorf("unknown source type %q", s.SourceType())
	}
}

func (p *Packager) wrapURL(s *app.State) string {
	var icon string
	if s.HasLogo() {
		icon = fmt.Sprintf("    <link rel=\"icon\" href=\"%s\">\n", html.EscapeString(s.AppLogo()))
	}
	return template.Render(p.wrapper, template.Variables{
		Title: html.EscapeString(s.AppName()),
		URL:   html.EscapeString(s.AppURL()),
		Icon:  icon,
	})
}

func indexDocument(ctx context.Context, files []app.BundleFile) (string, error) {
	for _, f := range files {
		if strings.EqualFold(f.Name, IndexFileName) {
			return f.Text(ctx)
		}
	}
	logger.Warn("Bundle of %d files has no %s", len(files), IndexFileName)
	return "", ErrMissingIndexFile
}

// InjectAds applies the session's ad settings to doc. With ads disabled or a
// blank script, doc is returned unchanged.
func (p *Packager) InjectAds(doc string, s *app.State) string {
	if !s.AdsEnabled() {
		return doc
	}
	script := strings.TrimSpace(s.AdScript())
	if script == "" {
		return doc
	}
	return p.inject(doc, script, s.AppName())
}

const headClose = "</head>"

func (p *Packager) inject(doc, script, title string) string {
	if strings.Contains(doc, headClose) {
		return strings.Replace(doc, headClose, "\n"+script+"\n"+headClose, 1)
	}
	return template.Render(p.shell, template.Variables{
		Title:  html.EscapeString(title),
		Script: script,
		Body:   doc,
	})
}
