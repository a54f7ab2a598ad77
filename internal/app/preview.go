package app

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// PreviewKind says how a preview should be rendered.
type PreviewKind int

const (
	PreviewNone PreviewKind = iota
	PreviewURL              // Content is a URL to load in a frame
	PreviewHTML             // Content is sanitized markup
)

// Preview is the live, non-exported view of the current content.
type Preview struct {
	Kind    PreviewKind
	Content string
}

// IsEmpty reports whether there is nothing to show.
func (p Preview) IsEmpty() bool { return p.Kind == PreviewNone }

// previewPolicy strips scripts, event handlers and other active content.
// It is applied to previews only; exported documents are never sanitized.
var previewPolicy = bluemonday.UGCPolicy()

// SanitizeForPreview returns markup safe to display as a preview.
func SanitizeForPreview(markup string) string {
	return previewPolicy.Sanitize(markup)
}

func (s *State) refreshPreview() {
	switch s.sourceType {
	case SourceURL:
		if s.sourceValid() {
			s.preview = Preview{Kind: PreviewURL, Content: s.appURL}
			return
		}
	case SourceHTML:
		s.preview = Preview{Kind: PreviewHTML, Content: SanitizeForPreview(s.htmlContent)}
		return
	}
	s.preview = Preview{}
}

const summaryLimit = 200

// Summary extracts a heading and a plain-text excerpt from an HTML preview.
// URL and empty previews return the URL (or nothing) as the heading.
func (p Preview) Summary() (heading, excerpt string) {
	switch p.Kind {
	case PreviewURL:
		return p.Content, ""
	case PreviewHTML:
	default:
		return "", ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(p.Content))
	if err != nil {
		return "", ""
	}
	heading = collapseSpace(doc.Find("title, h1, h2").First().Text())
	excerpt = collapseSpace(doc.Find("body").Text())

	if r := []rune(excerpt); len(r) > summaryLimit {
		excerpt = string(r[:summaryLimit-1]) + "…"
	}
	return heading, excerpt
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
