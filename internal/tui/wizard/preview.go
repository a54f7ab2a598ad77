package wizard

import (
	"bytes"
	"strings"

	"charm.land/lipgloss/v2"
	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/mark3labs/htmlpack/internal/app"
)

// previewBackground matches colorSurface0 so highlighted code sits on the
// same background as the rest of the modal.
const previewBackground = "#313244"

// highlightHTML returns markup with ANSI colors. Plain text is returned when
// no lexer or formatter is available.
func highlightHTML(source string) string {
	lexer := lexers.Get("html")
	if lexer == nil {
		lexer = lexers.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Get("terminal256")
	}
	if formatter == nil {
		return source
	}

	baseStyle := styles.Get("monokai")
	if baseStyle == nil {
		baseStyle = styles.Fallback
	}
	bg := chroma.MustParseColour(previewBackground)
	style, err := baseStyle.Builder().Transform(func(entry chroma.StyleEntry) chroma.StyleEntry {
		entry.Background = bg
		return entry
	}).Build()
	if err != nil {
		style = baseStyle
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return source
	}
	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return source
	}
	return strings.TrimRight(buf.String(), "\n")
}

// firstLines keeps at most n lines of s.
func firstLines(s string, n int) (string, bool) {
	lines := strings.Split(s, "\n")
	if len(lines) <= n {
		return s, false
	}
	return strings.Join(lines[:n], "\n"), true
}

// renderPreview draws the session's live preview into a box of the given size.
func renderPreview(p app.Preview, width, height int) string {
	if height < 3 {
		height = 3
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	var body string
	switch p.Kind {
	case app.PreviewURL:
		body = stylePreviewTitle.Render("Full-page frame") + "\n" +
			styleMuted.Render("iframe → ") + lipgloss.NewStyle().Foreground(colorText).Render(p.Content)
	case app.PreviewHTML:
		heading, excerpt := p.Summary()
		var lines []string
		if heading != "" {
			lines = append(lines, stylePreviewTitle.Render(heading))
		}
		if excerpt != "" {
			lines = append(lines, styleMuted.Width(inner).Render(excerpt))
		}
		code, truncated := firstLines(p.Content, max(height-len(lines)-1, 1))
		lines = append(lines, highlightHTML(code))
		if truncated {
			lines = append(lines, styleMuted.Render("…"))
		}
		body = strings.Join(lines, "\n")
	default:
		body = styleMuted.Render("Nothing to preview yet")
	}

	return stylePreviewBox.Width(width).MaxHeight(height + 2).Render(body)
}
