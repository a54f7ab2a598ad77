package wizard

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/glamour/v2"

	"github.com/mark3labs/htmlpack/internal/app"
	"github.com/mark3labs/htmlpack/internal/output"
	"github.com/mark3labs/htmlpack/internal/packager"
)

const (
	publishFocusAds = iota
	publishFocusScript
)

// PublishStep configures ad injection and shows what will be exported.
type PublishStep struct {
	state     *app.State
	outputDir string

	scriptArea textarea.Model
	focusIndex int
	exportErr  string
	editorErr  string

	summarySrc   string // markdown the cached render was built from
	summaryWidth int
	summary      string
	width        int
	height       int
}

// NewPublishStep creates the last step, seeded from state.
func NewPublishStep(state *app.State, outputDir string) *PublishStep {
	return &PublishStep{
		state:      state,
		outputDir:  outputDir,
		scriptArea: newTextArea("<script async src=\"https://ads.example.com/tag.js\"></script>", state.AdScript()),
		width:      60,
		height:     20,
	}
}

func (p *PublishStep) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.scriptArea.SetWidth(width - 2)
	p.scriptArea.SetHeight(max(height/4, 3))
}

// Focus focuses the ads toggle.
func (p *PublishStep) Focus() tea.Cmd {
	p.focusIndex = publishFocusAds
	p.scriptArea.Blur()
	return nil
}

func (p *PublishStep) Commit() {}

func (p *PublishStep) Blur() {
	p.scriptArea.Blur()
}

// SetExportError shows err under the summary; nil clears it.
func (p *PublishStep) SetExportError(err error) {
	if err == nil {
		p.exportErr = ""
		return
	}
	p.exportErr = err.Error()
}

func (p *PublishStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.field != "ad_script" {
			return nil
		}
		if msg.err != nil {
			p.editorErr = msg.err.Error()
			return nil
		}
		p.editorErr = ""
		p.scriptArea.SetValue(msg.content)
		p.state.SetAdScript(msg.content)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if p.focusIndex == publishFocusAds && p.state.AdsEnabled() {
				p.focusIndex = publishFocusScript
				return p.scriptArea.Focus()
			}
			return p.Focus()
		}

		if p.focusIndex == publishFocusAds {
			switch msg.String() {
			case "space", " ", "x":
				p.state.ToggleAds()
			case "enter":
				return advance
			}
			return nil
		}

		if msg.String() == "ctrl+e" && editorAvailable() {
			return openEditor("ad_script", p.scriptArea.Value(), ".html")
		}
	}

	if p.focusIndex != publishFocusScript {
		return nil
	}
	var cmd tea.Cmd
	p.scriptArea, cmd = p.scriptArea.Update(msg)
	p.state.SetAdScript(p.scriptArea.Value())
	return cmd
}

// summaryMarkdown describes the session as it will be exported.
func (p *PublishStep) summaryMarkdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", p.state.AppName())
	b.WriteString("| | |\n|---|---|\n")

	logo := "none"
	if p.state.HasLogo() {
		logo = logoMediaType(p.state.AppLogo())
	}
	fmt.Fprintf(&b, "| Logo | %s |\n", logo)

	switch p.state.SourceType() {
	case app.SourceURL:
		fmt.Fprintf(&b, "| Source | %s |\n", p.state.AppURL())
	case app.SourceHTML:
		fmt.Fprintf(&b, "| Source | HTML code, %d bytes |\n", len(p.state.HTMLContent()))
	case app.SourceMultiPage:
		fmt.Fprintf(&b, "| Source | %s |\n", p.state.FilesSummary())
	}

	ads := "disabled"
	if p.state.AdsEnabled() {
		ads = fmt.Sprintf("enabled, %d bytes", len(p.state.AdScript()))
	}
	fmt.Fprintf(&b, "| Ads | %s |\n", ads)

	dir := p.outputDir
	if dir == "" {
		dir = "."
	}
	fmt.Fprintf(&b, "| Output | `%s` |\n", filepath.Join(dir, output.SafeName(packager.Filename(p.state.AppName()))))
	return b.String()
}

func (p *PublishStep) renderSummary() string {
	src := p.summaryMarkdown()
	if src != p.summarySrc || p.width != p.summaryWidth {
		p.summarySrc = src
		p.summaryWidth = p.width
		p.summary = renderMarkdown(src, p.width)
	}
	return p.summary
}

// renderMarkdown renders with glamour, falling back to the raw text.
func renderMarkdown(content string, width int) string {
	if width > 120 {
		width = 120
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(rendered, "\n")
}

func (p *PublishStep) View() string {
	var b strings.Builder

	check := "[ ]"
	if p.state.AdsEnabled() {
		check = "[x]"
	}
	b.WriteString(renderLabel(check+" Inject ad script", p.focusIndex == publishFocusAds))
	b.WriteString("\n")

	if p.state.AdsEnabled() {
		b.WriteString(renderLabel("Ad script (inserted before </head>)", p.focusIndex == publishFocusScript))
		b.WriteString("\n")
		b.WriteString(p.scriptArea.View())
		b.WriteString("\n")
		if p.editorErr != "" {
			b.WriteString(styleError.Render("  ✗ " + p.editorErr))
			b.WriteString("\n")
		}
	}

	b.WriteString(p.renderSummary())
	b.WriteString("\n")
	if p.exportErr != "" {
		b.WriteString(styleError.Render("✗ Export failed: " + p.exportErr))
	}
	return b.String()
}

func (p *PublishStep) Hints() []string {
	hints := []string{"space", "toggle ads"}
	if p.state.AdsEnabled() {
		hints = append(hints, "tab", "switch field")
		if p.focusIndex == publishFocusScript && editorAvailable() {
			hints = append(hints, "ctrl+e", "edit in $EDITOR")
		}
	}
	return append(hints, "ctrl+n", "export", "esc", "back")
}
