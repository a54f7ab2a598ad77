package wizard

import (
	"slices"
	"strings"
	"unicode"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/app"
)

const (
	sourceFocusType = iota
	sourceFocusContent
)

var sourceTypeLabels = map[app.SourceType]string{
	app.SourceURL:       "Website URL",
	app.SourceHTML:      "HTML code",
	app.SourceMultiPage: "Multi-page files",
}

// SourceStep selects where the app's content comes from and collects it.
type SourceStep struct {
	state *app.State
	fs    afero.Fs

	urlInput   textinput.Model
	htmlArea   textarea.Model
	filesInput textinput.Model
	focusIndex int

	filesPaths string // last paths committed to the session
	filesErr   string
	editorErr  string
	width      int
	height     int
}

// NewSourceStep creates the second step, seeded from state.
func NewSourceStep(state *app.State, fs afero.Fs) *SourceStep {
	return &SourceStep{
		state:      state,
		fs:         fs,
		urlInput:   newTextInput("https://example.com", state.AppURL()),
		htmlArea:   newTextArea("<!DOCTYPE html>\n<html>…</html>", state.HTMLContent()),
		filesInput: newTextInput("site/ or index.html style.css", ""),
		width:      60,
		height:     20,
	}
}

func (s *SourceStep) SetSize(width, height int) {
	s.width = width
	s.height = height
	s.urlInput.SetWidth(width - 4)
	s.filesInput.SetWidth(width - 4)
	s.htmlArea.SetWidth(width - 2)
	s.htmlArea.SetHeight(max(height/3, 4))
}

// Focus focuses the source type selector.
func (s *SourceStep) Focus() tea.Cmd {
	return s.focus(sourceFocusType)
}

func (s *SourceStep) Commit() { s.commitFiles() }

func (s *SourceStep) Blur() {
	s.commitFiles()
	s.urlInput.Blur()
	s.htmlArea.Blur()
	s.filesInput.Blur()
}

func (s *SourceStep) focus(idx int) tea.Cmd {
	if s.focusIndex == sourceFocusContent && idx != sourceFocusContent {
		s.commitFiles()
	}
	s.focusIndex = idx
	s.urlInput.Blur()
	s.htmlArea.Blur()
	s.filesInput.Blur()
	if idx == sourceFocusType {
		return nil
	}
	switch s.state.SourceType() {
	case app.SourceHTML:
		return s.htmlArea.Focus()
	case app.SourceMultiPage:
		return s.filesInput.Focus()
	default:
		return s.urlInput.Focus()
	}
}

func (s *SourceStep) selectType(delta int) {
	idx := slices.Index(app.SourceTypes, s.state.SourceType())
	n := len(app.SourceTypes)
	s.state.SelectSourceType(app.SourceTypes[((idx+delta)%n+n)%n])
}

// splitPaths accepts paths separated by whitespace or commas.
func splitPaths(v string) []string {
	return strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// commitFiles loads the bundle once the path list changes.
func (s *SourceStep) commitFiles() {
	v := strings.TrimSpace(s.filesInput.Value())
	if v == s.filesPaths {
		return
	}
	s.filesPaths = v
	s.filesErr = ""

	files, err := app.LoadBundle(s.fs, splitPaths(v))
	if err != nil {
		s.filesErr = err.Error()
		return
	}
	s.state.SetFiles(files)
}

func (s *SourceStep) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case editorFinishedMsg:
		if msg.field != "html" {
			return nil
		}
		if msg.err != nil {
			s.editorErr = msg.err.Error()
			return nil
		}
		s.editorErr = ""
		s.htmlArea.SetValue(msg.content)
		s.state.SetHTML(msg.content)
		return nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			return s.focus((s.focusIndex + 1) % 2)
		}

		if s.focusIndex == sourceFocusType {
			switch msg.String() {
			case "left", "h", "up", "k":
				s.selectType(-1)
			case "right", "l", "down", "j":
				s.selectType(1)
			case "1", "2", "3":
				s.state.SelectSourceType(app.SourceTypes[int(msg.String()[0]-'1')])
			case "enter":
				return s.focus(sourceFocusContent)
			}
			return nil
		}

		switch s.state.SourceType() {
		case app.SourceURL:
			if msg.String() == "enter" {
				return advance
			}
		case app.SourceHTML:
			if msg.String() == "ctrl+e" && editorAvailable() {
				return openEditor("html", s.htmlArea.Value(), ".html")
			}
		case app.SourceMultiPage:
			if msg.String() == "enter" {
				s.commitFiles()
				if s.filesErr == "" && s.state.StepValid(app.StepSource) {
					return advance
				}
				return nil
			}
		}
	}

	if s.focusIndex != sourceFocusContent {
		return nil
	}

	var cmd tea.Cmd
	switch s.state.SourceType() {
	case app.SourceURL:
		s.urlInput, cmd = s.urlInput.Update(msg)
		if s.urlInput.Value() != s.state.AppURL() {
			s.state.SetURL(s.urlInput.Value())
		}
	case app.SourceHTML:
		s.htmlArea, cmd = s.htmlArea.Update(msg)
		if s.htmlArea.Value() != s.state.HTMLContent() {
			s.state.SetHTML(s.htmlArea.Value())
		}
	case app.SourceMultiPage:
		s.filesInput, cmd = s.filesInput.Update(msg)
	}
	return cmd
}

func (s *SourceStep) View() string {
	var b strings.Builder

	b.WriteString(renderLabel("Source", s.focusIndex == sourceFocusType))
	b.WriteString("\n  ")
	for i, t := range app.SourceTypes {
		label := string(rune('1'+i)) + " " + sourceTypeLabels[t]
		if t == s.state.SourceType() {
			b.WriteString(styleOptionSelected.Render(label))
		} else {
			b.WriteString(styleOption.Render(label))
		}
		b.WriteString(" ")
	}
	b.WriteString("\n\n")

	focused := s.focusIndex == sourceFocusContent
	valid := s.state.StepValid(app.StepSource)
	switch s.state.SourceType() {
	case app.SourceURL:
		b.WriteString(renderLabel("Website URL", focused))
		b.WriteString("\n")
		b.WriteString(s.urlInput.View())
		b.WriteString("\n")
		if !valid && strings.TrimSpace(s.state.AppURL()) != "" {
			b.WriteString(styleError.Render("  Enter an absolute URL such as https://example.com"))
		}
	case app.SourceHTML:
		b.WriteString(renderLabel("HTML code", focused))
		b.WriteString("\n")
		b.WriteString(s.htmlArea.View())
		b.WriteString("\n")
		if s.editorErr != "" {
			b.WriteString(styleError.Render("  ✗ " + s.editorErr))
		}
	case app.SourceMultiPage:
		b.WriteString(renderLabel("Files or directories", focused))
		b.WriteString("\n")
		b.WriteString(s.filesInput.View())
		b.WriteString("\n")
		switch {
		case s.filesErr != "":
			b.WriteString(styleError.Render("  ✗ " + s.filesErr))
		case valid:
			b.WriteString(styleSuccess.Render("  ✓ " + s.state.FilesSummary()))
		default:
			b.WriteString(styleMuted.Render("  " + s.state.FilesSummary()))
		}
	}
	b.WriteString("\n\n")

	previewHeight := s.height - strings.Count(b.String(), "\n") - 3
	b.WriteString(renderPreview(s.state.Preview(), s.width, max(previewHeight, 3)))
	return b.String()
}

func (s *SourceStep) Hints() []string {
	hints := []string{"tab", "switch field"}
	if s.focusIndex == sourceFocusType {
		hints = append(hints, "←→", "source type")
	}
	if s.focusIndex == sourceFocusContent && s.state.SourceType() == app.SourceHTML && editorAvailable() {
		hints = append(hints, "ctrl+e", "edit in $EDITOR")
	}
	return append(hints, "ctrl+n", "next", "esc", "back")
}
