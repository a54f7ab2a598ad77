package wizard

import (
	"os"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/editor"
)

var inputStyles = textinput.Styles{
	Focused: textinput.StyleState{
		Text:        lipgloss.NewStyle().Foreground(colorText),
		Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
		Prompt:      lipgloss.NewStyle().Foreground(colorSecondary),
	},
	Blurred: textinput.StyleState{
		Text:        lipgloss.NewStyle().Foreground(colorSubtext0),
		Placeholder: lipgloss.NewStyle().Foreground(colorSubtext0),
		Prompt:      lipgloss.NewStyle().Foreground(colorOverlay0),
	},
	Cursor: textinput.CursorStyle{
		Color: colorPrimary,
		Shape: tea.CursorBar,
		Blink: true,
	},
}

func newTextInput(placeholder, value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = "> "
	in.SetStyles(inputStyles)
	in.SetWidth(50)
	in.SetValue(value)
	return in
}

func newTextArea(placeholder, value string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.Prompt = "┃ "
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.SetWidth(50)
	ta.SetHeight(6)
	ta.SetValue(value)
	return ta
}

// editorFinishedMsg carries the text returned from $EDITOR.
type editorFinishedMsg struct {
	field   string
	content string
	err     error
}

// editorAvailable reports whether $EDITOR is set.
func editorAvailable() bool {
	return os.Getenv("EDITOR") != ""
}

// openEditor round-trips content through $EDITOR via a temp file with the
// given extension so the editor picks the right syntax.
func openEditor(field, content, ext string) tea.Cmd {
	tmpfile, err := os.CreateTemp("", "htmlpack_*"+ext)
	if err != nil {
		return func() tea.Msg { return editorFinishedMsg{field: field, err: err} }
	}
	if _, err := tmpfile.WriteString(content); err != nil {
		_ = tmpfile.Close()
		_ = os.Remove(tmpfile.Name())
		return func() tea.Msg { return editorFinishedMsg{field: field, err: err} }
	}
	_ = tmpfile.Close()

	cmd, err := editor.Command("htmlpack", tmpfile.Name())
	if err != nil {
		_ = os.Remove(tmpfile.Name())
		return func() tea.Msg { return editorFinishedMsg{field: field, err: err} }
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() { _ = os.Remove(tmpfile.Name()) }()
		if err != nil {
			return editorFinishedMsg{field: field, err: err}
		}
		data, err := os.ReadFile(tmpfile.Name())
		if err != nil {
			return editorFinishedMsg{field: field, err: err}
		}
		return editorFinishedMsg{field: field, content: string(data)}
	})
}
