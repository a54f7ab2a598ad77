package wizard

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/spf13/afero"

	"github.com/mark3labs/htmlpack/internal/app"
)

const (
	detailsFocusName = iota
	detailsFocusLogo
	detailsFieldCount
)

// DetailsStep collects the app name and an optional logo.
type DetailsStep struct {
	state       *app.State
	fs          afero.Fs
	logoMaxSize int

	nameInput  textinput.Model
	logoInput  textinput.Model
	focusIndex int

	logoPath string // last path committed to the session
	logoErr  string
	width    int
}

// NewDetailsStep creates the first step, seeded from state.
func NewDetailsStep(state *app.State, fs afero.Fs, logoMaxSize int) *DetailsStep {
	return &DetailsStep{
		state:       state,
		fs:          fs,
		logoMaxSize: logoMaxSize,
		nameInput:   newTextInput("App name", state.AppName()),
		logoInput:   newTextInput("path/to/logo.png (optional)", ""),
		width:       60,
	}
}

func (d *DetailsStep) SetSize(width, height int) {
	d.width = width
	d.nameInput.SetWidth(width - 4)
	d.logoInput.SetWidth(width - 4)
}

// Focus focuses the name field.
func (d *DetailsStep) Focus() tea.Cmd {
	return d.focus(detailsFocusName)
}

func (d *DetailsStep) Commit() { d.commitLogo() }

func (d *DetailsStep) Blur() {
	d.commitLogo()
	d.nameInput.Blur()
	d.logoInput.Blur()
}

func (d *DetailsStep) focus(idx int) tea.Cmd {
	if d.focusIndex == detailsFocusLogo && idx != detailsFocusLogo {
		d.commitLogo()
	}
	d.focusIndex = idx
	d.nameInput.Blur()
	d.logoInput.Blur()
	if idx == detailsFocusLogo {
		return d.logoInput.Focus()
	}
	return d.nameInput.Focus()
}

// commitLogo loads the logo path once it changes. An empty path clears it.
func (d *DetailsStep) commitLogo() {
	path := strings.TrimSpace(d.logoInput.Value())
	if path == d.logoPath {
		return
	}
	d.logoPath = path
	d.logoErr = ""
	if path == "" {
		d.state.ClearLogo()
		return
	}
	if err := d.state.LoadLogo(d.fs, path, d.logoMaxSize); err != nil {
		d.logoErr = err.Error()
	}
}

func (d *DetailsStep) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "tab", "down":
			return d.focus((d.focusIndex + 1) % detailsFieldCount)
		case "shift+tab", "up":
			return d.focus((d.focusIndex + detailsFieldCount - 1) % detailsFieldCount)
		case "enter":
			if d.focusIndex == detailsFocusName {
				return d.focus(detailsFocusLogo)
			}
			d.commitLogo()
			if d.logoErr != "" {
				return nil
			}
			return advance
		}
	}

	var cmd tea.Cmd
	if d.focusIndex == detailsFocusName {
		d.nameInput, cmd = d.nameInput.Update(msg)
		d.state.SetAppName(d.nameInput.Value())
	} else {
		d.logoInput, cmd = d.logoInput.Update(msg)
	}
	return cmd
}

func (d *DetailsStep) View() string {
	var b strings.Builder

	b.WriteString(renderLabel("App name", d.focusIndex == detailsFocusName))
	b.WriteString("\n")
	b.WriteString(d.nameInput.View())
	b.WriteString("\n")
	if !d.state.StepValid(app.StepDetails) {
		b.WriteString(styleError.Render("  App name is required"))
	}
	b.WriteString("\n")

	b.WriteString(renderLabel("Logo", d.focusIndex == detailsFocusLogo))
	b.WriteString("\n")
	b.WriteString(d.logoInput.View())
	b.WriteString("\n")
	switch {
	case d.logoErr != "":
		b.WriteString(styleError.Render("  ✗ " + d.logoErr))
	case d.state.HasLogo():
		b.WriteString(styleSuccess.Render("  ✓ Logo loaded (" + logoMediaType(d.state.AppLogo()) + ")"))
	default:
		b.WriteString(styleMuted.Render("  No logo"))
	}
	return b.String()
}

func (d *DetailsStep) Hints() []string {
	return []string{"tab", "next field", "enter", "continue", "esc", "cancel"}
}

// logoMediaType extracts the media type from a data URI.
func logoMediaType(uri string) string {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "custom"
	}
	if i := strings.IndexAny(rest, ";,"); i >= 0 {
		return rest[:i]
	}
	return rest
}
