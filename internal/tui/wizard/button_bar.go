package wizard

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// ButtonState is the visual state of a button.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonDisabled
	ButtonFocused
)

// Button is a single entry in a ButtonBar.
type Button struct {
	Label string
	Key   string // shortcut shown after the label
	State ButtonState
}

// Enabled reports whether the button can be activated.
func (b Button) Enabled() bool {
	return b.State != ButtonDisabled
}

var (
	styleButtonNormal = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 2).
				Margin(0, 1)

	styleButtonDisabled = lipgloss.NewStyle().
				Foreground(colorOverlay0).
				Background(lipgloss.Color("#181825")).
				Padding(0, 2).
				Margin(0, 1)

	styleButtonFocused = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorSecondary).
				Bold(true).
				Padding(0, 2).
				Margin(0, 1)
)

// ButtonBar lays out the wizard's navigation buttons.
type ButtonBar struct {
	buttons []Button
	width   int
}

// NewButtonBar creates a button bar for buttons.
func NewButtonBar(buttons []Button) *ButtonBar {
	return &ButtonBar{buttons: buttons, width: 60}
}

// SetWidth sets the width the bar is centered in.
func (b *ButtonBar) SetWidth(width int) {
	b.width = width
}

// Buttons returns the bar's buttons.
func (b *ButtonBar) Buttons() []Button {
	return b.buttons
}

// Render draws the buttons centered in the bar width.
func (b *ButtonBar) Render() string {
	if len(b.buttons) == 0 {
		return ""
	}

	rendered := make([]string, 0, len(b.buttons))
	for _, btn := range b.buttons {
		label := btn.Label
		if btn.Key != "" {
			label += " (" + btn.Key + ")"
		}
		switch btn.State {
		case ButtonDisabled:
			rendered = append(rendered, styleButtonDisabled.Render(label))
		case ButtonFocused:
			rendered = append(rendered, styleButtonFocused.Render(label))
		default:
			rendered = append(rendered, styleButtonNormal.Render(label))
		}
	}

	return lipgloss.Place(b.width, 1, lipgloss.Center, lipgloss.Center, strings.Join(rendered, ""))
}

// CreateBackNextButtons builds the Back/Next pair. Next is disabled while
// the current step is invalid.
func CreateBackNextButtons(backEnabled, nextEnabled bool, nextLabel string) []Button {
	back := Button{Label: "← Back", Key: "esc", State: ButtonNormal}
	if !backEnabled {
		back.State = ButtonDisabled
	}
	return []Button{back, nextButton(nextEnabled, nextLabel)}
}

// CreateCancelNextButtons builds the first step's Cancel/Next pair.
func CreateCancelNextButtons(nextEnabled bool, nextLabel string) []Button {
	return []Button{
		{Label: "Cancel", Key: "esc", State: ButtonNormal},
		nextButton(nextEnabled, nextLabel),
	}
}

func nextButton(enabled bool, label string) Button {
	btn := Button{Label: label, Key: "ctrl+n", State: ButtonFocused}
	if !enabled {
		btn.State = ButtonDisabled
	}
	return btn
}
