package wizard

import (
	"charm.land/lipgloss/v2"
)

// Color palette (Catppuccin Mocha)
var (
	colorPrimary       = lipgloss.Color("#cba6f7") // Mauve
	colorSecondary     = lipgloss.Color("#b4befe") // Lavender
	colorText          = lipgloss.Color("#cdd6f4") // Text
	colorBase          = lipgloss.Color("#1e1e2e") // Base
	colorSubtext0      = lipgloss.Color("#a6adc8") // Subtext0
	colorSubtext1      = lipgloss.Color("#bac2de") // Subtext1
	colorSurface0      = lipgloss.Color("#313244") // Surface0
	colorSurface2      = lipgloss.Color("#585b70") // Surface2
	colorOverlay0      = lipgloss.Color("#6c7086") // Overlay0
	colorGreen         = lipgloss.Color("#a6e3a1")
	colorRed           = lipgloss.Color("#f38ba8")
	colorBlue          = lipgloss.Color("#89b4fa")
	colorBorderFocused = lipgloss.Color("#b4befe") // Lavender for borders
)

// Modal styles
var (
	styleModalContainer = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorderFocused).
				Background(colorBase).
				Padding(1, 2)

	styleModalTitle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Align(lipgloss.Center)
)

// Field styles
var (
	styleLabel = lipgloss.NewStyle().
			Foreground(colorSubtext1)

	styleLabelFocused = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	styleOption = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	styleOptionSelected = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorPrimary).
				Bold(true).
				Padding(0, 1)

	stylePreviewBox = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)

	stylePreviewTitle = lipgloss.NewStyle().
				Foreground(colorBlue).
				Bold(true)
)

// Hint bar styles
var (
	styleHintKey = lipgloss.NewStyle().
			Foreground(colorSubtext1).
			Bold(true)

	styleHintDesc = lipgloss.NewStyle().
			Foreground(colorSubtext0)

	styleHintSeparator = lipgloss.NewStyle().
				Foreground(colorSurface2)
)

// renderHintBar renders key/description pairs.
// renderHintBar("tab", "next field", "esc", "back") gives "tab next field • esc back".
func renderHintBar(pairs ...string) string {
	if len(pairs) == 0 || len(pairs)%2 != 0 {
		return ""
	}

	var result string
	for i := 0; i < len(pairs); i += 2 {
		if i > 0 {
			result += " " + styleHintSeparator.Render("•") + " "
		}
		result += styleHintKey.Render(pairs[i]) + " " + styleHintDesc.Render(pairs[i+1])
	}
	return result
}

// renderLabel renders a field label, highlighted when the field has focus.
func renderLabel(label string, focused bool) string {
	if focused {
		return styleLabelFocused.Render("› " + label)
	}
	return styleLabel.Render("  " + label)
}
