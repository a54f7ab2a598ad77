package theme

import "charm.land/lipgloss/v2"

// Styles contains the pre-built lipgloss styles shared by the CLI.
type Styles struct {
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Success    lipgloss.Style
	Error      lipgloss.Style
	DiffHeader lipgloss.Style
	DiffHunk   lipgloss.Style
	DiffInsert lipgloss.Style
	DiffDelete lipgloss.Style
}
