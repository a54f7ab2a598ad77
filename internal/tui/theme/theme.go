package theme

import (
	"sync"

	"charm.land/lipgloss/v2"
)

// Theme defines the color palette. Colors are #RRGGBB strings.
type Theme struct {
	Name   string
	IsDark bool

	Primary   string
	Secondary string

	BgBase string

	FgMuted string
	FgBase  string

	Success string
	Error   string
	Info    string

	DiffInsertFg string
	DiffDeleteFg string
	DiffInsertBg string
	DiffDeleteBg string

	// Lazy-built styles
	styles     *Styles
	stylesOnce sync.Once
}

// S returns the pre-built styles for this theme.
// Styles are lazily initialized on first call.
func (t *Theme) S() *Styles {
	t.stylesOnce.Do(func() {
		t.styles = t.buildStyles()
	})
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.FgMuted)),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Success)),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		DiffHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.FgBase)).
			Bold(true),
		DiffHunk: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Info)),
		DiffInsert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DiffInsertFg)).
			Background(lipgloss.Color(t.DiffInsertBg)),
		DiffDelete: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.DiffDeleteFg)).
			Background(lipgloss.Color(t.DiffDeleteBg)),
	}
}
