package theme

// NewCatppuccinMocha creates the default Catppuccin Mocha theme.
func NewCatppuccinMocha() *Theme {
	return &Theme{
		Name:   "catppuccin-mocha",
		IsDark: true,

		Primary:   "#cba6f7", // Mauve
		Secondary: "#b4befe", // Lavender

		BgBase: "#1e1e2e",

		FgMuted: "#6c7086",
		FgBase:  "#cdd6f4",

		Success: "#a6e3a1",
		Error:   "#f38ba8",
		Info:    "#89b4fa",

		DiffInsertFg: "#a6e3a1",
		DiffDeleteFg: "#f38ba8",
		DiffInsertBg: "#303a30", // Green-tinted background for insertions
		DiffDeleteBg: "#3a3030", // Red-tinted background for deletions
	}
}
