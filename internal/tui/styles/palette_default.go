package styles

// DefaultPalette is the baseline palette.
var DefaultPalette = Palette{
	Name: "default",
	Tokens: PaletteTokens{
		Background: "#0B0F14",
		Panel:      "#121821",
		Text:       "#E6EDF3",
		TextMuted:  "#8B9AAE",
		Border:     "#223043",
		Accent:     "#56B6C2",
		Highlight:  "#2F5FB3",
		Active:     "#3FB950",
		Success:    "#3FB950",
		Warning:    "#E5C07B",
		Error:      "#F85149",
	},
}
