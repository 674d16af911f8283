package styles

// HighContrastPalette favors visibility on low-contrast terminals.
var HighContrastPalette = Palette{
	Name: "high-contrast",
	Tokens: PaletteTokens{
		Background: "#000000",
		Panel:      "#0A0A0A",
		Text:       "#FFFFFF",
		TextMuted:  "#C0C0C0",
		Border:     "#FFFFFF",
		Accent:     "#00A2FF",
		Highlight:  "#0050FF",
		Active:     "#00FF5A",
		Success:    "#00FF5A",
		Warning:    "#FFD400",
		Error:      "#FF4040",
	},
}
