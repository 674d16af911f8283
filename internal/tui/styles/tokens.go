package styles

// PaletteTokens defines the semantic color roles for the picker.
type PaletteTokens struct {
	Background string
	Panel      string
	Text       string
	TextMuted  string
	Border     string
	Accent     string
	Highlight  string
	Active     string
	Success    string
	Warning    string
	Error      string
}

// Palette bundles color tokens with a name.
type Palette struct {
	Name   string
	Tokens PaletteTokens
}

// Palettes lists available palettes by name.
var Palettes = map[string]Palette{
	"default":       DefaultPalette,
	"high-contrast": HighContrastPalette,
}

// PaletteByName returns the named palette, falling back to the default.
func PaletteByName(name string) (Palette, bool) {
	if p, ok := Palettes[name]; ok {
		return p, true
	}
	return DefaultPalette, false
}
