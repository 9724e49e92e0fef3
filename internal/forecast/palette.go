package forecast

// Palette defines the dashboard color scheme for a weather condition.
type Palette struct {
	// Background is the main page background color
	Background string
	// Card is the background for the two panels
	Card string
	// Text is the primary text color
	Text string
	// TextMuted is the secondary/muted text color
	TextMuted string
	// Accent is the highlight color (current temp, forecast highs)
	Accent string
}

// DefaultPalette is the fallback dark theme.
var DefaultPalette = Palette{
	Background: "#0f0f1a",
	Card:       "#1a1a2e",
	Text:       "#eeeeee",
	TextMuted:  "#666666",
	Accent:     "#4fc3f7",
}

var dayPalette = Palette{
	Background: "#e8f0f5",
	Card:       "#ffffff",
	Text:       "#1a2530",
	TextMuted:  "#506070",
	Accent:     "#d07020",
}

var nightPalette = Palette{
	Background: "#0a0a12",
	Card:       "#141420",
	Text:       "#dde0e8",
	TextMuted:  "#556070",
	Accent:     "#7799cc",
}

var stormPalette = Palette{
	Background: "#14141e",
	Card:       "#202030",
	Text:       "#e8e8f0",
	TextMuted:  "#707088",
	Accent:     "#ffb74d",
}

var precipPalette = Palette{
	Background: "#1a2028",
	Card:       "#242c38",
	Text:       "#e0e8f0",
	TextMuted:  "#6a7888",
	Accent:     "#4fc3f7",
}

// GetPalette picks a color scheme for the current-conditions icon. Stormy and
// wet conditions get their own schemes; everything else splits on day/night.
func GetPalette(icon Icon, isDay bool) Palette {
	switch icon {
	case IconIsolatedTstormsDay, IconIsolatedTstormsNight, IconStrongTstorms:
		return stormPalette
	case IconDrizzle, IconScatteredShowersDay, IconScatteredShowersNight,
		IconShowersRain, IconHeavyRain, IconSleetHail, IconWintryMix,
		IconSnowShowers, IconFlurries, IconHeavySnow:
		return precipPalette
	}
	if isDay {
		return dayPalette
	}
	return nightPalette
}
