package forecast

// Icon identifies one of the fixed dashboard icon assets. The set is closed:
// every WMO weather code resolves to exactly one of these, with IconCloudy as
// the fallback for codes outside the mapping table.
type Icon string

const (
	IconSunny                 Icon = "sunny"
	IconClearNight            Icon = "clear_night"
	IconMostlySunny           Icon = "mostly_sunny"
	IconMostlyClearNight      Icon = "mostly_clear_night"
	IconPartlyCloudy          Icon = "partly_cloudy"
	IconPartlyCloudyNight     Icon = "partly_cloudy_night"
	IconCloudy                Icon = "cloudy"
	IconHazeFogDustSmoke      Icon = "haze_fog_dust_smoke"
	IconDrizzle               Icon = "drizzle"
	IconSleetHail             Icon = "sleet_hail"
	IconScatteredShowersDay   Icon = "scattered_showers_day"
	IconScatteredShowersNight Icon = "scattered_showers_night"
	IconShowersRain           Icon = "showers_rain"
	IconHeavyRain             Icon = "heavy_rain"
	IconWintryMix             Icon = "wintry_mix"
	IconSnowShowers           Icon = "snow_showers"
	IconFlurries              Icon = "flurries"
	IconHeavySnow             Icon = "heavy_snow"
	IconIsolatedTstormsDay    Icon = "isolated_tstorms_day"
	IconIsolatedTstormsNight  Icon = "isolated_tstorms_night"
	IconStrongTstorms         Icon = "strong_tstorms"
)

// ResolveIcon maps a WMO weather interpretation code to an icon asset. Codes
// 0, 1, 2, 61, 80, 81 and 95 have day/night variants selected by isDay; all
// other codes render the same asset around the clock. Unmapped codes fall
// back to IconCloudy, so the function is total over all integers.
func ResolveIcon(code int, isDay bool) Icon {
	switch code {
	case 0:
		if isDay {
			return IconSunny
		}
		return IconClearNight
	case 1:
		if isDay {
			return IconMostlySunny
		}
		return IconMostlyClearNight
	case 2:
		if isDay {
			return IconPartlyCloudy
		}
		return IconPartlyCloudyNight
	case 3:
		return IconCloudy
	case 45, 48:
		return IconHazeFogDustSmoke
	case 51, 53, 55:
		return IconDrizzle
	case 56, 57:
		return IconSleetHail
	case 61, 80, 81:
		if isDay {
			return IconScatteredShowersDay
		}
		return IconScatteredShowersNight
	case 63:
		return IconShowersRain
	case 65, 82:
		return IconHeavyRain
	case 66, 67:
		return IconWintryMix
	case 71, 73, 75, 85:
		return IconSnowShowers
	case 77:
		return IconFlurries
	case 86:
		return IconHeavySnow
	case 95:
		if isDay {
			return IconIsolatedTstormsDay
		}
		return IconIsolatedTstormsNight
	case 96, 99:
		return IconStrongTstorms
	default:
		return IconCloudy
	}
}

// Emoji returns a glyph for the icon, for plain-text contexts like the
// dashboard title and JSON consumers without the asset set.
func (i Icon) Emoji() string {
	switch i {
	case IconSunny:
		return "☀️"
	case IconClearNight:
		return "🌙"
	case IconMostlySunny:
		return "🌤️"
	case IconMostlyClearNight:
		return "🌙"
	case IconPartlyCloudy, IconPartlyCloudyNight:
		return "⛅"
	case IconCloudy:
		return "☁️"
	case IconHazeFogDustSmoke:
		return "🌫️"
	case IconDrizzle, IconScatteredShowersDay, IconScatteredShowersNight:
		return "🌦️"
	case IconShowersRain, IconHeavyRain:
		return "🌧️"
	case IconSleetHail, IconWintryMix:
		return "🌨️"
	case IconSnowShowers, IconFlurries, IconHeavySnow:
		return "❄️"
	case IconIsolatedTstormsDay, IconIsolatedTstormsNight, IconStrongTstorms:
		return "⛈️"
	default:
		return "☁️"
	}
}

// Description returns a short human-readable condition phrase.
func (i Icon) Description() string {
	switch i {
	case IconSunny:
		return "Sunny"
	case IconClearNight:
		return "Clear"
	case IconMostlySunny:
		return "Mostly Sunny"
	case IconMostlyClearNight:
		return "Mostly Clear"
	case IconPartlyCloudy, IconPartlyCloudyNight:
		return "Partly Cloudy"
	case IconCloudy:
		return "Cloudy"
	case IconHazeFogDustSmoke:
		return "Fog"
	case IconDrizzle:
		return "Drizzle"
	case IconSleetHail:
		return "Sleet"
	case IconScatteredShowersDay, IconScatteredShowersNight:
		return "Scattered Showers"
	case IconShowersRain:
		return "Rain"
	case IconHeavyRain:
		return "Heavy Rain"
	case IconWintryMix:
		return "Wintry Mix"
	case IconSnowShowers:
		return "Snow Showers"
	case IconFlurries:
		return "Flurries"
	case IconHeavySnow:
		return "Heavy Snow"
	case IconIsolatedTstormsDay, IconIsolatedTstormsNight:
		return "Isolated Thunderstorms"
	case IconStrongTstorms:
		return "Strong Thunderstorms"
	default:
		return "Cloudy"
	}
}
