package ingest

import (
	"encoding/json"

	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
)

const (
	FlagTempOutOfRange  = "temp_out_of_range"
	FlagHumidityInvalid = "humidity_invalid"
	FlagCodeOutOfRange  = "code_out_of_range"
)

// ValidateSnapshot sanity-checks a decoded snapshot. Flags are recorded
// alongside the row; flagged snapshots still get stored and rendered, the
// icon resolver's fallback covers odd codes.
func ValidateSnapshot(snap *models.Snapshot) []string {
	var flags []string

	if snap.Temp.Valid {
		if snap.Temp.Float64 < -90 || snap.Temp.Float64 > 60 {
			flags = append(flags, FlagTempOutOfRange)
		}
	}

	if snap.Humidity.Valid {
		if snap.Humidity.Int64 < 0 || snap.Humidity.Int64 > 100 {
			flags = append(flags, FlagHumidityInvalid)
		}
	}

	if snap.WeatherCode.Valid {
		if snap.WeatherCode.Int64 < 0 || snap.WeatherCode.Int64 > 99 {
			flags = append(flags, FlagCodeOutOfRange)
		}
	}

	return flags
}

// QualityFlagsToJSON serializes flags for storage, or "" when clean.
func QualityFlagsToJSON(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	b, err := json.Marshal(flags)
	if err != nil {
		return ""
	}
	return string(b)
}
