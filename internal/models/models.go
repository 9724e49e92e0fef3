package models

import (
	"database/sql"
	"time"
)

// Location is a place the dashboard shows weather for. One row per
// configured coordinate pair; the provider resolves the timezone.
type Location struct {
	ID        int64
	Name      string
	Latitude  float64
	Longitude float64
	Timezone  string
	Active    bool
}

// Snapshot is one fetch of current conditions.
type Snapshot struct {
	ID           int64
	LocationID   int64
	FetchedAt    time.Time
	ObservedAt   time.Time
	Temp         sql.NullFloat64
	Humidity     sql.NullInt64
	WeatherCode  sql.NullInt64
	IsDay        bool
	QualityFlags string // JSON array of validation flags, empty if clean
	CreatedAt    time.Time
}

// ForecastDay is one of the seven daily rows fetched alongside a snapshot.
// ValidDate keeps the provider's ISO date string as-is; the provider
// localizes it, so no timezone handling happens downstream.
type ForecastDay struct {
	ID          int64
	LocationID  int64
	FetchedAt   time.Time
	ValidDate   string
	DayIndex    int
	WeatherCode sql.NullInt64
	TempMax     sql.NullFloat64
	TempMin     sql.NullFloat64
}
