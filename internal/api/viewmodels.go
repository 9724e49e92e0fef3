package api

import (
	"time"

	"github.com/Fawkes0113/Aura-Horizontal/internal/forecast"
)

// DashboardData drives the two-panel index template.
type DashboardData struct {
	LocationName string
	Current      *CurrentPanel // nil until the first fetch lands
	Rows         []RowView
	Palette      forecast.Palette
	LastUpdated  time.Time
	Stale        bool
}

// CurrentPanel is the left panel: latest observed conditions.
type CurrentPanel struct {
	Temp       string
	HasTemp    bool
	Humidity   int64
	HasHum     bool
	Icon       forecast.Icon
	Emoji      string
	Condition  string
	IsDay      bool
	ObservedAt time.Time
}

// RowView is one rendered forecast row.
type RowView struct {
	Label     string
	Icon      forecast.Icon
	Emoji     string
	Condition string
	High      string
	Low       string
}

// HealthStatus is the /health response body.
type HealthStatus struct {
	Status      string     `json:"status"`
	Location    string     `json:"location"`
	LastFetched *time.Time `json:"last_fetched,omitempty"`
	LastIngest  *IngestInfo `json:"last_ingest,omitempty"`
}

// IngestInfo summarizes the most recent ingest run.
type IngestInfo struct {
	Source  string `json:"source"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// CurrentJSON is the /api/current response body.
type CurrentJSON struct {
	Location     string    `json:"location"`
	Temperature  *float64  `json:"temperature,omitempty"`
	Humidity     *int64    `json:"humidity,omitempty"`
	WeatherCode  *int64    `json:"weather_code,omitempty"`
	IsDay        bool      `json:"is_day"`
	Icon         string    `json:"icon"`
	Condition    string    `json:"condition"`
	ObservedAt   time.Time `json:"observed_at"`
	QualityFlags string    `json:"quality_flags,omitempty"`
}

// ForecastJSON is the /api/forecast response body.
type ForecastJSON struct {
	Location string         `json:"location"`
	Days     []forecast.Row `json:"days"`
}
