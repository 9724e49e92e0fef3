package api

import (
	"fmt"
	"time"

	"github.com/Fawkes0113/Aura-Horizontal/internal/forecast"
	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
)

// getDashboardData assembles everything the index template needs from the
// latest stored snapshot and forecast.
func (s *Server) getDashboardData() (*DashboardData, error) {
	data := &DashboardData{
		LocationName: s.location.Name,
		Palette:      forecast.DefaultPalette,
	}

	snap, err := s.store.LatestSnapshot(s.location.ID)
	if err != nil {
		return nil, fmt.Errorf("latest snapshot: %w", err)
	}
	if snap != nil {
		data.Current = buildCurrentPanel(snap)
		data.Palette = forecast.GetPalette(data.Current.Icon, snap.IsDay)
		data.LastUpdated = snap.FetchedAt
		data.Stale = time.Since(snap.FetchedAt) > staleThreshold
	}

	rows, err := s.getForecastRows()
	if err != nil {
		return nil, err
	}
	data.Rows = rows

	return data, nil
}

// buildCurrentPanel maps a snapshot through the icon resolver using the
// reported day/night flag. A snapshot without a weather code renders the
// cloudy fallback.
func buildCurrentPanel(snap *models.Snapshot) *CurrentPanel {
	code := -1
	if snap.WeatherCode.Valid {
		code = int(snap.WeatherCode.Int64)
	}
	icon := forecast.ResolveIcon(code, snap.IsDay)

	panel := &CurrentPanel{
		Icon:       icon,
		Emoji:      icon.Emoji(),
		Condition:  icon.Description(),
		IsDay:      snap.IsDay,
		ObservedAt: snap.ObservedAt,
	}
	if snap.Temp.Valid {
		panel.Temp = forecast.FormatTemp(snap.Temp.Float64)
		panel.HasTemp = true
	}
	if snap.Humidity.Valid {
		panel.Humidity = snap.Humidity.Int64
		panel.HasHum = true
	}
	return panel
}

// getForecastRows runs the stored forecast days through the row builder.
// Returns nil rows when no forecast has been stored yet.
func (s *Server) getForecastRows() ([]RowView, error) {
	days, err := s.store.LatestForecast(s.location.ID)
	if err != nil {
		return nil, fmt.Errorf("latest forecast: %w", err)
	}
	if len(days) == 0 {
		return nil, nil
	}

	rows, err := buildRowsFromDays(days)
	if err != nil {
		return nil, err
	}

	views := make([]RowView, len(rows))
	for i, r := range rows {
		views[i] = RowView{
			Label:     r.Label,
			Icon:      r.Icon,
			Emoji:     r.Icon.Emoji(),
			Condition: r.Icon.Description(),
			High:      forecast.FormatTemp(r.High),
			Low:       forecast.FormatTemp(r.Low),
		}
	}
	return views, nil
}

// buildRowsFromDays splits stored rows back into the parallel arrays the row
// builder consumes.
func buildRowsFromDays(days []models.ForecastDay) ([]forecast.Row, error) {
	dates := make([]string, len(days))
	codes := make([]int, len(days))
	highs := make([]float64, len(days))
	lows := make([]float64, len(days))
	for i, d := range days {
		dates[i] = d.ValidDate
		codes[i] = int(d.WeatherCode.Int64)
		highs[i] = d.TempMax.Float64
		lows[i] = d.TempMin.Float64
	}
	return forecast.BuildRows(dates, codes, highs, lows)
}
