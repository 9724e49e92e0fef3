package store

import (
	"database/sql"
	"fmt"

	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// UpsertLocation inserts or updates a location keyed by coordinates and
// returns its row ID.
func (s *Store) UpsertLocation(loc models.Location) (int64, error) {
	_, err := s.db.Exec(`
		INSERT INTO locations (name, latitude, longitude, timezone, active)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(latitude, longitude) DO UPDATE SET
			name = excluded.name,
			timezone = excluded.timezone,
			active = excluded.active
	`, loc.Name, loc.Latitude, loc.Longitude, loc.Timezone, loc.Active)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.db.QueryRow(`SELECT id FROM locations WHERE latitude = ? AND longitude = ?`,
		loc.Latitude, loc.Longitude).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("lookup location id: %w", err)
	}
	return id, nil
}

func (s *Store) GetLocation(id int64) (*models.Location, error) {
	row := s.db.QueryRow(`SELECT id, name, latitude, longitude, timezone, active FROM locations WHERE id = ?`, id)
	var loc models.Location
	err := row.Scan(&loc.ID, &loc.Name, &loc.Latitude, &loc.Longitude, &loc.Timezone, &loc.Active)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func (s *Store) InsertSnapshot(snap models.Snapshot) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshots (location_id, fetched_at, observed_at, temp, humidity, weather_code, is_day, quality_flags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, snap.LocationID, snap.FetchedAt, snap.ObservedAt, snap.Temp, snap.Humidity, snap.WeatherCode, snap.IsDay, snap.QualityFlags)
	return err
}

// LatestSnapshot returns the most recently fetched snapshot for a location,
// or nil when none has been stored yet.
func (s *Store) LatestSnapshot(locationID int64) (*models.Snapshot, error) {
	row := s.db.QueryRow(`
		SELECT id, location_id, fetched_at, observed_at, temp, humidity, weather_code, is_day, quality_flags, created_at
		FROM snapshots
		WHERE location_id = ?
		ORDER BY fetched_at DESC
		LIMIT 1
	`, locationID)

	var snap models.Snapshot
	err := row.Scan(&snap.ID, &snap.LocationID, &snap.FetchedAt, &snap.ObservedAt,
		&snap.Temp, &snap.Humidity, &snap.WeatherCode, &snap.IsDay, &snap.QualityFlags, &snap.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// ReplaceForecast swaps in a freshly fetched set of forecast days for a
// location. The dashboard only ever renders the latest fetch, so the old
// rows go.
func (s *Store) ReplaceForecast(locationID int64, days []models.ForecastDay) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM forecast_days WHERE location_id = ?`, locationID); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear forecast: %w", err)
	}

	for _, d := range days {
		_, err := tx.Exec(`
			INSERT INTO forecast_days (location_id, fetched_at, valid_date, day_index, weather_code, temp_max, temp_min)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, locationID, d.FetchedAt, d.ValidDate, d.DayIndex, d.WeatherCode, d.TempMax, d.TempMin)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert forecast day %d: %w", d.DayIndex, err)
		}
	}

	return tx.Commit()
}

// LatestForecast returns the stored forecast days in chronological order
// (day_index 0 = today).
func (s *Store) LatestForecast(locationID int64) ([]models.ForecastDay, error) {
	rows, err := s.db.Query(`
		SELECT id, location_id, fetched_at, valid_date, day_index, weather_code, temp_max, temp_min
		FROM forecast_days
		WHERE location_id = ?
		ORDER BY day_index ASC
	`, locationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.ForecastDay
	for rows.Next() {
		var d models.ForecastDay
		if err := rows.Scan(&d.ID, &d.LocationID, &d.FetchedAt, &d.ValidDate, &d.DayIndex, &d.WeatherCode, &d.TempMax, &d.TempMin); err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, rows.Err()
}
