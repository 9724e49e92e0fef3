package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Fawkes0113/Aura-Horizontal/internal/forecast"
)

func (s *Server) handleAPICurrent(w http.ResponseWriter, r *http.Request) {
	snap, err := s.store.LatestSnapshot(s.location.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if snap == nil {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	code := -1
	if snap.WeatherCode.Valid {
		code = int(snap.WeatherCode.Int64)
	}
	icon := forecast.ResolveIcon(code, snap.IsDay)

	resp := CurrentJSON{
		Location:     s.location.Name,
		IsDay:        snap.IsDay,
		Icon:         string(icon),
		Condition:    icon.Description(),
		ObservedAt:   snap.ObservedAt,
		QualityFlags: snap.QualityFlags,
	}
	if snap.Temp.Valid {
		resp.Temperature = &snap.Temp.Float64
	}
	if snap.Humidity.Valid {
		resp.Humidity = &snap.Humidity.Int64
	}
	if snap.WeatherCode.Valid {
		resp.WeatherCode = &snap.WeatherCode.Int64
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleAPIForecast(w http.ResponseWriter, r *http.Request) {
	days, err := s.store.LatestForecast(s.location.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if len(days) == 0 {
		http.Error(w, "no data yet", http.StatusServiceUnavailable)
		return
	}

	rows, err := buildRowsFromDays(days)
	if err != nil {
		log.Printf("api: build rows: %v", err)
		http.Error(w, "stored forecast is malformed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ForecastJSON{Location: s.location.Name, Days: rows})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := HealthStatus{Status: "ok", Location: s.location.Name}

	snap, err := s.store.LatestSnapshot(s.location.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "error": err.Error()})
		return
	}
	if snap == nil {
		health.Status = "no_data"
	} else {
		health.LastFetched = &snap.FetchedAt
		if time.Since(snap.FetchedAt) > staleThreshold {
			health.Status = "stale"
		}
	}

	if runs, err := s.store.RecentIngestRuns(1); err == nil && len(runs) > 0 {
		info := &IngestInfo{Source: runs[0].Source, Success: runs[0].Success}
		if runs[0].ErrorMessage.Valid {
			info.Error = runs[0].ErrorMessage.String
		}
		health.LastIngest = info
	}

	json.NewEncoder(w).Encode(health)
}
