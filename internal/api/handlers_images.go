package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Fawkes0113/Aura-Horizontal/internal/forecast"
	"github.com/Fawkes0113/Aura-Horizontal/internal/imagegen"
)

// handleOGImage serves the Open Graph preview banner for link unfurls.
func (s *Server) handleOGImage(w http.ResponseWriter, r *http.Request) {
	if img, ok := s.ogCache.Get(); ok {
		serveOGImage(w, img)
		return
	}

	data := imagegen.OGImageData{
		Location:    s.location.Name,
		Temperature: "--",
		Condition:   "No data yet",
	}

	snap, err := s.store.LatestSnapshot(s.location.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if snap != nil {
		code := -1
		if snap.WeatherCode.Valid {
			code = int(snap.WeatherCode.Int64)
		}
		icon := forecast.ResolveIcon(code, snap.IsDay)
		data.Condition = icon.Description()
		if snap.Temp.Valid {
			// basicfont has no degree glyph, so the banner spells the unit
			data.Temperature = fmt.Sprintf("%.0fC", snap.Temp.Float64)
		}
	}

	img, err := imagegen.Render(data)
	if err != nil {
		log.Printf("og image: %v", err)
		http.Error(w, "image generation failed", http.StatusInternalServerError)
		return
	}
	s.ogCache.Set(img)
	serveOGImage(w, img)
}

func serveOGImage(w http.ResponseWriter, img []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Write(img)
}
