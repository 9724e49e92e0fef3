package api

import (
	"context"
	"html/template"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fawkes0113/Aura-Horizontal/internal/imagegen"
	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
	"github.com/Fawkes0113/Aura-Horizontal/internal/store"
)

// staleThreshold is how old the latest snapshot may be before /health
// reports degraded. Comfortably above the default 10 minute poll.
const staleThreshold = 30 * time.Minute

type Server struct {
	store    *store.Store
	port     string
	location models.Location
	tmpl     *template.Template
	ogCache  *imagegen.OGImageCache
}

func NewServer(st *store.Store, port string, location models.Location) *Server {
	return &Server{
		store:    st,
		port:     port,
		location: location,
		tmpl:     newTemplates(),
		ogCache:  imagegen.NewOGImageCache(10 * time.Minute),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/og-image.png", s.handleOGImage)
	mux.HandleFunc("/api/current", s.handleAPICurrent)
	mux.HandleFunc("/api/forecast", s.handleAPIForecast)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    ":" + s.port,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}
