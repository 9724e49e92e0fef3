package ingest

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/Fawkes0113/Aura-Horizontal/internal/metrics"
	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
	"github.com/Fawkes0113/Aura-Horizontal/internal/store"
)

// Scheduler drives the fetch-store cycle. One update at a time: the poll
// loop is a single goroutine and each tick runs to completion before the
// next is serviced.
type Scheduler struct {
	store         *store.Store
	client        *OpenMeteo
	location      models.Location
	pollInterval  time.Duration
	retentionDays int
}

func NewScheduler(st *store.Store, client *OpenMeteo, location models.Location) *Scheduler {
	return &Scheduler{
		store:         st,
		client:        client,
		location:      location,
		pollInterval:  10 * time.Minute,
		retentionDays: 14,
	}
}

// SetPollInterval overrides the default 10 minute forecast poll.
func (s *Scheduler) SetPollInterval(d time.Duration) {
	if d > 0 {
		s.pollInterval = d
	}
}

func (s *Scheduler) Run(ctx context.Context) {
	if err := s.ingestForecast(ctx); err != nil {
		log.Printf("scheduler: initial ingest: %v", err)
	}

	pollTicker := time.NewTicker(s.pollInterval)
	pruneTicker := time.NewTicker(24 * time.Hour)
	defer pollTicker.Stop()
	defer pruneTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("scheduler: shutting down")
			return
		case <-pollTicker.C:
			if err := s.ingestForecast(ctx); err != nil {
				log.Printf("scheduler: ingest: %v", err)
			}
		case <-pruneTicker.C:
			s.pruneRawPayloads()
		}
	}
}

// IngestOnce runs a single fetch-store cycle, for --once mode and tests.
func (s *Scheduler) IngestOnce(ctx context.Context) error {
	return s.ingestForecast(ctx)
}

func (s *Scheduler) ingestForecast(ctx context.Context) error {
	log.Println("scheduler: fetching forecast")
	run, err := s.store.StartIngestRun("open-meteo", forecastEndpoint, s.location.ID)
	if err != nil {
		log.Printf("scheduler: start ingest run: %v", err)
	}

	update, rawBody, fetchResult, fetchErr := s.client.Fetch(ctx)

	if run != nil {
		run.Success = fetchErr == nil
		if fetchResult != nil {
			run.HTTPStatus = sql.NullInt64{Int64: int64(fetchResult.HTTPStatus), Valid: fetchResult.HTTPStatus > 0}
			run.ResponseSizeBytes = sql.NullInt64{Int64: int64(fetchResult.ResponseSize), Valid: fetchResult.ResponseSize > 0}
			run.RecordsParsed = sql.NullInt64{Int64: int64(fetchResult.RecordCount), Valid: true}
			if fetchResult.ParseErrors > 0 {
				run.ParseErrors = sql.NullInt64{Int64: int64(fetchResult.ParseErrors), Valid: true}
				run.ErrorMessage = sql.NullString{String: fetchResult.ParseError, Valid: true}
			}
		}
		if fetchErr != nil {
			run.ErrorMessage = sql.NullString{String: fetchErr.Error(), Valid: true}
		}
	}

	if len(rawBody) > 0 && run != nil {
		if _, err := s.store.StoreRawPayload(&run.ID, "open-meteo", forecastEndpoint, s.location.ID, []byte(rawBody)); err != nil {
			log.Printf("scheduler: store raw payload: %v", err)
		}
	}

	if fetchErr != nil {
		s.completeRun(run)
		return fetchErr
	}

	var stored int64

	snap := update.Snapshot
	snap.LocationID = s.location.ID
	if flags := ValidateSnapshot(&snap); len(flags) > 0 {
		log.Printf("scheduler: snapshot quality flags: %v", flags)
		snap.QualityFlags = QualityFlagsToJSON(flags)
	}
	if err := s.store.InsertSnapshot(snap); err != nil {
		log.Printf("scheduler: insert snapshot: %v", err)
	} else {
		metrics.SnapshotsIngested.Inc()
		stored++
	}

	for i := range update.Days {
		update.Days[i].LocationID = s.location.ID
	}
	if err := s.store.ReplaceForecast(s.location.ID, update.Days); err != nil {
		log.Printf("scheduler: replace forecast: %v", err)
	} else {
		metrics.ForecastDaysIngested.Add(float64(len(update.Days)))
		stored += int64(len(update.Days))
	}

	if run != nil {
		run.RecordsStored = sql.NullInt64{Int64: stored, Valid: true}
	}
	s.completeRun(run)
	return nil
}

func (s *Scheduler) completeRun(run *store.IngestRun) {
	if run == nil {
		return
	}
	if err := s.store.CompleteIngestRun(run); err != nil {
		log.Printf("scheduler: complete ingest run: %v", err)
	}
}

func (s *Scheduler) pruneRawPayloads() {
	n, err := s.store.CleanupOldRawPayloads(s.retentionDays)
	if err != nil {
		log.Printf("scheduler: prune raw payloads: %v", err)
		return
	}
	if n > 0 {
		log.Printf("scheduler: pruned %d raw payloads", n)
	}
}
