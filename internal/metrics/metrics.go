package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ForecastAPICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "aura_forecast_api_calls_total",
			Help: "Total Open-Meteo forecast API calls",
		},
		[]string{"endpoint", "status"},
	)

	ForecastAPILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aura_forecast_api_latency_seconds",
			Help:    "Open-Meteo API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	SnapshotsIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_snapshots_ingested_total",
			Help: "Total current-condition snapshots successfully ingested",
		},
	)

	ForecastDaysIngested = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "aura_forecast_days_ingested_total",
			Help: "Total forecast day rows successfully ingested",
		},
	)
)
