package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/time/rate"

	"github.com/Fawkes0113/Aura-Horizontal/internal/forecast"
	"github.com/Fawkes0113/Aura-Horizontal/internal/httputil"
	"github.com/Fawkes0113/Aura-Horizontal/internal/metrics"
	"github.com/Fawkes0113/Aura-Horizontal/internal/models"
)

// DefaultBaseURL is the public Open-Meteo endpoint. No API key required.
const DefaultBaseURL = "https://api.open-meteo.com"

const forecastEndpoint = "v1/forecast"

// OpenMeteo fetches current conditions and the 7-day daily forecast.
type OpenMeteo struct {
	baseURL  string
	client   *http.Client
	limiter  *rate.Limiter
	lat      float64
	lon      float64
	timezone string
}

// NewOpenMeteo creates a client for a fixed coordinate pair. timezone is
// passed through to the API ("auto" lets the provider localize dates, which
// the row builder depends on).
func NewOpenMeteo(lat, lon float64, timezone string) *OpenMeteo {
	return &OpenMeteo{
		baseURL: DefaultBaseURL,
		client:  httputil.NewClient(),
		// Open-Meteo asks non-commercial users to stay well under 10k
		// calls/day; one call per 10s with a small burst is far below that.
		limiter:  rate.NewLimiter(rate.Every(10*time.Second), 2),
		lat:      lat,
		lon:      lon,
		timezone: timezone,
	}
}

// SetBaseURL overrides the API host, for tests.
func (c *OpenMeteo) SetBaseURL(u string) {
	c.baseURL = u
}

type forecastResponse struct {
	Timezone string `json:"timezone"`
	Current  struct {
		Time        string   `json:"time"`
		Temperature *float64 `json:"temperature_2m"`
		Humidity    *int     `json:"relative_humidity_2m"`
		WeatherCode *int     `json:"weather_code"`
		IsDay       int      `json:"is_day"`
	} `json:"current"`
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weather_code"`
		TempMax     []float64 `json:"temperature_2m_max"`
		TempMin     []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

// FetchResult records bookkeeping about one fetch for the ingest_runs audit.
type FetchResult struct {
	HTTPStatus   int
	ResponseSize int
	RecordCount  int
	ParseErrors  int
	ParseError   string
	Error        error
}

// Update is one complete fetch: a current-conditions snapshot plus the seven
// daily forecast rows, all from the same response.
type Update struct {
	Snapshot models.Snapshot
	Days     []models.ForecastDay
}

// Fetch retrieves and decodes a forecast. Transient upstream failures (429,
// 5xx) are retried with exponential backoff; anything else fails immediately.
// Returns the update, the raw response body, and fetch bookkeeping.
func (c *OpenMeteo) Fetch(ctx context.Context) (*Update, string, *FetchResult, error) {
	result := &FetchResult{}

	if err := c.limiter.Wait(ctx); err != nil {
		result.Error = fmt.Errorf("rate limit wait: %w", err)
		return nil, "", result, result.Error
	}

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%.4f", c.lat))
	q.Set("longitude", fmt.Sprintf("%.4f", c.lon))
	q.Set("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	q.Set("current", "temperature_2m,relative_humidity_2m,weather_code,is_day")
	q.Set("timezone", c.timezone)
	q.Set("forecast_days", fmt.Sprintf("%d", forecast.Days))
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, forecastEndpoint, q.Encode())

	start := time.Now()
	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("fetch forecast: %w", err)
		}
		defer resp.Body.Close()

		result.HTTPStatus = resp.StatusCode

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("upstream busy: status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("fetch forecast: status %d: %s", resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 2 * time.Minute
	err := backoff.Retry(operation, backoff.WithContext(bo, ctx))
	metrics.ForecastAPILatency.WithLabelValues(forecastEndpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ForecastAPICallsTotal.WithLabelValues(forecastEndpoint, "error").Inc()
		result.Error = err
		return nil, "", result, err
	}
	metrics.ForecastAPICallsTotal.WithLabelValues(forecastEndpoint, "ok").Inc()
	result.ResponseSize = len(body)

	var data forecastResponse
	if err := json.Unmarshal(body, &data); err != nil {
		result.Error = fmt.Errorf("unmarshal: %w", err)
		return nil, string(body), result, result.Error
	}

	update, err := buildUpdate(&data, time.Now().UTC())
	if err != nil {
		result.ParseErrors = 1
		result.ParseError = err.Error()
		result.Error = err
		return nil, string(body), result, err
	}
	result.RecordCount = 1 + len(update.Days)

	return update, string(body), result, nil
}

// buildUpdate converts a decoded response into storable models. The daily
// arrays must all carry exactly forecast.Days aligned elements; the row
// builder downstream relies on that guarantee.
func buildUpdate(data *forecastResponse, fetchedAt time.Time) (*Update, error) {
	d := data.Daily
	if len(d.Time) != forecast.Days || len(d.WeatherCode) != forecast.Days ||
		len(d.TempMax) != forecast.Days || len(d.TempMin) != forecast.Days {
		return nil, fmt.Errorf("daily arrays: want %d aligned days, got time=%d code=%d max=%d min=%d",
			forecast.Days, len(d.Time), len(d.WeatherCode), len(d.TempMax), len(d.TempMin))
	}

	snap := models.Snapshot{
		FetchedAt:  fetchedAt,
		ObservedAt: fetchedAt,
		IsDay:      data.Current.IsDay == 1,
	}
	// Open-Meteo reports the observation time localized, to the minute.
	if t, err := time.Parse("2006-01-02T15:04", data.Current.Time); err == nil {
		snap.ObservedAt = t
	}
	if data.Current.Temperature != nil {
		snap.Temp = sql.NullFloat64{Float64: *data.Current.Temperature, Valid: true}
	}
	if data.Current.Humidity != nil {
		snap.Humidity = sql.NullInt64{Int64: int64(*data.Current.Humidity), Valid: true}
	}
	if data.Current.WeatherCode != nil {
		snap.WeatherCode = sql.NullInt64{Int64: int64(*data.Current.WeatherCode), Valid: true}
	}

	days := make([]models.ForecastDay, forecast.Days)
	for i := 0; i < forecast.Days; i++ {
		if _, _, _, err := forecast.ParseISODate(d.Time[i]); err != nil {
			return nil, fmt.Errorf("daily time[%d]: %w", i, err)
		}
		days[i] = models.ForecastDay{
			FetchedAt:   fetchedAt,
			ValidDate:   d.Time[i],
			DayIndex:    i,
			WeatherCode: sql.NullInt64{Int64: int64(d.WeatherCode[i]), Valid: true},
			TempMax:     sql.NullFloat64{Float64: d.TempMax[i], Valid: true},
			TempMin:     sql.NullFloat64{Float64: d.TempMin[i], Valid: true},
		}
	}

	return &Update{Snapshot: snap, Days: days}, nil
}
