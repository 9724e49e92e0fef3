package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const sampleResponse = `{
	"timezone": "Australia/Melbourne",
	"current": {
		"time": "2024-06-10T14:30",
		"temperature_2m": 18.4,
		"relative_humidity_2m": 71,
		"weather_code": 61,
		"is_day": 1
	},
	"daily": {
		"time": ["2024-06-10","2024-06-11","2024-06-12","2024-06-13","2024-06-14","2024-06-15","2024-06-16"],
		"weather_code": [3,61,0,95,96,2,1],
		"temperature_2m_max": [20.4,18.9,25.1,19.0,17.6,21.3,22.8],
		"temperature_2m_min": [12.1,10.0,13.4,11.9,9.8,12.2,13.0]
	}
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenMeteo {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewOpenMeteo(-36.794, 146.977, "auto")
	c.SetBaseURL(srv.URL)
	return c
}

func TestFetchParsesResponse(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(sampleResponse))
	})

	update, rawBody, result, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	for _, param := range []string{"forecast_days=7", "timezone=auto", "latitude=-36.7940"} {
		if !strings.Contains(gotQuery, param) {
			t.Errorf("query %q missing %q", gotQuery, param)
		}
	}

	snap := update.Snapshot
	if !snap.Temp.Valid || snap.Temp.Float64 != 18.4 {
		t.Errorf("snapshot temp = %+v, want 18.4", snap.Temp)
	}
	if !snap.Humidity.Valid || snap.Humidity.Int64 != 71 {
		t.Errorf("snapshot humidity = %+v, want 71", snap.Humidity)
	}
	if !snap.WeatherCode.Valid || snap.WeatherCode.Int64 != 61 {
		t.Errorf("snapshot code = %+v, want 61", snap.WeatherCode)
	}
	if !snap.IsDay {
		t.Error("snapshot should be daytime")
	}
	wantObserved := time.Date(2024, 6, 10, 14, 30, 0, 0, time.UTC)
	if !snap.ObservedAt.Equal(wantObserved) {
		t.Errorf("observed at = %v, want %v", snap.ObservedAt, wantObserved)
	}

	if len(update.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(update.Days))
	}
	if update.Days[0].ValidDate != "2024-06-10" {
		t.Errorf("day 0 date = %q", update.Days[0].ValidDate)
	}
	if update.Days[3].WeatherCode.Int64 != 95 {
		t.Errorf("day 3 code = %d, want 95", update.Days[3].WeatherCode.Int64)
	}
	if update.Days[6].TempMin.Float64 != 13.0 {
		t.Errorf("day 6 min = %v, want 13.0", update.Days[6].TempMin.Float64)
	}

	if rawBody == "" {
		t.Error("expected raw body to be returned")
	}
	if result.HTTPStatus != 200 {
		t.Errorf("result status = %d", result.HTTPStatus)
	}
	if result.RecordCount != 8 {
		t.Errorf("result record count = %d, want 8 (snapshot + 7 days)", result.RecordCount)
	}
}

func TestFetchShortDailyArrays(t *testing.T) {
	short := strings.Replace(sampleResponse,
		`"weather_code": [3,61,0,95,96,2,1]`,
		`"weather_code": [3,61,0]`, 1)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(short))
	})

	_, _, result, err := c.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for misaligned daily arrays")
	}
	if result.ParseErrors == 0 {
		t.Error("expected parse error to be recorded")
	}
}

func TestFetchClientErrorIsPermanent(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "bad request", http.StatusBadRequest)
	})

	_, _, result, err := c.Fetch(context.Background())
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if calls != 1 {
		t.Errorf("4xx should not be retried, got %d calls", calls)
	}
	if result.HTTPStatus != http.StatusBadRequest {
		t.Errorf("result status = %d", result.HTTPStatus)
	}
}

func TestFetchRetriesServerError(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			http.Error(w, "flaky", http.StatusBadGateway)
			return
		}
		w.Write([]byte(sampleResponse))
	})

	update, _, _, err := c.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch after retry: %v", err)
	}
	if calls < 2 {
		t.Errorf("expected a retry after 502, got %d calls", calls)
	}
	if len(update.Days) != 7 {
		t.Errorf("expected 7 days after retry, got %d", len(update.Days))
	}
}
