package owm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
)

func TestParseCoords(t *testing.T) {
	tests := []struct {
		query    string
		lat, lon float64
		ok       bool
	}{
		{"48.85,2.35", 48.85, 2.35, true},
		{" 48.85 , 2.35 ", 48.85, 2.35, true},
		{"-33.87,151.21", -33.87, 151.21, true},
		{"London", 0, 0, false},
		{"London,UK", 0, 0, false},
		{"1,2,3", 0, 0, false},
	}

	for _, tt := range tests {
		lat, lon, ok := parseCoords(tt.query)
		if ok != tt.ok {
			t.Errorf("parseCoords(%q) ok = %v, want %v", tt.query, ok, tt.ok)
			continue
		}
		if ok && (lat != tt.lat || lon != tt.lon) {
			t.Errorf("parseCoords(%q) = (%v, %v), want (%v, %v)", tt.query, lat, lon, tt.lat, tt.lon)
		}
	}
}

func testClient(srv *httptest.Server) *Client {
	c := NewClient(srv.Client(), "test-key", 1)
	c.geoURL = srv.URL + "/geo"
	c.weatherURL = srv.URL + "/weather"
	c.forecastURL = srv.URL + "/forecast"
	return c
}

func TestClientFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "Paris" {
			t.Errorf("unexpected geocode query %q", got)
		}
		w.Write([]byte(`[{"name":"Paris","lat":48.85,"lon":2.35,"country":"FR"}]`))
	})
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("units"); got != "metric" {
			t.Errorf("unexpected units %q", got)
		}
		w.Write([]byte(`{
			"dt": 1709550000,
			"main": {"temp": 11.5, "feels_like": 10.2, "humidity": 70, "pressure": 1014},
			"wind": {"speed": 4.1, "deg": 220},
			"clouds": {"all": 40},
			"weather": [{"description": "scattered clouds", "icon": "03d"}],
			"visibility": 10000,
			"sys": {"sunrise": 1709530000, "sunset": 1709570000}
		}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": [
			{"dt": 1709553600, "main": {"temp": 12, "humidity": 65}, "weather": [{"description": "light rain", "icon": "10d"}], "wind": {"speed": 3.2}, "clouds": {"all": 75}},
			{"dt": 1709564400, "main": {"temp": 13, "humidity": 60}, "weather": [], "wind": {"speed": 2.8}, "clouds": {"all": 20}}
		]}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := testClient(srv).Fetch(context.Background(), "Paris", forecast.UnitsMetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Place == nil || res.Place.Name != "Paris" || res.Place.Country != "FR" {
		t.Errorf("unexpected place %+v", res.Place)
	}
	if res.Current == nil || res.Current.Temperature != 11.5 || res.Current.Icon != "03d" {
		t.Errorf("unexpected current conditions %+v", res.Current)
	}
	if len(res.Samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(res.Samples))
	}
	if res.Samples[0].Timestamp != 1709553600 || res.Samples[0].Icon != "10d" {
		t.Errorf("unexpected first sample %+v", res.Samples[0])
	}
	if res.Samples[1].Description != "" {
		t.Errorf("expected empty description for sample without weather array, got %q", res.Samples[1].Description)
	}
}

func TestClientFetchCoordinatesSkipGeocoding(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		t.Error("geocoding must not be called for a coordinate query")
	})
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("lat"); got != "48.85" {
			t.Errorf("unexpected lat %q", got)
		}
		w.Write([]byte(`{"dt": 1709550000, "main": {"temp": 9}}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": []}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := testClient(srv).Fetch(context.Background(), "48.85,2.35", forecast.UnitsMetric)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Place == nil || res.Place.Lat != 48.85 {
		t.Errorf("expected a coordinate-only place, got %+v", res.Place)
	}
	if res.Current == nil || res.Current.Temperature != 9 {
		t.Errorf("unexpected current conditions %+v", res.Current)
	}
}

func TestClientFetchNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/geo", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	res, err := testClient(srv).Fetch(context.Background(), "Atlantis", forecast.UnitsMetric)
	if err != nil {
		t.Fatalf("expected no error for an empty geocode result, got %v", err)
	}
	if res.Current != nil || res.Place != nil || len(res.Samples) != 0 {
		t.Errorf("expected an empty result, got %+v", res)
	}
}

func TestClientSurfacesAPIError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := testClient(srv).Fetch(context.Background(), "48.85,2.35", forecast.UnitsMetric)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected an APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Message != "Invalid API key" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
	if apiErr.Temporary() {
		t.Error("a 401 must not be treated as retryable")
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	failures := 1
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		if failures > 0 {
			failures--
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"message": "try later"}`))
			return
		}
		w.Write([]byte(`{"dt": 1709550000, "main": {"temp": 9}}`))
	})
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": []}`))
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(srv)
	c.backoff.InitialInterval = 5 * time.Millisecond

	res, err := c.Fetch(context.Background(), "48.85,2.35", forecast.UnitsMetric)
	if err != nil {
		t.Fatalf("expected the retry to succeed, got %v", err)
	}
	if res.Current == nil || res.Current.Temperature != 9 {
		t.Errorf("unexpected current conditions %+v", res.Current)
	}
}
