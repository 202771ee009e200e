package owm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
)

const (
	defaultGeoURL      = "https://api.openweathermap.org/geo/1.0/direct"
	defaultWeatherURL  = "https://api.openweathermap.org/data/2.5/weather"
	defaultForecastURL = "https://api.openweathermap.org/data/2.5/forecast"
)

// Client talks to the OpenWeatherMap geocoding, current-weather and
// 5-day/3-hour forecast endpoints. It implements forecast.Fetcher.
type Client struct {
	apiKey   string
	geoLimit int

	geoURL      string
	weatherURL  string
	forecastURL string

	httpClient *http.Client
	backoff    BackoffConfig
	circuit    *gobreaker.CircuitBreaker
}

var _ forecast.Fetcher = (*Client)(nil)

// NewClient builds a client sharing the given HTTP client. geoLimit bounds
// the number of geocoding hits requested; values below 1 mean 1.
func NewClient(httpClient *http.Client, apiKey string, geoLimit int) *Client {
	if geoLimit < 1 {
		geoLimit = 1
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:      apiKey,
		geoLimit:    geoLimit,
		geoURL:      defaultGeoURL,
		weatherURL:  defaultWeatherURL,
		forecastURL: defaultForecastURL,
		httpClient:  httpClient,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 400 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
	}
}

// Fetch resolves the query to coordinates, then loads current conditions and
// the forecast sample sequence. A query with no geocoding hits yields an
// empty result and no error; the caller presents that as "not found". The
// query may also be a raw "lat,lon" pair, which skips geocoding.
func (c *Client) Fetch(ctx context.Context, query string, units forecast.Units) (forecast.FetchResult, error) {
	var place *forecast.Place

	lat, lon, ok := parseCoords(query)
	if ok {
		place = &forecast.Place{Lat: lat, Lon: lon}
	} else {
		var err error
		place, err = c.Geocode(ctx, query)
		if err != nil {
			return forecast.FetchResult{}, err
		}
		if place == nil {
			return forecast.FetchResult{}, nil
		}
		lat, lon = place.Lat, place.Lon
	}

	current, err := c.Current(ctx, lat, lon, units)
	if err != nil {
		return forecast.FetchResult{}, err
	}

	samples, err := c.Forecast(ctx, lat, lon, units)
	if err != nil {
		return forecast.FetchResult{}, err
	}

	return forecast.FetchResult{
		Current: current,
		Samples: samples,
		Place:   place,
	}, nil
}

// Geocode resolves a free-form place query to its first geocoding hit, or
// nil when there is none.
func (c *Client) Geocode(ctx context.Context, query string) (*forecast.Place, error) {
	values := url.Values{}
	values.Set("q", query)
	values.Set("limit", strconv.Itoa(c.geoLimit))
	values.Set("appid", c.apiKey)

	var hits []struct {
		Name    string  `json:"name"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
		Country string  `json:"country"`
		State   string  `json:"state"`
	}
	if err := c.getJSON(ctx, c.geoURL, values, &hits); err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, nil
	}

	hit := hits[0]
	return &forecast.Place{
		Name:    hit.Name,
		State:   hit.State,
		Country: hit.Country,
		Lat:     hit.Lat,
		Lon:     hit.Lon,
	}, nil
}

// Current loads the current-weather block for the coordinates.
func (c *Client) Current(ctx context.Context, lat, lon float64, units forecast.Units) (*forecast.CurrentConditions, error) {
	var payload struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp      float64 `json:"temp"`
			FeelsLike float64 `json:"feels_like"`
			Humidity  float64 `json:"humidity"`
			Pressure  float64 `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
			Deg   int     `json:"deg"`
		} `json:"wind"`
		Clouds struct {
			All float64 `json:"all"`
		} `json:"clouds"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Visibility int `json:"visibility"`
		Sys        struct {
			Sunrise int64 `json:"sunrise"`
			Sunset  int64 `json:"sunset"`
		} `json:"sys"`
	}
	if err := c.getJSON(ctx, c.weatherURL, c.coordValues(lat, lon, units), &payload); err != nil {
		return nil, err
	}

	current := &forecast.CurrentConditions{
		Timestamp:   payload.Dt,
		Temperature: payload.Main.Temp,
		FeelsLike:   payload.Main.FeelsLike,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed,
		WindDeg:     payload.Wind.Deg,
		Cloudiness:  payload.Clouds.All,
		Visibility:  payload.Visibility,
		Sunrise:     payload.Sys.Sunrise,
		Sunset:      payload.Sys.Sunset,
	}
	if len(payload.Weather) > 0 {
		current.Description = payload.Weather[0].Description
		current.Icon = payload.Weather[0].Icon
	}
	return current, nil
}

// Forecast loads the 5-day/3-hour forecast list for the coordinates as a
// flat, chronologically ordered sample sequence.
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units forecast.Units) ([]forecast.Sample, error) {
	var payload struct {
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				Humidity float64 `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
				Icon        string `json:"icon"`
			} `json:"weather"`
			Wind struct {
				Speed float64 `json:"speed"`
			} `json:"wind"`
			Clouds struct {
				All float64 `json:"all"`
			} `json:"clouds"`
		} `json:"list"`
	}
	if err := c.getJSON(ctx, c.forecastURL, c.coordValues(lat, lon, units), &payload); err != nil {
		return nil, err
	}

	samples := make([]forecast.Sample, 0, len(payload.List))
	for _, item := range payload.List {
		s := forecast.Sample{
			Timestamp:   item.Dt,
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			Cloudiness:  item.Clouds.All,
		}
		if len(item.Weather) > 0 {
			s.Description = item.Weather[0].Description
			s.Icon = item.Weather[0].Icon
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func (c *Client) coordValues(lat, lon float64, units forecast.Units) url.Values {
	values := url.Values{}
	values.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	values.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	values.Set("units", string(units))
	values.Set("appid", c.apiKey)
	return values
}

func (c *Client) getJSON(ctx context.Context, rawURL string, values url.Values, out interface{}) error {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, rawURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequestWithResilience(c.httpClient, c.backoff, c.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}

// parseCoords recognizes a raw "lat,lon" query form.
func parseCoords(query string) (lat, lon float64, ok bool) {
	parts := strings.Split(query, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if errLat != nil || errLon != nil {
		return 0, 0, false
	}
	return lat, lon, true
}
