package forecast

import "strings"

// Units selects the measurement system requested from the upstream provider.
type Units string

const (
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
	UnitsStandard Units = "standard"
)

// ParseUnits normalizes a raw units value. Anything unrecognized falls back
// to def, mirroring the upstream API's behaviour for bad `units` parameters.
func ParseUnits(raw string, def Units) Units {
	switch Units(strings.ToLower(strings.TrimSpace(raw))) {
	case UnitsMetric:
		return UnitsMetric
	case UnitsImperial:
		return UnitsImperial
	case UnitsStandard:
		return UnitsStandard
	default:
		return def
	}
}

// TempLabel returns the display label for temperatures in this unit system.
func (u Units) TempLabel() string {
	switch u {
	case UnitsMetric:
		return "°C"
	case UnitsImperial:
		return "°F"
	default:
		return "K"
	}
}

// WindLabel returns the display label for wind speeds in this unit system.
func (u Units) WindLabel() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}

// Sample is one timestamped forecast reading from the upstream sequence.
// Timestamps are Unix seconds in UTC and arrive non-decreasing; the grid
// builder relies on that ordering and never sorts.
type Sample struct {
	Timestamp   int64   `json:"dt"`
	Temperature float64 `json:"temp"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Cloudiness  float64 `json:"cloudiness"`
}

// CurrentConditions holds the current-weather block of a search result.
type CurrentConditions struct {
	Timestamp   int64   `json:"dt"`
	Temperature float64 `json:"temp"`
	FeelsLike   float64 `json:"feelsLike"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	WindSpeed   float64 `json:"windSpeed"`
	WindDeg     int     `json:"windDeg"`
	Cloudiness  float64 `json:"cloudiness"`
	Visibility  int     `json:"visibility"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

// Place identifies the resolved location of a search.
type Place struct {
	Name    string  `json:"name"`
	State   string  `json:"state,omitempty"`
	Country string  `json:"country,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// UnknownPlaceName is the placeholder shown when a place has no name parts.
const UnknownPlaceName = "Unknown location"

// DisplayName joins the non-empty name parts with commas. A nil or fully
// empty place renders as a placeholder instead of an empty string.
func (p *Place) DisplayName() string {
	if p == nil {
		return UnknownPlaceName
	}
	parts := make([]string, 0, 3)
	for _, part := range []string{p.Name, p.State, p.Country} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return UnknownPlaceName
	}
	return strings.Join(parts, ", ")
}

const iconBaseURL = "https://openweathermap.org/img/wn/"

// IconURL builds the fully-qualified icon URL for an upstream icon code.
// An empty code yields an empty URL.
func IconURL(code string) string {
	if code == "" {
		return ""
	}
	return iconBaseURL + code + "@2x.png"
}
