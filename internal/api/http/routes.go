package httpapi

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Harsh-GitHup/go-weather-app/internal/forecast"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, presenter *forecast.Presenter, defaultUnits forecast.Units) {
	api := app.Group("/api")

	api.Get("/weather", func(c *fiber.Ctx) error {
		req, err := parseWeatherQuery(c)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		units := forecast.ParseUnits(req.Units, defaultUnits)
		state := presenter.Search(c.UserContext(), req.searchQuery(), units)

		switch {
		case state.Message == forecast.NoDataMessage:
			return c.Status(fiber.StatusNotFound).JSON(state)
		case state.Message != "":
			return c.Status(fiber.StatusBadGateway).JSON(state)
		default:
			return c.JSON(state)
		}
	})
}

// weatherQuery holds the query parameters of a weather search. Coordinates
// take precedence over the free-form place query.
type weatherQuery struct {
	Q     string `validate:"omitempty,max=100"`
	Units string

	lat, lon *float64
}

func parseWeatherQuery(c *fiber.Ctx) (weatherQuery, error) {
	var q weatherQuery

	q.Q = strings.TrimSpace(c.Query("q"))
	q.Units = c.Query("units")

	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr != "" || lonStr != "" {
		if latStr == "" || lonStr == "" {
			return q, errors.New("lat and lon must be provided together")
		}
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lon, errLon := strconv.ParseFloat(lonStr, 64)
		if errLat != nil || errLon != nil {
			return q, errors.New("lat/lon must be numbers")
		}
		q.lat, q.lon = &lat, &lon
	} else if q.Q == "" {
		return q, errors.New("provide either (lat & lon) or q=<city>")
	}

	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// searchQuery renders the request as the fetch query string: either the
// place query or a "lat,lon" pair.
func (q weatherQuery) searchQuery() string {
	if q.lat != nil && q.lon != nil {
		return strconv.FormatFloat(*q.lat, 'f', -1, 64) + "," + strconv.FormatFloat(*q.lon, 'f', -1, 64)
	}
	return q.Q
}
