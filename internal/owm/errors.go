package owm

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is a non-2xx answer from OpenWeatherMap, carrying the upstream
// status and message so the presentation layer can surface them verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("openweather request failed with status %d", e.Status)
}

// Temporary reports whether retrying the request may help.
func (e *APIError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// decodeAPIError drains an error response into an APIError. The body is the
// usual OpenWeatherMap error shape `{"cod": ..., "message": "..."}`; anything
// unreadable degrades to a status-only error.
func decodeAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}
