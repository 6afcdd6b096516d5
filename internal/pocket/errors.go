package pocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// FieldError is a per-field error as returned in the store's error body.
type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is any failure reported by the record store. When the response
// carries a structured error body its message and per-field data are
// surfaced verbatim, otherwise a generic message is used.
type APIError struct {
	Status  int
	Message string
	Data    map[string]FieldError
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record store: %s (status %d)", e.Message, e.Status)
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{Status: status}

	var payload struct {
		Code    int                   `json:"code"`
		Message string                `json:"message"`
		Data    map[string]FieldError `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
		if len(payload.Data) > 0 {
			apiErr.Data = payload.Data
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = "something went wrong while processing the request"
	}

	return apiErr
}

// IsNotFound reports whether err is a store response that means "no such
// record". The store answers 404 for unknown ids and 400 for lookups on
// collections the caller cannot see, so both count.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status == http.StatusNotFound || apiErr.Status == http.StatusBadRequest
	}
	return false
}
