package tfnsw

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication failures are reported distinctly so the API layer can
// surface them instead of a generic upstream error. They are never retried.
var (
	ErrUnauthorized = errors.New("trip planner API authentication failed, check the API key")
	ErrForbidden    = errors.New("trip planner API access forbidden, the API key may lack the required permissions")
	ErrNotFound     = errors.New("trip planner API resource not found")
)

func statusError(statusCode int) error {
	switch statusCode {
	case http.StatusOK:
		return nil
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	}

	if statusCode >= 400 {
		return fmt.Errorf("trip planner API returned status %d", statusCode)
	}

	return nil
}

func retryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}

	return false
}
