// Package types holds the wire types of the POS API: request bodies, resources, list and error
// envelopes. Both the API client and the stand-in server use them.
package types

import (
	"encoding/json"
	"time"
)

// Envelope is the wrapper some API responses put around the payload.
// The client unwraps it before callers see the body.
type Envelope struct {
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
	Timestamp  time.Time       `json:"timestamp"`
}

// ListResponse is the paginated list shape returned by every list endpoint
type ListResponse[T any] struct {
	Data  []T   `json:"data"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status string `json:"status"`
}
