// Package response defines the error body shared by all endpoints.
// Successful responses are plain DTOs written by the handlers; only error
// responses share a common envelope.
package response

// ErrorResponse is the structured body returned for every business error.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`

	// TrackingID correlates an uncaught 500 with its server-side log line.
	TrackingID string `json:"trackingId,omitempty"`
}
