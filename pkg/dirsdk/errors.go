package dirsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/farrierlabs/accountd/pkg/httpx"
)

// ErrorResponse is the wire shape of every non-2xx response.
type ErrorResponse struct {
	// Error is a human-readable message.
	Error string `json:"error"`

	// Details contains field-specific validation errors when present.
	Details map[string]string `json:"details,omitempty"`
}

// APIError is a typed error used on both sides of the wire: handlers write
// it, the client parses responses back into it.
type APIError struct {
	StatusCode int               `json:"-"`
	Message    string            `json:"error"`
	Details    map[string]string `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, ErrorResponse{
		Error:   e.Message,
		Details: e.Details,
	})
}

// parseErrorResponse converts a non-2xx response body into an *APIError.
// Returns nil for success status codes.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Error,
			Details:    errResp.Details,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
