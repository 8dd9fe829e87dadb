package http

import (
	"errors"
	"net/http"

	"github.com/farrierlabs/accountd/internal/directory/service"
	"github.com/farrierlabs/accountd/pkg/dirsdk"
	"github.com/farrierlabs/accountd/pkg/slogx"
)

// writeServiceError maps service errors onto the HTTP taxonomy:
// not-found 404, not-admin 403, validation/conflict 400, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *service.ValidationError

	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		(&dirsdk.APIError{
			StatusCode: http.StatusNotFound,
			Message:    "User not found",
		}).WriteError(w)

	case errors.Is(err, service.ErrNotAdmin):
		(&dirsdk.APIError{
			StatusCode: http.StatusForbidden,
			Message:    "Access denied: admin only",
		}).WriteError(w)

	case errors.Is(err, service.ErrEmailTaken):
		(&dirsdk.APIError{
			StatusCode: http.StatusBadRequest,
			Message:    "User with this email already exists",
		}).WriteError(w)

	case errors.As(err, &verr):
		(&dirsdk.APIError{
			StatusCode: http.StatusBadRequest,
			Message:    "Invalid request",
			Details:    verr.Fields,
		}).WriteError(w)

	default:
		slogx.FromContext(r.Context()).Error("internal error", "error", err)
		(&dirsdk.APIError{
			StatusCode: http.StatusInternalServerError,
			Message:    "Internal server error",
		}).WriteError(w)
	}
}

// writeInvalidJSON rejects a request whose body failed to decode.
func writeInvalidJSON(w http.ResponseWriter) {
	(&dirsdk.APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid JSON in request body",
	}).WriteError(w)
}
