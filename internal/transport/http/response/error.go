package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hrkit/employee-service/internal/domain"
	appctx "github.com/hrkit/employee-service/internal/pkg/context"
)

// ErrorBody is the wire shape of every error response. MissingFields is only
// present on missing-field validation failures.
type ErrorBody struct {
	Message       string   `json:"message"`
	Code          string   `json:"code,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
	RequestID     string   `json:"request_id,omitempty"`
}

// WriteError converts a domain error into a consistent JSON HTTP error response.
// Non-domain errors are treated as internal errors (500) without leaking details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"
	message := "Internal error"
	var fields []string

	var de *domain.Error
	if errors.As(err, &de) {
		status = statusFromKind(de.Kind)
		code = de.Code
		message = de.Message
		fields = de.Fields
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(ErrorBody{
		Message:       message,
		Code:          code,
		MissingFields: fields,
		RequestID:     appctx.GetRequestID(r.Context()),
	})
}

// statusFromKind maps domain error kinds to HTTP status codes. Conflicts
// (duplicate email) deliberately surface as 400 to keep the public contract
// stable for existing clients.
func statusFromKind(kind domain.ErrKind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindAuth:
		return http.StatusUnauthorized
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusBadRequest
	case domain.KindInfrastructure:
		return http.StatusServiceUnavailable
	case domain.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
