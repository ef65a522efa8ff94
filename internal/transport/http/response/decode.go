package response

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/hrkit/employee-service/internal/domain"
)

// DecodeJSON decodes a JSON request body into dst.
// It rejects multiple JSON values but tolerates unknown fields, since clients
// send full objects and only the recognized keys matter.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)

	if err := dec.Decode(dst); err != nil {
		// An absent body reads as {}: dst keeps its zero value and the
		// handler's own required/empty checks decide the outcome.
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidJSON(err)
	}

	// Disallow trailing data: {}{}
	if err := dec.Decode(&struct{}{}); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return domain.ErrInvalidJSON(err)
	}

	return domain.ErrInvalidJSON(errors.New("multiple JSON values"))
}
