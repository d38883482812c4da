package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/GregMSThompson/budget-planner/internal/errs"
)

// maxBodyBytes bounds request bodies; records are a handful of short fields.
const maxBodyBytes = 1 << 20

// decodeJSON reads the request body into dst. Malformed bodies become
// validation errors so they answer 400 rather than 500.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errs.NewValidationError("request body is required")
		}
		return errs.NewValidationError("invalid request body: " + err.Error())
	}
	return nil
}
