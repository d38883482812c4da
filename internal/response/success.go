package response

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

// WriteSuccess encodes data as the bare JSON body; clients read the record
// or list directly, without an envelope.
func (h *responseHandler) WriteSuccess(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// headers are gone; all that is left is to log
		logger.FromContext(r.Context()).Error("failed to encode success response", "error", err, "status", status)
	}
}
