package response

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

func newTestResponseHandler() *responseHandler {
	return New(slog.New(logger.NewTestHandler(slog.LevelInfo)))
}

func TestWriteSuccessBareBody(t *testing.T) {
	h := newTestResponseHandler()
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/", nil)

	h.WriteSuccess(rr, req, http.StatusOK, map[string]string{"message": "ok"})

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["message"] != "ok" {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}

func TestHandleErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"not found", errs.NewNotFoundError("Transaction not found"), http.StatusNotFound, "not_found", "Transaction not found"},
		{"validation", errs.NewValidationError("amount is required"), http.StatusBadRequest, "invalid_input", "amount is required"},
		{"persistence", errs.NewPersistenceError("Transaction creation failed", errors.New("boom")), http.StatusBadRequest, "creation_failed", "Transaction creation failed"},
		{"database", errs.NewDatabaseError("read", "failed to list transactions", errors.New("boom")), http.StatusInternalServerError, "internal_error", "An error occurred"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal_error", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestResponseHandler()
			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			h.HandleError(rr, req, tt.err)

			if rr.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			var body ErrorResponse
			if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Code != tt.wantCode || body.Message != tt.wantMsg {
				t.Fatalf("body = %+v, want code=%s message=%s", body, tt.wantCode, tt.wantMsg)
			}
		})
	}
}
