package router

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/errs"
	"github.com/GregMSThompson/budget-planner/internal/handlers"
	"github.com/GregMSThompson/budget-planner/internal/models"
	"github.com/GregMSThompson/budget-planner/internal/response"
	"github.com/GregMSThompson/budget-planner/internal/services"
	"github.com/GregMSThompson/budget-planner/internal/store"
	"github.com/GregMSThompson/budget-planner/pkg/logger"
)

type stubTransactionService struct {
	items map[string]*models.Transaction
}

func (s *stubTransactionService) Create(_ context.Context, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	tx := &models.Transaction{ID: "tx-1", Type: *req.Type, Category: *req.Category, Amount: *req.Amount}
	s.items[tx.ID] = tx
	return tx, nil
}

func (s *stubTransactionService) List(_ context.Context) ([]*models.Transaction, error) {
	out := make([]*models.Transaction, 0, len(s.items))
	for _, tx := range s.items {
		out = append(out, tx)
	}
	return out, nil
}

func (s *stubTransactionService) Get(_ context.Context, id string) (*models.Transaction, error) {
	tx, ok := s.items[id]
	if !ok {
		return nil, errs.NewNotFoundError("Transaction not found")
	}
	return tx, nil
}

func (s *stubTransactionService) Update(ctx context.Context, id string, _ dto.UpdateTransactionRequest) (*models.Transaction, error) {
	return s.Get(ctx, id)
}

func (s *stubTransactionService) Delete(_ context.Context, id string) error {
	if _, ok := s.items[id]; !ok {
		return errs.NewNotFoundError("Transaction not found")
	}
	delete(s.items, id)
	return nil
}

type stubRecurringService struct{}

func (stubRecurringService) Create(_ context.Context, _ dto.CreateRecurringRequest) (*models.RecurringTransaction, error) {
	return &models.RecurringTransaction{ID: "rt-1", NextDate: "2024-02-01"}, nil
}

func (stubRecurringService) List(_ context.Context) ([]*models.RecurringTransaction, error) {
	return []*models.RecurringTransaction{}, nil
}

func (stubRecurringService) Get(_ context.Context, _ string) (*models.RecurringTransaction, error) {
	return nil, errs.NewNotFoundError("Recurring transaction not found")
}

func (stubRecurringService) Update(_ context.Context, _ string, _ dto.UpdateRecurringRequest) (*models.RecurringTransaction, error) {
	return nil, errs.NewNotFoundError("Recurring transaction not found")
}

func (stubRecurringService) Delete(_ context.Context, _ string) error {
	return errs.NewNotFoundError("Recurring transaction not found")
}

type stubAnalyticsService struct{}

func (stubAnalyticsService) Summary(_ context.Context) (dto.SummaryResult, error) {
	return dto.SummaryResult{Income: 2500, Expenses: 150.75, Balance: 2349.25}, nil
}

func (stubAnalyticsService) CategoryBreakdown(_ context.Context) ([]dto.CategoryBreakdownItem, error) {
	return []dto.CategoryBreakdownItem{}, nil
}

func newTestRouter(opts Options) http.Handler {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	deps := &handlers.Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		TransactionSvc:  &stubTransactionService{items: map[string]*models.Transaction{}},
		RecurringSvc:    stubRecurringService{},
		AnalyticsSvc:    stubAnalyticsService{},
	}
	return NewRouter(deps, opts)
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRootRoute(t *testing.T) {
	rr := do(t, newTestRouter(Options{}), http.MethodGet, "/api/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Budget Planner API is running!", body["message"])
}

func TestTransactionLifecycle(t *testing.T) {
	h := newTestRouter(Options{})

	rr := do(t, h, http.MethodPost, "/api/transactions",
		`{"type":"income","category":"Salary","amount":2500,"description":"","date":"2024-01-15"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/transactions/tx-1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"category":"Salary"`)

	rr = do(t, h, http.MethodDelete, "/api/transactions/tx-1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Transaction deleted successfully")

	rr = do(t, h, http.MethodGet, "/api/transactions/tx-1", "")
	require.Equal(t, http.StatusNotFound, rr.Code)
	var e response.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
	assert.Equal(t, "not_found", e.Code)
}

func TestCreateTransactionValidation(t *testing.T) {
	h := newTestRouter(Options{})

	rr := do(t, h, http.MethodPost, "/api/transactions", `{"type":"income"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, h, http.MethodPost, "/api/transactions", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid_input")
}

func TestRecurringAndAnalyticsRoutes(t *testing.T) {
	h := newTestRouter(Options{})

	rr := do(t, h, http.MethodGet, "/api/recurring/missing", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/recurring", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[]`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/analytics/summary", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"income":2500,"expenses":150.75,"balance":2349.25}`, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/analytics/categories", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := newTestRouter(Options{})

	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimitEnabled(t *testing.T) {
	h := newTestRouter(Options{RateLimitRPS: 0.001, RateLimitBurst: 1})

	first := do(t, h, http.MethodGet, "/api/", "")
	second := do(t, h, http.MethodGet, "/api/", "")

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.Contains(t, second.Body.String(), "rate_limited")
}

// Ids Firestore cannot address are rejected before the client is used, so
// the stores can be wired without one.
func TestUnaddressableIDReturnsNotFound(t *testing.T) {
	log := slog.New(logger.NewTestHandler(slog.LevelInfo))
	tstore := store.NewTransactionStore(nil)
	deps := &handlers.Deps{
		Log:             log,
		ResponseHandler: response.New(log),
		TransactionSvc:  services.NewTransactionService(tstore, nil),
		RecurringSvc:    services.NewRecurringService(store.NewRecurringStore(nil), nil),
		AnalyticsSvc:    services.NewAnalyticsService(tstore),
	}
	h := NewRouter(deps, Options{})

	tests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/api/transactions/%FF", ""},
		{http.MethodPut, "/api/transactions/%FF", `{"description":"x"}`},
		{http.MethodDelete, "/api/transactions/%FF", ""},
		{http.MethodGet, "/api/recurring/%FF", ""},
		{http.MethodPut, "/api/recurring/..", `{}`},
		{http.MethodDelete, "/api/recurring/__reserved__", ""},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body)

			require.Equal(t, http.StatusNotFound, rr.Code, rr.Body.String())
			var e response.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &e))
			assert.Equal(t, "not_found", e.Code)
		})
	}
}
