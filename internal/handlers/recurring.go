package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/response"
)

type recurringHandlers struct {
	ResponseHandler response.ResponseHandler
	RecurringSvc    RecurringService
}

func NewRecurringHandlers(deps *Deps) *recurringHandlers {
	return &recurringHandlers{
		ResponseHandler: deps.ResponseHandler,
		RecurringSvc:    deps.RecurringSvc,
	}
}

func (h *recurringHandlers) RecurringRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.CreateRecurring)
	r.Get("/", h.ListRecurring)
	r.Get("/{recurringId}", h.GetRecurring)
	r.Put("/{recurringId}", h.UpdateRecurring)
	r.Delete("/{recurringId}", h.DeleteRecurring)
	return r
}

func (h *recurringHandlers) CreateRecurring(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRecurringRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	rt, err := h.RecurringSvc.Create(r.Context(), req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rt)
}

func (h *recurringHandlers) ListRecurring(w http.ResponseWriter, r *http.Request) {
	list, err := h.RecurringSvc.List(r.Context())
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, list)
}

func (h *recurringHandlers) GetRecurring(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recurringId")
	rt, err := h.RecurringSvc.Get(r.Context(), id)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rt)
}

func (h *recurringHandlers) UpdateRecurring(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recurringId")
	var req dto.UpdateRecurringRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	rt, err := h.RecurringSvc.Update(r.Context(), id, req)
	if err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, rt)
}

func (h *recurringHandlers) DeleteRecurring(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "recurringId")
	if err := h.RecurringSvc.Delete(r.Context(), id); err != nil {
		h.ResponseHandler.HandleError(w, r, err)
		return
	}
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MessageResponse{Message: "Recurring transaction deleted successfully"})
}
