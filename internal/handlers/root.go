package handlers

import (
	"net/http"

	"github.com/GregMSThompson/budget-planner/internal/dto"
	"github.com/GregMSThompson/budget-planner/internal/response"
)

type rootHandlers struct {
	ResponseHandler response.ResponseHandler
}

func NewRootHandlers(deps *Deps) *rootHandlers {
	return &rootHandlers{ResponseHandler: deps.ResponseHandler}
}

func (h *rootHandlers) Root(w http.ResponseWriter, r *http.Request) {
	h.ResponseHandler.WriteSuccess(w, r, http.StatusOK, dto.MessageResponse{Message: "Budget Planner API is running!"})
}
