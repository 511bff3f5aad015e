package order_unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/handlers/rest/dto"
	"fleet/internal/service/assignment"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var unassignDTO dto.UnassignRequest
	err := json.NewDecoder(r.Body).Decode(&unassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	released, err := h.service.Unassign(r.Context(), unassignDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotAssigned):
			w.WriteHeader(http.StatusPreconditionFailed)
		case errors.Is(err, assignment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(released))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
