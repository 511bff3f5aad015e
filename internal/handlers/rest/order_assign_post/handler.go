package order_assign_post

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
	var assignDTO dto.AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assigned, err := h.service.Assign(r.Context(), assignDTO.OrderID, assignDTO.VehicleID, assignDTO.DriverID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidDriverID),
			errors.Is(err, assignment.ErrInvalidVehicleID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrOrderNotFound),
			errors.Is(err, assignment.ErrDriverNotFound),
			errors.Is(err, assignment.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOrderNotOpen),
			errors.Is(err, assignment.ErrDriverNotAvailable),
			errors.Is(err, assignment.ErrVehicleNotAvailable):
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
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(assigned))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
