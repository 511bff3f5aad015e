package route_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/handlers/rest/dto"
	"fleet/internal/service/assignment"
	"fleet/internal/service/routeplanner"
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
	var routeCreateDTO dto.RouteCreate
	err := json.NewDecoder(r.Body).Decode(&routeCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	created, err := h.service.CreateOptimizedRoute(
		r.Context(),
		routeCreateDTO.DriverID,
		routeCreateDTO.VehicleID,
		routeCreateDTO.OrderIDs,
		routeCreateDTO.StartLocation,
	)
	if err != nil {
		switch {
		case errors.Is(err, routeplanner.ErrInvalidDriverID),
			errors.Is(err, routeplanner.ErrInvalidVehicleID),
			errors.Is(err, routeplanner.ErrNoOrders),
			errors.Is(err, routeplanner.ErrDuplicateOrders):
			w.WriteHeader(http.StatusBadRequest)
		// claim-ошибки приходят из общего слоя назначения
		case errors.Is(err, assignment.ErrDriverNotFound),
			errors.Is(err, assignment.ErrVehicleNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, routeplanner.ErrOrdersNotOpen),
			errors.Is(err, assignment.ErrDriverNotAvailable),
			errors.Is(err, assignment.ErrVehicleNotAvailable):
			w.WriteHeader(http.StatusPreconditionFailed)
		case errors.Is(err, routeplanner.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.RouteFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
