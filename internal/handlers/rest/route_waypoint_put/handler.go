package route_waypoint_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"fleet/internal/entities"
	"fleet/internal/handlers/rest/dto"
	"fleet/internal/service/routelifecycle"
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
	routeID := mux.Vars(r)["id"]
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var waypointUpdateDTO dto.WaypointUpdate
	err = json.NewDecoder(r.Body).Decode(&waypointUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	update := entities.WaypointUpdate{
		Completed:     waypointUpdateDTO.Completed,
		ActualArrival: waypointUpdateDTO.ActualArrival,
		Notes:         waypointUpdateDTO.Notes,
	}

	waypoint, err := h.service.UpdateWaypoint(r.Context(), routeID, index, update)
	if err != nil {
		switch {
		case errors.Is(err, routelifecycle.ErrInvalidRouteID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, routelifecycle.ErrRouteNotFound),
			errors.Is(err, routelifecycle.ErrWaypointNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, routelifecycle.ErrRouteNotActive):
			w.WriteHeader(http.StatusPreconditionFailed)
		case errors.Is(err, routelifecycle.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.WaypointFromEntity(waypoint))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
