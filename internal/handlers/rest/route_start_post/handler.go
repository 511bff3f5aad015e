package route_start_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	started, err := h.service.Start(r.Context(), routeID)
	if err != nil {
		switch {
		case errors.Is(err, routelifecycle.ErrInvalidRouteID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, routelifecycle.ErrRouteNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, routelifecycle.ErrRouteNotPlanned):
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
	err = json.NewEncoder(w).Encode(dto.RouteFromEntity(started))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
