package driver_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"fleet/internal/handlers/rest/dto"
	"fleet/internal/service/fleet"
	"fleet/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID := mux.Vars(r)["id"]

	driverEntity, err := h.service.GetDriver(r.Context(), driverID)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrDriverNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fleet.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DriverFromEntity(driverEntity))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
