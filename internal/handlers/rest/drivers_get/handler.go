package drivers_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
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
	var (
		drivers []entities.Driver
		err     error
	)

	status := r.URL.Query().Get("status")
	if status == "" {
		drivers, err = h.service.GetAllDrivers(r.Context())
	} else {
		drivers, err = h.service.GetDriversByStatus(r.Context(), entities.DriverStatusType(status))
	}
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.DriversFromEntities(drivers))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
