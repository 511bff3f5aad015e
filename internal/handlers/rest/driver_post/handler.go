package driver_post

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var driverCreateDTO dto.DriverCreate
	err := json.NewDecoder(r.Body).Decode(&driverCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	driverModify := entities.DriverModify{
		ID:    &driverCreateDTO.DriverID,
		Name:  &driverCreateDTO.Name,
		Phone: driverCreateDTO.Phone,
	}
	if driverCreateDTO.Status != nil {
		status := entities.DriverStatusType(*driverCreateDTO.Status)
		driverModify.Status = &status
	}

	created, err := h.service.CreateDriver(r.Context(), driverModify)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrMissingRequiredFields),
			errors.Is(err, fleet.ErrInvalidDriverID),
			errors.Is(err, fleet.ErrInvalidName),
			errors.Is(err, fleet.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fleet.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.DriverFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
