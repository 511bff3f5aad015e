package vehicle_post

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
	var vehicleCreateDTO dto.VehicleCreate
	err := json.NewDecoder(r.Body).Decode(&vehicleCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	vehicleModify := entities.VehicleModify{
		ID:        &vehicleCreateDTO.VehicleID,
		Name:      &vehicleCreateDTO.Name,
		Available: vehicleCreateDTO.Available,
	}
	if vehicleCreateDTO.VehicleType != nil {
		vehicleType := entities.VehicleType(*vehicleCreateDTO.VehicleType)
		vehicleModify.Type = &vehicleType
	}

	created, err := h.service.CreateVehicle(r.Context(), vehicleModify)
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrMissingRequiredFields),
			errors.Is(err, fleet.ErrInvalidVehicleID),
			errors.Is(err, fleet.ErrInvalidVehicleType):
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
	err = json.NewEncoder(w).Encode(dto.VehicleFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
