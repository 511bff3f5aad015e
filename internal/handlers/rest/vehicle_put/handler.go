package vehicle_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	vehicleID := mux.Vars(r)["id"]

	var vehicleUpdateDTO dto.VehicleUpdate
	err := json.NewDecoder(r.Body).Decode(&vehicleUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updated *entities.Vehicle

	// описание и доступность живут в разных операциях:
	// доступность проверяет активные заказы
	if vehicleUpdateDTO.Name != nil || vehicleUpdateDTO.VehicleType != nil {
		vehicleModify := entities.VehicleModify{
			ID:   &vehicleID,
			Name: vehicleUpdateDTO.Name,
		}
		if vehicleUpdateDTO.VehicleType != nil {
			vehicleType := entities.VehicleType(*vehicleUpdateDTO.VehicleType)
			vehicleModify.Type = &vehicleType
		}

		updated, err = h.service.UpdateVehicle(r.Context(), vehicleModify)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if vehicleUpdateDTO.Available != nil {
		updated, err = h.service.SetVehicleAvailability(r.Context(), vehicleID, *vehicleUpdateDTO.Available)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if updated == nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.VehicleFromEntity(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fleet.ErrInvalidVehicleID),
		errors.Is(err, fleet.ErrInvalidVehicleType),
		errors.Is(err, fleet.ErrMissingRequiredFields):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, fleet.ErrVehicleNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, fleet.ErrVehicleHasAssignedOrders):
		w.WriteHeader(http.StatusPreconditionFailed)
	case errors.Is(err, fleet.ErrConflict):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
