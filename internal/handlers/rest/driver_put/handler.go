package driver_put

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
	driverID := mux.Vars(r)["id"]

	var driverUpdateDTO dto.DriverUpdate
	err := json.NewDecoder(r.Body).Decode(&driverUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var updated *entities.Driver

	// контактные поля и статус живут в разных операциях:
	// статус тянет за собой каскад снятия заказов
	if driverUpdateDTO.Name != nil || driverUpdateDTO.Phone != nil {
		driverModify := entities.DriverModify{
			ID:    &driverID,
			Name:  driverUpdateDTO.Name,
			Phone: driverUpdateDTO.Phone,
		}

		updated, err = h.service.UpdateDriver(r.Context(), driverModify)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if driverUpdateDTO.Status != nil {
		updated, err = h.service.SetDriverStatus(r.Context(), driverID, entities.DriverStatusType(*driverUpdateDTO.Status))
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
	err = json.NewEncoder(w).Encode(dto.DriverFromEntity(updated))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, fleet.ErrInvalidDriverID),
		errors.Is(err, fleet.ErrInvalidName),
		errors.Is(err, fleet.ErrInvalidStatus),
		errors.Is(err, fleet.ErrBusyIsDerived),
		errors.Is(err, fleet.ErrMissingRequiredFields):
		w.WriteHeader(http.StatusBadRequest)
	case errors.Is(err, fleet.ErrDriverNotFound):
		w.WriteHeader(http.StatusNotFound)
	case errors.Is(err, fleet.ErrDriverHasAssignedOrders):
		w.WriteHeader(http.StatusPreconditionFailed)
	case errors.Is(err, fleet.ErrConflict):
		w.WriteHeader(http.StatusConflict)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}
