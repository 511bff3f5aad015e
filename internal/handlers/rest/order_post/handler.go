package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fleet/internal/entities"
	"fleet/internal/handlers/rest/dto"
	"fleet/internal/service/order"
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
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	serviceType := entities.OrderServiceType(orderCreateDTO.ServiceType)
	orderModify := entities.OrderModify{
		ID:          &orderCreateDTO.OrderID,
		Type:        &serviceType,
		Packages:    &orderCreateDTO.Packages,
		TotalAmount: orderCreateDTO.TotalAmount,
		Location:    &orderCreateDTO.Location,
	}
	if orderCreateDTO.Status != nil {
		status := entities.OrderStatusType(*orderCreateDTO.Status)
		orderModify.Status = &status
	}
	if orderCreateDTO.Priority != nil {
		priority := entities.OrderPriorityType(*orderCreateDTO.Priority)
		orderModify.Priority = &priority
	}

	created, err := h.service.Create(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrInvalidCreateStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrOrderAlreadyExists),
			errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(dto.OrderFromEntity(created))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
