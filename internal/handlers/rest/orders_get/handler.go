package orders_get

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		// без фильтра отдаём диспетчерскую выборку
		status = entities.OrderOpen.String()
	}

	orderEntities, err := h.service.GetByStatus(r.Context(), entities.OrderStatusType(status))
	if err != nil {
		switch {
		case errors.Is(err, order.ErrUnknownStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(dto.OrdersFromEntities(orderEntities))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
