package order_intake

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"fleet/internal/entities"
	"fleet/internal/service/intake"
	"fleet/pkg/logger"
)

// orderEvent — сообщение витрины заказов. Для новых заказов приходит
// полный payload, для смен статуса достаточно order_id и status.
type orderEvent struct {
	OrderID     string   `json:"order_id"`
	Status      string   `json:"status"`
	ServiceType *string  `json:"service_type,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	Packages    *int     `json:"packages,omitempty"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

type Handler struct {
	intakeService            Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, intakeService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		intakeService:            intakeService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("order.intake: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("order.intake: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event orderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.intake handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.intake processing")

	order, err := h.intakeService.ProcessOrderEvent(ctx, toOrderModify(&event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.intake handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, intake.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.intake handler unknown status for order")

		case errors.Is(err, intake.ErrMissingEventFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.intake handler incomplete event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.intake handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("order.intake: processed")

	sess.MarkMessage(message, "")
	return false
}

func toOrderModify(event *orderEvent) entities.OrderModify {
	status := entities.OrderStatusType(event.Status)
	orderModify := entities.OrderModify{
		ID:          &event.OrderID,
		Status:      &status,
		Packages:    event.Packages,
		TotalAmount: event.TotalAmount,
		Location:    event.Location,
	}

	if event.ServiceType != nil {
		serviceType := entities.OrderServiceType(*event.ServiceType)
		orderModify.Type = &serviceType
	}
	if event.Priority != nil {
		priority := entities.OrderPriorityType(*event.Priority)
		orderModify.Priority = &priority
	}

	return orderModify
}
