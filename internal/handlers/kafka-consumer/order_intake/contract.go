package order_intake

import (
	"context"

	"fleet/internal/entities"
	"fleet/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ProcessOrderEvent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}
