//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assign_post_test
package order_assign_post

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
	Assign(ctx context.Context, orderID, vehicleID, driverID string) (*entities.Order, error)
}
