//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_unassign_post_test
package order_unassign_post

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
	Unassign(ctx context.Context, orderID string) (*entities.Order, error)
}
