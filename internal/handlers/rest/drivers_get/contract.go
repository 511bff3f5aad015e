//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=drivers_get_test
package drivers_get

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
	GetAllDrivers(ctx context.Context) ([]entities.Driver, error)
	GetDriversByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error)
}
