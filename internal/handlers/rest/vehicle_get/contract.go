//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_get_test
package vehicle_get

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
	GetVehicle(ctx context.Context, vehicleID string) (*entities.Vehicle, error)
}
