//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_start_post_test
package route_start_post

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
	Start(ctx context.Context, routeID string) (*entities.Route, error)
}
