//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=route_waypoint_put_test
package route_waypoint_put

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
	UpdateWaypoint(ctx context.Context, routeID string, index int, update entities.WaypointUpdate) (*entities.Waypoint, error)
}
