//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routelifecycle_test
package routelifecycle

import (
	"context"
	"time"

	"fleet/internal/entities"
)

type RouteRepository interface {
	GetByID(ctx context.Context, routeID string) (*entities.Route, error)

	// Start условно переводит planned-маршрут в in-progress.
	Start(ctx context.Context, routeID string, at time.Time) (*entities.Route, error)

	// Complete условно закрывает in-progress-маршрут.
	Complete(ctx context.Context, routeID string, at time.Time, durationMinutes *int, notes string) (*entities.Route, error)

	// Cancel условно отменяет активный маршрут.
	Cancel(ctx context.Context, routeID string, notes string) (*entities.Route, error)

	UpdateWaypoint(ctx context.Context, routeID string, index int, update entities.WaypointUpdate) (*entities.Waypoint, error)
}

// OrderRegistry — единая точка смены статусов заказов; обе дорожки доставки
// (по waypoint'у и массовая при завершении маршрута) идут через неё.
type OrderRegistry interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	TransitionStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, notes string) (*entities.Order, error)
}

type OrderRepository interface {
	Release(ctx context.Context, orderID string) (*entities.Order, error)
	AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error
}

type DriverRepository interface {
	ReleaseIfIdle(ctx context.Context, driverID string) (bool, error)
}

type VehicleRepository interface {
	ReleaseIfIdle(ctx context.Context, vehicleID string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
