//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=routeplanner_test
package routeplanner

import (
	"context"

	"fleet/internal/entities"
)

type RouteRepository interface {
	Create(ctx context.Context, route entities.Route) (*entities.Route, error)
}

type OrderRepository interface {
	// GetOpenByIDs отдаёт только open-заказы из списка, порядок входа сохраняется.
	GetOpenByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error)
	Claim(ctx context.Context, orderID, driverID, vehicleID string, routeID *string) (*entities.Order, error)
	AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error
}

type DriverRepository interface {
	Claim(ctx context.Context, driverID string) (*entities.Driver, error)
}

type VehicleRepository interface {
	Claim(ctx context.Context, vehicleID string) (*entities.Vehicle, error)
}

// Sequencer выбирает порядок объезда. Реализация по умолчанию — устойчивое
// разбиение EXPRESS-заказы вперёд; сюда же встаёт настоящий геометрический
// оптимизатор, контракт планировщика от этого не меняется.
type Sequencer interface {
	Sequence(orders []entities.Order) []entities.Order
}

// Estimator оценивает длительность и дистанцию маршрута по числу остановок.
type Estimator interface {
	EstimateDurationMinutes(stops int) int
	EstimateDistanceKm(stops int) float64
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
