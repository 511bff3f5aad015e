//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fleet/internal/entities"
)

type OrderRepository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)

	// Claim атомарно переводит open-заказ в assigned и проставляет поля
	// назначения. Ноль затронутых строк означает, что заказ не open.
	Claim(ctx context.Context, orderID, driverID, vehicleID string, routeID *string) (*entities.Order, error)

	// Release возвращает assigned/in-transit заказ в open и срезает поля назначения.
	Release(ctx context.Context, orderID string) (*entities.Order, error)

	AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error
}

type DriverRepository interface {
	// Claim атомарно переводит available-водителя в busy.
	Claim(ctx context.Context, driverID string) (*entities.Driver, error)
	ReleaseIfIdle(ctx context.Context, driverID string) (bool, error)
}

type VehicleRepository interface {
	// Claim атомарно занимает доступную машину.
	Claim(ctx context.Context, vehicleID string) (*entities.Vehicle, error)
	ReleaseIfIdle(ctx context.Context, vehicleID string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
