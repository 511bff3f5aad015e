//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"fleet/internal/entities"
)

type DriverRepository interface {
	Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error)
	GetByID(ctx context.Context, driverID string) (*entities.Driver, error)
	GetAll(ctx context.Context) ([]entities.Driver, error)
	GetByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error)

	// SetStatus ставит статус безусловно, проверки делает сервис.
	SetStatus(ctx context.Context, driverID string, status entities.DriverStatusType) (*entities.Driver, error)

	// ReleaseIfIdle возвращает busy-водителя в available, если за ним
	// не осталось активных заказов. Возвращает true, если статус сменился.
	ReleaseIfIdle(ctx context.Context, driverID string) (bool, error)

	// ReleaseIdleBusy массовая версия ReleaseIfIdle для фоновой сверки.
	ReleaseIdleBusy(ctx context.Context) (int64, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
	Update(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error)
	GetByID(ctx context.Context, vehicleID string) (*entities.Vehicle, error)
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	GetAvailable(ctx context.Context) ([]entities.Vehicle, error)

	SetAvailability(ctx context.Context, vehicleID string, available bool) (*entities.Vehicle, error)
	ReleaseIfIdle(ctx context.Context, vehicleID string) (bool, error)
	ReleaseIdleUnavailable(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	// ListActiveByDriver отдаёт заказы водителя в статусах assigned/in-transit.
	ListActiveByDriver(ctx context.Context, driverID string) ([]entities.Order, error)

	// Release возвращает заказ в open и срезает все поля назначения.
	Release(ctx context.Context, orderID string) (*entities.Order, error)
	AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
