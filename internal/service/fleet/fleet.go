package fleet

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/entities"
	"fleet/internal/repository"
)

// Registry владеет водителями и машинами.
//
// available/busy у водителя и available у машины — производные от множества
// назначенных заказов. Вручную водителя можно только увести в offline
// (с каскадным снятием его заказов) или вернуть в available, когда заказов
// не осталось.
type Registry struct {
	drivers   DriverRepository
	vehicles  VehicleRepository
	orders    OrderRepository
	txManager TxManager
}

func New(drivers DriverRepository, vehicles VehicleRepository, orders OrderRepository, txManager TxManager) *Registry {
	return &Registry{
		drivers:   drivers,
		vehicles:  vehicles,
		orders:    orders,
		txManager: txManager,
	}
}

func (s *Registry) CreateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || driverModify.Name == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}

	if driverModify.Status == nil {
		status := entities.DefaultDriverStatus
		driverModify.Status = &status
	}
	if !driverModify.Status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *driverModify.Status)
	}

	driver, err := s.drivers.Create(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return driver, nil
}

// UpdateDriver меняет контактные поля. Статус идёт через SetDriverStatus.
func (s *Registry) UpdateDriver(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	if driverModify.ID == nil || !isValidID(*driverModify.ID) {
		return nil, ErrInvalidDriverID
	}
	if driverModify.Name == nil && driverModify.Phone == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if driverModify.Name != nil && !isValidName(*driverModify.Name) {
		return nil, ErrInvalidName
	}
	driverModify.Status = nil

	driver, err := s.drivers.Update(ctx, driverModify)
	if err != nil {
		return nil, fmt.Errorf("update driver: %w", err)
	}
	return driver, nil
}

func (s *Registry) GetDriver(ctx context.Context, driverID string) (*entities.Driver, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}

	driver, err := s.drivers.GetByID(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("get driver: %w", err)
	}
	return driver, nil
}

func (s *Registry) GetAllDrivers(ctx context.Context) ([]entities.Driver, error) {
	drivers, err := s.drivers.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get drivers: %w", err)
	}
	return drivers, nil
}

func (s *Registry) GetDriversByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error) {
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	drivers, err := s.drivers.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get drivers by status: %w", err)
	}
	return drivers, nil
}

// SetDriverStatus:
//   - offline: снимает все активные заказы водителя (каскад), заказы
//     возвращаются в open, машины освобождаются по правилу пустоты;
//   - available: разрешён только без активных заказов;
//   - busy: производный статус, напрямую не ставится.
func (s *Registry) SetDriverStatus(ctx context.Context, driverID string, status entities.DriverStatusType) (*entities.Driver, error) {
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}
	if status == entities.DriverBusy {
		return nil, ErrBusyIsDerived
	}

	var updated *entities.Driver
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.drivers.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}

		if status == entities.DriverOffline && len(driver.AssignedOrders) > 0 {
			if err := s.forceRelease(ctx, driver); err != nil {
				return err
			}
		}

		if status == entities.DriverAvailable && len(driver.AssignedOrders) > 0 {
			return ErrDriverHasAssignedOrders
		}

		updated, err = s.drivers.SetStatus(ctx, driverID, status)
		if err != nil {
			return fmt.Errorf("set driver status: %w", err)
		}
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return updated, nil
}

// ForceReleaseDriver снимает с водителя все активные заказы, не меняя его
// статус. Используется каскадом offline-перехода и доступен оркестраторам.
func (s *Registry) ForceReleaseDriver(ctx context.Context, driverID string) error {
	if !isValidID(driverID) {
		return ErrInvalidDriverID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		driver, err := s.drivers.GetByID(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		return s.forceRelease(ctx, driver)
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return ErrConflict
		}
		return err
	}
	return nil
}

func (s *Registry) forceRelease(ctx context.Context, driver *entities.Driver) error {
	orders, err := s.orders.ListActiveByDriver(ctx, driver.ID)
	if err != nil {
		return fmt.Errorf("list active orders: %w", err)
	}

	for _, ord := range orders {
		released, err := s.orders.Release(ctx, ord.ID)
		if err != nil {
			return fmt.Errorf("release order %s: %w", ord.ID, err)
		}

		event := entities.OrderStatusEvent{
			Status:    released.Status,
			Notes:     "Driver went offline",
			Timestamp: time.Now().UTC(),
		}
		if err := s.orders.AppendStatusHistory(ctx, released.ID, event); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		if ord.AssignedVehicle != nil {
			if _, err := s.vehicles.ReleaseIfIdle(ctx, *ord.AssignedVehicle); err != nil {
				return fmt.Errorf("release vehicle %s: %w", *ord.AssignedVehicle, err)
			}
		}
	}
	return nil
}

func (s *Registry) CreateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.ID == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidID(*vehicleModify.ID) {
		return nil, ErrInvalidVehicleID
	}

	if vehicleModify.Type == nil {
		vehicleType := entities.DefaultVehicleType
		vehicleModify.Type = &vehicleType
	}
	if !vehicleModify.Type.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVehicleType, *vehicleModify.Type)
	}

	if vehicleModify.Available == nil {
		available := true
		vehicleModify.Available = &available
	}

	vehicle, err := s.vehicles.Create(ctx, vehicleModify)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return vehicle, nil
}

// UpdateVehicle меняет описание машины. Доступность идёт через
// SetVehicleAvailability.
func (s *Registry) UpdateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicleModify.ID == nil || !isValidID(*vehicleModify.ID) {
		return nil, ErrInvalidVehicleID
	}
	if vehicleModify.Name == nil && vehicleModify.Type == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if vehicleModify.Type != nil && !vehicleModify.Type.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidVehicleType, *vehicleModify.Type)
	}
	vehicleModify.Available = nil

	vehicle, err := s.vehicles.Update(ctx, vehicleModify)
	if err != nil {
		return nil, fmt.Errorf("update vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Registry) GetVehicle(ctx context.Context, vehicleID string) (*entities.Vehicle, error) {
	if !isValidID(vehicleID) {
		return nil, ErrInvalidVehicleID
	}

	vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	return vehicle, nil
}

func (s *Registry) GetAllVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.vehicles.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get vehicles: %w", err)
	}
	return vehicles, nil
}

func (s *Registry) GetAvailableVehicles(ctx context.Context) ([]entities.Vehicle, error) {
	vehicles, err := s.vehicles.GetAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("get available vehicles: %w", err)
	}
	return vehicles, nil
}

// SetVehicleAvailability. Машину с активными заказами нельзя объявить
// доступной: сначала заказы снимаются через unassign или отмену маршрута.
func (s *Registry) SetVehicleAvailability(ctx context.Context, vehicleID string, available bool) (*entities.Vehicle, error) {
	if !isValidID(vehicleID) {
		return nil, ErrInvalidVehicleID
	}

	var updated *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := s.vehicles.GetByID(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("get vehicle: %w", err)
		}

		if available && len(vehicle.AssignedOrders) > 0 {
			return ErrVehicleHasAssignedOrders
		}

		updated, err = s.vehicles.SetAvailability(ctx, vehicleID, available)
		if err != nil {
			return fmt.Errorf("set vehicle availability: %w", err)
		}
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return updated, nil
}

// ReconcileAvailability возвращает в строй busy-водителей и занятые машины,
// за которыми не осталось активных заказов. Фоновая сверка против дрейфа
// денормализованных статусов.
func (s *Registry) ReconcileAvailability(ctx context.Context) (int64, error) {
	var total int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		drivers, err := s.drivers.ReleaseIdleBusy(ctx)
		if err != nil {
			return fmt.Errorf("release idle drivers: %w", err)
		}

		vehicles, err := s.vehicles.ReleaseIdleUnavailable(ctx)
		if err != nil {
			return fmt.Errorf("release idle vehicles: %w", err)
		}

		total = drivers + vehicles
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
