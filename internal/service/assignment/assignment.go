package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleet/internal/entities"
	"fleet/internal/repository"
	orderservice "fleet/internal/service/order"
)

// Coordinator связывает один заказ с парой водитель+машина и развязывает
// обратно. Все три агрегата меняются в одной Serializable-транзакции через
// условные claim'ы, так что из двух конкурентных Assign на одного водителя
// проходит ровно один.
type Coordinator struct {
	orders    OrderRepository
	drivers   DriverRepository
	vehicles  VehicleRepository
	txManager TxManager
}

func New(orders OrderRepository, drivers DriverRepository, vehicles VehicleRepository, txManager TxManager) *Coordinator {
	return &Coordinator{
		orders:    orders,
		drivers:   drivers,
		vehicles:  vehicles,
		txManager: txManager,
	}
}

func (s *Coordinator) Assign(ctx context.Context, orderID, vehicleID, driverID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(driverID) {
		return nil, ErrInvalidDriverID
	}
	if !isValidID(vehicleID) {
		return nil, ErrInvalidVehicleID
	}

	var assigned *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.drivers.Claim(ctx, driverID); err != nil {
			return fmt.Errorf("claim driver: %w", err)
		}

		if _, err := s.vehicles.Claim(ctx, vehicleID); err != nil {
			return fmt.Errorf("claim vehicle: %w", err)
		}

		order, err := s.orders.Claim(ctx, orderID, driverID, vehicleID, nil)
		if err != nil {
			return fmt.Errorf("claim order: %w", err)
		}

		event := entities.OrderStatusEvent{
			Status:    order.Status,
			Notes:     fmt.Sprintf("Assigned to driver %s, vehicle %s", driverID, vehicleID),
			Timestamp: time.Now().UTC(),
		}
		if err := s.orders.AppendStatusHistory(ctx, order.ID, event); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		assigned = order
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return assigned, nil
}

// Unassign возвращает заказ в open. Водитель становится available, а машина
// доступной, только если за ними не осталось других активных заказов.
func (s *Coordinator) Unassign(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var released *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.orders.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.AssignedDriver == nil || current.AssignedVehicle == nil {
			return ErrOrderNotAssigned
		}
		driverID := *current.AssignedDriver
		vehicleID := *current.AssignedVehicle

		order, err := s.orders.Release(ctx, orderID)
		if err != nil {
			return fmt.Errorf("release order: %w", err)
		}

		event := entities.OrderStatusEvent{
			Status:    order.Status,
			Notes:     "Unassigned",
			Timestamp: time.Now().UTC(),
		}
		if err := s.orders.AppendStatusHistory(ctx, order.ID, event); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		if _, err := s.drivers.ReleaseIfIdle(ctx, driverID); err != nil {
			return fmt.Errorf("release driver: %w", err)
		}
		if _, err := s.vehicles.ReleaseIfIdle(ctx, vehicleID); err != nil {
			return fmt.Errorf("release vehicle: %w", err)
		}

		released = order
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return released, nil
}
