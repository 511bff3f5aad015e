package order

import (
	"context"
	"fmt"
	"time"

	"fleet/internal/entities"
	"fleet/internal/repository"
)

// Registry владеет записями заказов и их статусной машиной.
// Все остальные координаторы меняют статус заказа только через него,
// чтобы история статусов оставалась связной независимо от пути.
type Registry struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Registry {
	return &Registry{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Registry) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil ||
		orderModify.Type == nil ||
		orderModify.Packages == nil ||
		orderModify.Location == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}

	if orderModify.Status == nil {
		status := entities.OrderOpen
		orderModify.Status = &status
	}
	if *orderModify.Status != entities.OrderOpen && *orderModify.Status != entities.OrderToBeFulfilled {
		return nil, ErrInvalidCreateStatus
	}

	if orderModify.Priority == nil {
		priority := entities.DefaultOrderPriority
		orderModify.Priority = &priority
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.Create(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		event := entities.OrderStatusEvent{
			Status:    order.Status,
			Timestamp: time.Now().UTC(),
		}
		if err := s.repository.AppendStatusHistory(ctx, order.ID, event); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		created = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// TransitionStatus переводит заказ в новый статус и дописывает историю.
// Вон из cancelled пути нет; из completed — только в returned.
func (s *Registry) TransitionStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, notes string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !newStatus.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, newStatus)
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status.IsTerminal() {
			allowedReturn := current.Status == entities.OrderCompleted && newStatus == entities.OrderReturned
			if !allowedReturn {
				return fmt.Errorf("%w: %s", ErrTerminalStatus, current.Status)
			}
		}

		order, err := s.repository.UpdateStatus(ctx, orderID, newStatus)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		event := entities.OrderStatusEvent{
			Status:    newStatus,
			Notes:     notes,
			Timestamp: time.Now().UTC(),
		}
		if err := s.repository.AppendStatusHistory(ctx, orderID, event); err != nil {
			return fmt.Errorf("append status history: %w", err)
		}

		updated = order
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

func (s *Registry) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Registry) GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStatus, status)
	}

	orders, err := s.repository.GetByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("get orders by status: %w", err)
	}
	return orders, nil
}

func (s *Registry) GetStatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusEvent, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	history, err := s.repository.GetStatusHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get status history: %w", err)
	}
	return history, nil
}
