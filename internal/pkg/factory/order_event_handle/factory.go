package order_event_handle

import (
	"context"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/service/intake"
)

type OrderRegistry interface {
	TransitionStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, notes string) (*entities.Order, error)
}

type StatusHandlerFactory struct {
	orderRegistry OrderRegistry
}

func NewStatusHandlerFactory(orderRegistry OrderRegistry) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		orderRegistry: orderRegistry,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (intake.ExecuteFn, error) {
	switch status {
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderCompleted:
		return f.completedHandler, nil
	case entities.OrderReturned:
		return f.returnedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", intake.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) readyHandler(ctx context.Context, orderID string) error {
	_, err := f.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderReady, "Marked ready upstream")
	if err != nil {
		return fmt.Errorf("mark order %s ready: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, orderID string) error {
	_, err := f.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderCancelled, "Cancelled upstream")
	if err != nil {
		return fmt.Errorf("cancel order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) completedHandler(ctx context.Context, orderID string) error {
	_, err := f.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderCompleted, "Completed upstream")
	if err != nil {
		return fmt.Errorf("complete order %s: %w", orderID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) returnedHandler(ctx context.Context, orderID string) error {
	_, err := f.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderReturned, "Returned after delivery")
	if err != nil {
		return fmt.Errorf("return order %s: %w", orderID, err)
	}
	return nil
}
