//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"fleet/internal/entities"
)

type OrderRegistry interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	TransitionStatus(ctx context.Context, orderID string, newStatus entities.OrderStatusType, notes string) (*entities.Order, error)
}

type (
	ExecuteFn      func(ctx context.Context, orderID string) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
