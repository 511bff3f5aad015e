//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"fleet/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)

	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error)
	AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error
	GetStatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusEvent, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
