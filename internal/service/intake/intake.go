package intake

import (
	"context"
	"errors"
	"fmt"

	"fleet/internal/entities"
	"fleet/internal/service/order"
)

// Service принимает события заказов из внешней витрины и раскладывает
// их по реестру: новые заказы заводит, смены статусов прогоняет через
// статусную машину реестра.
type Service struct {
	orderRegistry OrderRegistry
	statusFactory HandlerFactory
}

func New(orderRegistry OrderRegistry, statusFactory HandlerFactory) *Service {
	return &Service{
		orderRegistry: orderRegistry,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderEvent(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingEventFields
	}

	status := *orderModify.Status
	if status == entities.OrderOpen || status == entities.OrderToBeFulfilled {
		return s.createOrder(ctx, orderModify)
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return s.orderRegistry.GetByID(ctx, *orderModify.ID)
		}
		return nil, err
	}

	if err := executeFn(ctx, *orderModify.ID); err != nil {
		return nil, err
	}

	return s.orderRegistry.GetByID(ctx, *orderModify.ID)
}

// createOrder идемпотентен: повторная доставка события о уже
// заведённом заказе не считается ошибкой.
func (s *Service) createOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	created, err := s.orderRegistry.Create(ctx, orderModify)
	if err != nil {
		if errors.Is(err, order.ErrOrderAlreadyExists) {
			return s.orderRegistry.GetByID(ctx, *orderModify.ID)
		}
		return nil, fmt.Errorf("create order from event: %w", err)
	}
	return created, nil
}
