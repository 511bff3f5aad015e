package route_sequencer

import (
	"fleet/internal/entities"
)

// ExpressFirstSequencer строит порядок объезда: EXPRESS-заказы едут
// первыми, внутри групп исходный порядок сохраняется.
type ExpressFirstSequencer struct{}

func New() *ExpressFirstSequencer {
	return &ExpressFirstSequencer{}
}

func (s *ExpressFirstSequencer) Sequence(orders []entities.Order) []entities.Order {
	result := make([]entities.Order, 0, len(orders))

	for _, order := range orders {
		if order.Type == entities.OrderTypeExpress {
			result = append(result, order)
		}
	}
	for _, order := range orders {
		if order.Type != entities.OrderTypeExpress {
			result = append(result, order)
		}
	}

	return result
}
