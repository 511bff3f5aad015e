package entities

import "time"

type Order struct {
	ID              string
	Status          OrderStatusType
	Priority        OrderPriorityType
	Type            OrderServiceType
	Packages        int
	TotalAmount     float64
	Location        string
	AssignedDriver  *string
	AssignedVehicle *string
	AssignedRoute   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderStatusType string

const (
	OrderToBeFulfilled OrderStatusType = "to-be-fulfilled"
	OrderOpen          OrderStatusType = "open"
	OrderReady         OrderStatusType = "ready"
	OrderAssigned      OrderStatusType = "assigned"
	OrderInTransit     OrderStatusType = "in-transit"
	OrderDelivered     OrderStatusType = "delivered"
	OrderCompleted     OrderStatusType = "completed"
	OrderCancelled     OrderStatusType = "cancelled"
	OrderReturned      OrderStatusType = "returned"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsKnown сообщает валидный ли это статус заказа вообще.
func (s OrderStatusType) IsKnown() bool {
	switch s {
	case OrderToBeFulfilled, OrderOpen, OrderReady, OrderAssigned,
		OrderInTransit, OrderDelivered, OrderCompleted, OrderCancelled, OrderReturned:
		return true
	default:
		return false
	}
}

// IsTerminal: из cancelled и completed выхода нет,
// кроме completed -> returned (возврат после доставки).
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCancelled || s == OrderCompleted
}

type OrderServiceType string

const (
	OrderTypeExpress      OrderServiceType = "EXPRESS"
	OrderTypeRefrigerated OrderServiceType = "REFRIGERATED"
	OrderTypeHeavy        OrderServiceType = "HEAVY"
	OrderTypeLatePickup   OrderServiceType = "LATE PICKUP"
	OrderTypeStandard     OrderServiceType = "STANDARD"
	OrderTypeUrgent       OrderServiceType = "URGENT"
)

func (t OrderServiceType) String() string {
	return string(t)
}

type OrderPriorityType string

const (
	PriorityLow    OrderPriorityType = "low"
	PriorityMedium OrderPriorityType = "medium"
	PriorityHigh   OrderPriorityType = "high"
	PriorityUrgent OrderPriorityType = "urgent"
)

const DefaultOrderPriority = PriorityMedium

func (p OrderPriorityType) String() string {
	return string(p)
}

type OrderModify struct {
	ID              *string
	Status          *OrderStatusType
	Priority        *OrderPriorityType
	Type            *OrderServiceType
	Packages        *int
	TotalAmount     *float64
	Location        *string
	AssignedDriver  *string
	AssignedVehicle *string
	AssignedRoute   *string
}

// OrderStatusEvent одна запись в истории статусов заказа.
type OrderStatusEvent struct {
	Status    OrderStatusType
	Notes     string
	Timestamp time.Time
}
