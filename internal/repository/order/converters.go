package order

import (
	"fleet/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:              o.OrderID,
		Status:          entities.OrderStatusType(o.Status),
		Priority:        entities.OrderPriorityType(o.Priority),
		Type:            entities.OrderServiceType(o.ServiceType),
		Packages:        o.Packages,
		TotalAmount:     o.TotalAmount,
		Location:        o.Location,
		AssignedDriver:  o.AssignedDriver,
		AssignedVehicle: o.AssignedVehicle,
		AssignedRoute:   o.AssignedRoute,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}
	orderDB := &OrderModifyDB{}

	if orderModify.ID != nil {
		orderDB.OrderID = orderModify.ID
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}
	if orderModify.Priority != nil {
		priority := orderModify.Priority.String()
		orderDB.Priority = &priority
	}
	if orderModify.Type != nil {
		serviceType := orderModify.Type.String()
		orderDB.ServiceType = &serviceType
	}
	if orderModify.Packages != nil {
		orderDB.Packages = orderModify.Packages
	}
	if orderModify.TotalAmount != nil {
		orderDB.TotalAmount = orderModify.TotalAmount
	}
	if orderModify.Location != nil {
		orderDB.Location = orderModify.Location
	}
	if orderModify.AssignedDriver != nil {
		orderDB.AssignedDriver = orderModify.AssignedDriver
	}
	if orderModify.AssignedVehicle != nil {
		orderDB.AssignedVehicle = orderModify.AssignedVehicle
	}
	if orderModify.AssignedRoute != nil {
		orderDB.AssignedRoute = orderModify.AssignedRoute
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}

func ToEventDomain(e *StatusEventDB) entities.OrderStatusEvent {
	return entities.OrderStatusEvent{
		Status:    entities.OrderStatusType(e.Status),
		Notes:     e.Notes,
		Timestamp: e.CreatedAt,
	}
}
