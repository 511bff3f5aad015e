package dto

import (
	"fleet/internal/entities"
)

func OrderFromEntity(order *entities.Order) Order {
	return Order{
		OrderID:         order.ID,
		Status:          order.Status.String(),
		Priority:        order.Priority.String(),
		ServiceType:     order.Type.String(),
		Packages:        order.Packages,
		TotalAmount:     order.TotalAmount,
		Location:        order.Location,
		AssignedDriver:  order.AssignedDriver,
		AssignedVehicle: order.AssignedVehicle,
		AssignedRoute:   order.AssignedRoute,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrdersFromEntities(orders []entities.Order) []Order {
	result := make([]Order, len(orders))
	for i := range orders {
		result[i] = OrderFromEntity(&orders[i])
	}
	return result
}

func DriverFromEntity(driver *entities.Driver) Driver {
	return Driver{
		DriverID:       driver.ID,
		Name:           driver.Name,
		Phone:          driver.Phone,
		Status:         driver.Status.String(),
		AssignedOrders: driver.AssignedOrders,
		CreatedAt:      driver.CreatedAt,
		UpdatedAt:      driver.UpdatedAt,
	}
}

func DriversFromEntities(drivers []entities.Driver) []Driver {
	result := make([]Driver, len(drivers))
	for i := range drivers {
		result[i] = DriverFromEntity(&drivers[i])
	}
	return result
}

func VehicleFromEntity(vehicle *entities.Vehicle) Vehicle {
	return Vehicle{
		VehicleID:      vehicle.ID,
		Name:           vehicle.Name,
		VehicleType:    vehicle.Type.String(),
		Available:      vehicle.Available,
		AssignedOrders: vehicle.AssignedOrders,
		CreatedAt:      vehicle.CreatedAt,
		UpdatedAt:      vehicle.UpdatedAt,
	}
}

func VehiclesFromEntities(vehicles []entities.Vehicle) []Vehicle {
	result := make([]Vehicle, len(vehicles))
	for i := range vehicles {
		result[i] = VehicleFromEntity(&vehicles[i])
	}
	return result
}

func WaypointFromEntity(waypoint *entities.Waypoint) Waypoint {
	return Waypoint{
		OrderID:          waypoint.OrderID,
		Location:         waypoint.Location,
		EstimatedArrival: waypoint.EstimatedArrival,
		ActualArrival:    waypoint.ActualArrival,
		Completed:        waypoint.Completed,
		Notes:            waypoint.Notes,
	}
}

func RouteFromEntity(route *entities.Route) Route {
	waypoints := make([]Waypoint, len(route.Waypoints))
	for i := range route.Waypoints {
		waypoints[i] = WaypointFromEntity(&route.Waypoints[i])
	}

	return Route{
		RouteID:                  route.ID,
		Status:                   route.Status.String(),
		DriverID:                 route.AssignedDriver,
		VehicleID:                route.AssignedVehicle,
		StartLocation:            route.StartLocation,
		Waypoints:                waypoints,
		EstimatedDurationMinutes: route.EstimatedDurationMinutes,
		EstimatedDistanceKm:      route.EstimatedDistanceKm,
		ActualStartTime:          route.ActualStartTime,
		ActualEndTime:            route.ActualEndTime,
		ActualDurationMinutes:    route.ActualDurationMinutes,
		Notes:                    route.Notes,
		CreatedAt:                route.CreatedAt,
		UpdatedAt:                route.UpdatedAt,
	}
}
