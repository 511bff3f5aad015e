package route

import (
	"fleet/internal/entities"
)

func ToDomain(r *RouteDB, waypointsDB []WaypointDB) *entities.Route {
	if r == nil {
		return nil
	}

	waypoints := make([]entities.Waypoint, len(waypointsDB))
	for i, waypointDB := range waypointsDB {
		waypoints[i] = ToWaypointDomain(&waypointDB)
	}

	return &entities.Route{
		ID:                       r.RouteID,
		Status:                   entities.RouteStatusType(r.Status),
		AssignedDriver:           r.AssignedDriver,
		AssignedVehicle:          r.AssignedVehicle,
		StartLocation:            r.StartLocation,
		Waypoints:                waypoints,
		EstimatedDurationMinutes: r.EstimatedDurationMinutes,
		EstimatedDistanceKm:      r.EstimatedDistanceKm,
		ActualStartTime:          r.ActualStartTime,
		ActualEndTime:            r.ActualEndTime,
		ActualDurationMinutes:    r.ActualDurationMinutes,
		Notes:                    r.Notes,
		CreatedAt:                r.CreatedAt,
		UpdatedAt:                r.UpdatedAt,
	}
}

func ToWaypointDomain(w *WaypointDB) entities.Waypoint {
	return entities.Waypoint{
		OrderID:          w.OrderID,
		Location:         w.Location,
		EstimatedArrival: w.EstimatedArrival,
		ActualArrival:    w.ActualArrival,
		Completed:        w.Completed,
		Notes:            w.Notes,
	}
}
