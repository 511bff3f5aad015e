package route

import "time"

type RouteDB struct {
	ID                       int64
	RouteID                  string
	Status                   string
	AssignedDriver           string
	AssignedVehicle          string
	StartLocation            string
	EstimatedDurationMinutes int
	EstimatedDistanceKm      float64
	ActualStartTime          *time.Time
	ActualEndTime            *time.Time
	ActualDurationMinutes    *int
	Notes                    string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type WaypointDB struct {
	OrderID          string
	Location         string
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	Completed        bool
	Notes            string
}
