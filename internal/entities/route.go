package entities

import "time"

type Route struct {
	ID                       string
	Status                   RouteStatusType
	AssignedDriver           string
	AssignedVehicle          string
	StartLocation            string
	Waypoints                []Waypoint
	EstimatedDurationMinutes int
	EstimatedDistanceKm      float64
	ActualStartTime          *time.Time
	ActualEndTime            *time.Time
	ActualDurationMinutes    *int
	Notes                    string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// OrderIDs возвращает заказы маршрута в порядке объезда.
// Список заказов маршрута — это список его waypoint'ов.
func (r *Route) OrderIDs() []string {
	ids := make([]string, 0, len(r.Waypoints))
	for _, wp := range r.Waypoints {
		ids = append(ids, wp.OrderID)
	}
	return ids
}

type RouteStatusType string

const (
	RoutePlanned    RouteStatusType = "planned"
	RouteInProgress RouteStatusType = "in-progress"
	RouteCompleted  RouteStatusType = "completed"
	RouteCancelled  RouteStatusType = "cancelled"
	RoutePaused     RouteStatusType = "paused"
)

func (s RouteStatusType) String() string {
	return string(s)
}

// IsActive: маршрут ещё можно отменить.
func (s RouteStatusType) IsActive() bool {
	return s == RoutePlanned || s == RouteInProgress || s == RoutePaused
}

type Waypoint struct {
	OrderID          string
	Location         string
	EstimatedArrival *time.Time
	ActualArrival    *time.Time
	Completed        bool
	Notes            string
}

// WaypointUpdate частичное обновление waypoint'а, nil-поля не трогаются.
type WaypointUpdate struct {
	Completed     *bool
	ActualArrival *time.Time
	Notes         *string
}

type RouteModify struct {
	ID                    *string
	Status                *RouteStatusType
	ActualStartTime       *time.Time
	ActualEndTime         *time.Time
	ActualDurationMinutes *int
	Notes                 *string
}
