package routelifecycle

import "errors"

var (
	ErrInvalidRouteID = errors.New("invalid route id")

	ErrRouteNotFound    = errors.New("route not found")
	ErrWaypointNotFound = errors.New("waypoint not found")

	ErrRouteNotPlanned    = errors.New("route can only be started from planned")
	ErrRouteNotInProgress = errors.New("route can only be completed from in-progress")
	ErrRouteNotActive     = errors.New("route is already completed or cancelled")

	ErrConflict = errors.New("route modified concurrently")
)
