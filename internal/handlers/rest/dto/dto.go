// Package dto описывает JSON-представления REST API.
package dto

import "time"

type Order struct {
	OrderID         string    `json:"order_id"`
	Status          string    `json:"status"`
	Priority        string    `json:"priority"`
	ServiceType     string    `json:"service_type"`
	Packages        int       `json:"packages"`
	TotalAmount     float64   `json:"total_amount"`
	Location        string    `json:"location"`
	AssignedDriver  *string   `json:"assigned_driver,omitempty"`
	AssignedVehicle *string   `json:"assigned_vehicle,omitempty"`
	AssignedRoute   *string   `json:"assigned_route,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type OrderCreate struct {
	OrderID     string   `json:"order_id"`
	Status      *string  `json:"status,omitempty"`
	Priority    *string  `json:"priority,omitempty"`
	ServiceType string   `json:"service_type"`
	Packages    int      `json:"packages"`
	TotalAmount *float64 `json:"total_amount,omitempty"`
	Location    string   `json:"location"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

type OrderStatusEvent struct {
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type AssignRequest struct {
	OrderID   string `json:"order_id"`
	DriverID  string `json:"driver_id"`
	VehicleID string `json:"vehicle_id"`
}

type UnassignRequest struct {
	OrderID string `json:"order_id"`
}

type Driver struct {
	DriverID       string    `json:"driver_id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone,omitempty"`
	Status         string    `json:"status"`
	AssignedOrders []string  `json:"assigned_orders"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DriverCreate struct {
	DriverID string  `json:"driver_id"`
	Name     string  `json:"name"`
	Phone    *string `json:"phone,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type DriverUpdate struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

type Vehicle struct {
	VehicleID      string    `json:"vehicle_id"`
	Name           string    `json:"name"`
	VehicleType    string    `json:"vehicle_type"`
	Available      bool      `json:"available"`
	AssignedOrders []string  `json:"assigned_orders"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type VehicleCreate struct {
	VehicleID   string  `json:"vehicle_id"`
	Name        string  `json:"name"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type VehicleUpdate struct {
	Name        *string `json:"name,omitempty"`
	VehicleType *string `json:"vehicle_type,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type Waypoint struct {
	OrderID          string     `json:"order_id"`
	Location         string     `json:"location"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
	ActualArrival    *time.Time `json:"actual_arrival,omitempty"`
	Completed        bool       `json:"completed"`
	Notes            string     `json:"notes,omitempty"`
}

type Route struct {
	RouteID                  string     `json:"route_id"`
	Status                   string     `json:"status"`
	DriverID                 string     `json:"driver_id"`
	VehicleID                string     `json:"vehicle_id"`
	StartLocation            string     `json:"start_location"`
	Waypoints                []Waypoint `json:"waypoints"`
	EstimatedDurationMinutes int        `json:"estimated_duration_minutes"`
	EstimatedDistanceKm      float64    `json:"estimated_distance_km"`
	ActualStartTime          *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime            *time.Time `json:"actual_end_time,omitempty"`
	ActualDurationMinutes    *int       `json:"actual_duration_minutes,omitempty"`
	Notes                    string     `json:"notes,omitempty"`
	CreatedAt                time.Time  `json:"created_at"`
	UpdatedAt                time.Time  `json:"updated_at"`
}

type RouteCreate struct {
	DriverID      string   `json:"driver_id"`
	VehicleID     string   `json:"vehicle_id"`
	OrderIDs      []string `json:"order_ids"`
	StartLocation string   `json:"start_location,omitempty"`
}

type RouteComplete struct {
	Notes string `json:"notes,omitempty"`
}

type RouteCancel struct {
	Reason string `json:"reason,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type WaypointUpdate struct {
	Completed     *bool      `json:"completed,omitempty"`
	ActualArrival *time.Time `json:"actual_arrival,omitempty"`
	Notes         *string    `json:"notes,omitempty"`
}
