package order

import "time"

type OrderDB struct {
	ID              int64
	OrderID         string
	Status          string
	Priority        string
	ServiceType     string
	Packages        int
	TotalAmount     float64
	Location        string
	AssignedDriver  *string
	AssignedVehicle *string
	AssignedRoute   *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderModifyDB struct {
	OrderID         *string
	Status          *string
	Priority        *string
	ServiceType     *string
	Packages        *int
	TotalAmount     *float64
	Location        *string
	AssignedDriver  *string
	AssignedVehicle *string
	AssignedRoute   *string
}

type StatusEventDB struct {
	Status    string
	Notes     string
	CreatedAt time.Time
}
