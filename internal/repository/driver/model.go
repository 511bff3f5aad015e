package driver

import "time"

type DriverDB struct {
	ID             int64
	DriverID       string
	Name           string
	Phone          string
	Status         string
	AssignedOrders []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DriverModifyDB struct {
	DriverID *string
	Name     *string
	Phone    *string
	Status   *string
}
