package vehicle

import "time"

type VehicleDB struct {
	ID             int64
	VehicleID      string
	Name           string
	VehicleType    string
	Available      bool
	AssignedOrders []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleModifyDB struct {
	VehicleID   *string
	Name        *string
	VehicleType *string
	Available   *bool
}
