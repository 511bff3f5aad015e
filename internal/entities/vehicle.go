package entities

import "time"

type Vehicle struct {
	ID             string
	Name           string
	Type           VehicleType
	Available      bool
	AssignedOrders []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type VehicleType string

const (
	VehicleVan   VehicleType = "van"
	VehicleTruck VehicleType = "truck"
	VehicleBike  VehicleType = "bike"
)

const DefaultVehicleType = VehicleVan

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) IsKnown() bool {
	switch t {
	case VehicleVan, VehicleTruck, VehicleBike:
		return true
	default:
		return false
	}
}

type VehicleModify struct {
	ID        *string
	Name      *string
	Type      *VehicleType
	Available *bool
}
