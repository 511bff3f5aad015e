package entities

import "time"

type Driver struct {
	ID             string
	Name           string
	Phone          string
	Status         DriverStatusType
	AssignedOrders []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DriverStatusType string

const (
	DriverAvailable DriverStatusType = "available"
	DriverBusy      DriverStatusType = "busy"
	DriverOffline   DriverStatusType = "offline"
)

const DefaultDriverStatus = DriverAvailable

func (s DriverStatusType) String() string {
	return string(s)
}

func (s DriverStatusType) IsKnown() bool {
	switch s {
	case DriverAvailable, DriverBusy, DriverOffline:
		return true
	default:
		return false
	}
}

type DriverModify struct {
	ID     *string
	Name   *string
	Phone  *string
	Status *DriverStatusType
}
