package assignment

import "errors"

var (
	ErrInvalidOrderID   = errors.New("invalid order id")
	ErrInvalidDriverID  = errors.New("invalid driver id")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")

	ErrOrderNotFound   = errors.New("order not found")
	ErrDriverNotFound  = errors.New("driver not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrOrderNotOpen        = errors.New("order is not open for assignment")
	ErrOrderNotAssigned    = errors.New("order has no assignment")
	ErrDriverNotAvailable  = errors.New("driver is not available")
	ErrVehicleNotAvailable = errors.New("vehicle is not available")

	ErrConflict = errors.New("assignment conflicts with a concurrent operation")
)
