package fleet

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDriverID       = errors.New("invalid driver id")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid driver status")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")

	ErrDriverNotFound  = errors.New("driver not found")
	ErrVehicleNotFound = errors.New("vehicle not found")

	ErrDriverHasAssignedOrders  = errors.New("driver still has assigned orders")
	ErrVehicleHasAssignedOrders = errors.New("vehicle still has assigned orders")
	ErrBusyIsDerived            = errors.New("busy is derived from assignments and cannot be set directly")

	ErrConflict = errors.New("fleet resource modified concurrently")
)
