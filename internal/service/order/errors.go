package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrInvalidCreateStatus   = errors.New("orders are created open or to-be-fulfilled")

	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderAlreadyExists = errors.New("order already exists")
	ErrTerminalStatus     = errors.New("order is in a terminal status")
	ErrConflict           = errors.New("order modified concurrently")
)
