package routeplanner

import "errors"

var (
	ErrInvalidDriverID  = errors.New("invalid driver id")
	ErrInvalidVehicleID = errors.New("invalid vehicle id")
	ErrNoOrders         = errors.New("route requires at least one order")
	ErrDuplicateOrders  = errors.New("order ids contain duplicates")

	// водителя и машину захватывает общий слой назначения,
	// его сентинелы проходят сквозь планировщик как есть
	ErrOrdersNotOpen = errors.New("one or more orders not found or not open")

	ErrConflict = errors.New("route planning conflicts with a concurrent operation")
)
