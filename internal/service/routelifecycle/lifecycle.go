package routelifecycle

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet/internal/entities"
	"fleet/internal/repository"
)

// Manager ведёт маршрут по жизненному циклу planned → in-progress →
// completed/cancelled и каскадирует изменения в заказы и флот. Завершённый
// или отменённый маршрут неизменяем.
type Manager struct {
	routes        RouteRepository
	orderRegistry OrderRegistry
	orders        OrderRepository
	drivers       DriverRepository
	vehicles      VehicleRepository
	txManager     TxManager
}

func New(
	routes RouteRepository,
	orderRegistry OrderRegistry,
	orders OrderRepository,
	drivers DriverRepository,
	vehicles VehicleRepository,
	txManager TxManager,
) *Manager {
	return &Manager{
		routes:        routes,
		orderRegistry: orderRegistry,
		orders:        orders,
		drivers:       drivers,
		vehicles:      vehicles,
		txManager:     txManager,
	}
}

func (s *Manager) GetRoute(ctx context.Context, routeID string) (*entities.Route, error) {
	if !isValidRouteID(routeID) {
		return nil, ErrInvalidRouteID
	}

	route, err := s.routes.GetByID(ctx, routeID)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}
	return route, nil
}

func (s *Manager) Start(ctx context.Context, routeID string) (*entities.Route, error) {
	if !isValidRouteID(routeID) {
		return nil, ErrInvalidRouteID
	}

	var started *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.routes.Start(ctx, routeID, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("start route: %w", err)
		}

		for _, orderID := range route.OrderIDs() {
			if _, err := s.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderInTransit, "Route started"); err != nil {
				return fmt.Errorf("transition order %s: %w", orderID, err)
			}
		}

		started = route
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return started, nil
}

// UpdateWaypoint применяет частичное обновление к остановке маршрута.
// Завершение waypoint'а доставляет его заказ немедленно, не дожидаясь
// завершения всего маршрута.
func (s *Manager) UpdateWaypoint(ctx context.Context, routeID string, index int, update entities.WaypointUpdate) (*entities.Waypoint, error) {
	if !isValidRouteID(routeID) {
		return nil, ErrInvalidRouteID
	}

	var updated *entities.Waypoint
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.routes.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}
		if !route.Status.IsActive() {
			return fmt.Errorf("%w: %s", ErrRouteNotActive, route.Status)
		}
		if index < 0 || index >= len(route.Waypoints) {
			return fmt.Errorf("%w: index %d of %d", ErrWaypointNotFound, index, len(route.Waypoints))
		}

		previous := route.Waypoints[index]

		waypoint, err := s.routes.UpdateWaypoint(ctx, routeID, index, update)
		if err != nil {
			return fmt.Errorf("update waypoint: %w", err)
		}

		completedNow := update.Completed != nil && *update.Completed && !previous.Completed
		if completedNow && waypoint.OrderID != "" {
			if _, err := s.orderRegistry.TransitionStatus(ctx, waypoint.OrderID, entities.OrderDelivered, "Waypoint completed"); err != nil {
				return fmt.Errorf("transition order %s: %w", waypoint.OrderID, err)
			}
		}

		updated = waypoint
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return updated, nil
}

func (s *Manager) Complete(ctx context.Context, routeID, notes string) (*entities.Route, error) {
	if !isValidRouteID(routeID) {
		return nil, ErrInvalidRouteID
	}

	var completed *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.routes.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}
		if route.Status != entities.RouteInProgress {
			return fmt.Errorf("%w: %s", ErrRouteNotInProgress, route.Status)
		}

		endTime := time.Now().UTC()
		var durationMinutes *int
		if route.ActualStartTime != nil {
			minutes := int(endTime.Sub(*route.ActualStartTime).Round(time.Minute).Minutes())
			durationMinutes = &minutes
		}

		completed, err = s.routes.Complete(ctx, routeID, endTime, durationMinutes, notes)
		if err != nil {
			return fmt.Errorf("complete route: %w", err)
		}

		// заказы, закрытые по waypoint'у, уже delivered — пропускаем
		for _, orderID := range route.OrderIDs() {
			ord, err := s.orderRegistry.GetByID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("get order %s: %w", orderID, err)
			}
			if ord.Status == entities.OrderDelivered {
				continue
			}
			if _, err := s.orderRegistry.TransitionStatus(ctx, orderID, entities.OrderDelivered, "Route completed"); err != nil {
				return fmt.Errorf("transition order %s: %w", orderID, err)
			}
		}

		return s.releaseResources(ctx, route)
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return completed, nil
}

// Cancel обращает создание маршрута, а не доставку: все его заказы
// возвращаются в open со срезанными полями назначения, независимо от
// завершённости отдельных waypoint'ов.
func (s *Manager) Cancel(ctx context.Context, routeID, reason string) (*entities.Route, error) {
	if !isValidRouteID(routeID) {
		return nil, ErrInvalidRouteID
	}

	notes := "Route cancelled"
	if strings.TrimSpace(reason) != "" {
		notes = fmt.Sprintf("Cancelled: %s", reason)
	}

	var cancelled *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		route, err := s.routes.GetByID(ctx, routeID)
		if err != nil {
			return fmt.Errorf("get route: %w", err)
		}
		if !route.Status.IsActive() {
			return fmt.Errorf("%w: %s", ErrRouteNotActive, route.Status)
		}

		cancelled, err = s.routes.Cancel(ctx, routeID, notes)
		if err != nil {
			return fmt.Errorf("cancel route: %w", err)
		}

		for _, orderID := range route.OrderIDs() {
			ord, err := s.orderRegistry.GetByID(ctx, orderID)
			if err != nil {
				return fmt.Errorf("get order %s: %w", orderID, err)
			}
			// заказ уже мог быть снят, например каскадом offline-водителя
			if ord.AssignedDriver == nil && ord.AssignedVehicle == nil {
				continue
			}

			released, err := s.orders.Release(ctx, orderID)
			if err != nil {
				return fmt.Errorf("release order %s: %w", orderID, err)
			}

			event := entities.OrderStatusEvent{
				Status:    released.Status,
				Notes:     notes,
				Timestamp: time.Now().UTC(),
			}
			if err := s.orders.AppendStatusHistory(ctx, released.ID, event); err != nil {
				return fmt.Errorf("append status history: %w", err)
			}
		}

		return s.releaseResources(ctx, route)
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return cancelled, nil
}

// releaseResources применяет единое правило освобождения: водитель и машина
// возвращаются в строй, только если за ними не осталось активных заказов.
func (s *Manager) releaseResources(ctx context.Context, route *entities.Route) error {
	if _, err := s.drivers.ReleaseIfIdle(ctx, route.AssignedDriver); err != nil {
		return fmt.Errorf("release driver: %w", err)
	}
	if _, err := s.vehicles.ReleaseIfIdle(ctx, route.AssignedVehicle); err != nil {
		return fmt.Errorf("release vehicle: %w", err)
	}
	return nil
}

func isValidRouteID(routeID string) bool {
	return strings.TrimSpace(routeID) != ""
}
