package routeplanner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fleet/internal/entities"
	"fleet/internal/repository"
)

const defaultStartLocation = "Depot"

// Planner собирает мультизаказный маршрут: валидирует ресурсы, строит
// последовательность waypoint'ов и применяет к каждому заказу те же
// эффекты назначения, что и одиночный Assign.
type Planner struct {
	routes    RouteRepository
	orders    OrderRepository
	drivers   DriverRepository
	vehicles  VehicleRepository
	sequencer Sequencer
	estimator Estimator
	txManager TxManager
}

func New(
	routes RouteRepository,
	orders OrderRepository,
	drivers DriverRepository,
	vehicles VehicleRepository,
	sequencer Sequencer,
	estimator Estimator,
	txManager TxManager,
) *Planner {
	return &Planner{
		routes:    routes,
		orders:    orders,
		drivers:   drivers,
		vehicles:  vehicles,
		sequencer: sequencer,
		estimator: estimator,
		txManager: txManager,
	}
}

func (s *Planner) CreateOptimizedRoute(ctx context.Context, driverID, vehicleID string, orderIDs []string, startLocation string) (*entities.Route, error) {
	if strings.TrimSpace(driverID) == "" {
		return nil, ErrInvalidDriverID
	}
	if strings.TrimSpace(vehicleID) == "" {
		return nil, ErrInvalidVehicleID
	}
	if len(orderIDs) == 0 {
		return nil, ErrNoOrders
	}
	if hasDuplicates(orderIDs) {
		return nil, ErrDuplicateOrders
	}

	if strings.TrimSpace(startLocation) == "" {
		startLocation = defaultStartLocation
	}

	var created *entities.Route
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.drivers.Claim(ctx, driverID); err != nil {
			return fmt.Errorf("claim driver: %w", err)
		}

		if _, err := s.vehicles.Claim(ctx, vehicleID); err != nil {
			return fmt.Errorf("claim vehicle: %w", err)
		}

		orders, err := s.orders.GetOpenByIDs(ctx, orderIDs)
		if err != nil {
			return fmt.Errorf("get orders: %w", err)
		}
		if len(orders) != len(orderIDs) {
			return fmt.Errorf("%w: requested %d, open %d", ErrOrdersNotOpen, len(orderIDs), len(orders))
		}

		sequenced := s.sequencer.Sequence(orders)

		waypoints := make([]entities.Waypoint, 0, len(sequenced))
		for _, ord := range sequenced {
			waypoints = append(waypoints, entities.Waypoint{
				OrderID:  ord.ID,
				Location: ord.Location,
			})
		}

		route := entities.Route{
			ID:                       newRouteID(),
			Status:                   entities.RoutePlanned,
			AssignedDriver:           driverID,
			AssignedVehicle:          vehicleID,
			StartLocation:            startLocation,
			Waypoints:                waypoints,
			EstimatedDurationMinutes: s.estimator.EstimateDurationMinutes(len(waypoints)),
			EstimatedDistanceKm:      s.estimator.EstimateDistanceKm(len(waypoints)),
		}

		created, err = s.routes.Create(ctx, route)
		if err != nil {
			return fmt.Errorf("create route: %w", err)
		}

		for _, ord := range sequenced {
			claimed, err := s.orders.Claim(ctx, ord.ID, driverID, vehicleID, &created.ID)
			if err != nil {
				return fmt.Errorf("claim order %s: %w", ord.ID, err)
			}

			event := entities.OrderStatusEvent{
				Status:    claimed.Status,
				Notes:     fmt.Sprintf("Added to route %s", created.ID),
				Timestamp: time.Now().UTC(),
			}
			if err := s.orders.AppendStatusHistory(ctx, claimed.ID, event); err != nil {
				return fmt.Errorf("append status history: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		if repository.IsSerializationFailure(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return created, nil
}

func newRouteID() string {
	return fmt.Sprintf("ROUTE-%d", time.Now().UnixMilli())
}

func hasDuplicates(ids []string) bool {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return true
		}
		seen[id] = struct{}{}
	}
	return false
}
