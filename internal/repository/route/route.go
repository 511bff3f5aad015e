package route

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/routelifecycle"
	"fleet/internal/service/routeplanner"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const routeColumns = `id, route_id, status, assigned_driver, assigned_vehicle, start_location,
		estimated_duration_minutes, estimated_distance_km,
		actual_start_time, actual_end_time, actual_duration_minutes,
		notes, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет маршрут вместе с waypoint'ами; вызывается планировщиком
// внутри общей транзакции с claim'ами ресурсов.
func (r *Repository) Create(ctx context.Context, route entities.Route) (*entities.Route, error) {
	query := `
		INSERT INTO routes (route_id, status, assigned_driver, assigned_vehicle, start_location,
			estimated_duration_minutes, estimated_distance_km, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + routeColumns

	routeDB, err := scanRoute(r.querier.QueryRow(
		ctx,
		query,
		route.ID,
		route.Status.String(),
		route.AssignedDriver,
		route.AssignedVehicle,
		route.StartLocation,
		route.EstimatedDurationMinutes,
		route.EstimatedDistanceKm,
		route.Notes,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, routeplanner.ErrConflict
		}
		return nil, fmt.Errorf("unexpected route repository create error: %w", err)
	}

	if len(route.Waypoints) > 0 {
		builder := qb.
			Insert("route_waypoints").
			Columns("route_id", "position", "order_id", "location", "estimated_arrival", "completed", "notes")

		for i, waypoint := range route.Waypoints {
			builder = builder.Values(
				routeDB.ID,
				i,
				waypoint.OrderID,
				waypoint.Location,
				waypoint.EstimatedArrival,
				waypoint.Completed,
				waypoint.Notes,
			)
		}

		insertQuery, args, err := builder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository create waypoints error: %w", err)
		}

		if _, err := r.querier.Exec(ctx, insertQuery, args...); err != nil {
			return nil, fmt.Errorf("unexpected route repository create waypoints error: %w", err)
		}
	}

	waypointsDB, err := r.loadWaypoints(ctx, routeDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeDB, waypointsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, routeID string) (*entities.Route, error) {
	query := `SELECT ` + routeColumns + `
		FROM routes
		WHERE route_id = $1`

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, routeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, routelifecycle.ErrRouteNotFound
		}
		return nil, fmt.Errorf("unexpected route repository getbyid error: %w", err)
	}

	waypointsDB, err := r.loadWaypoints(ctx, routeDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeDB, waypointsDB), nil
}

// Start условно переводит planned-маршрут в in-progress.
func (r *Repository) Start(ctx context.Context, routeID string, at time.Time) (*entities.Route, error) {
	query := `
		UPDATE routes
		SET status = 'in-progress',
			actual_start_time = $2,
			updated_at = NOW()
		WHERE route_id = $1 AND status = 'planned'
		RETURNING ` + routeColumns

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, routeID, at))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, routeID, routelifecycle.ErrRouteNotPlanned)
		}
		return nil, fmt.Errorf("unexpected route repository start error: %w", err)
	}

	waypointsDB, err := r.loadWaypoints(ctx, routeDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeDB, waypointsDB), nil
}

// Complete условно закрывает in-progress-маршрут. Пустые notes
// не затирают уже записанные.
func (r *Repository) Complete(ctx context.Context, routeID string, at time.Time, durationMinutes *int, notes string) (*entities.Route, error) {
	query := `
		UPDATE routes
		SET status = 'completed',
			actual_end_time = $2,
			actual_duration_minutes = $3,
			notes = CASE WHEN $4 <> '' THEN $4 ELSE notes END,
			updated_at = NOW()
		WHERE route_id = $1 AND status = 'in-progress'
		RETURNING ` + routeColumns

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, routeID, at, durationMinutes, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, routeID, routelifecycle.ErrRouteNotInProgress)
		}
		return nil, fmt.Errorf("unexpected route repository complete error: %w", err)
	}

	waypointsDB, err := r.loadWaypoints(ctx, routeDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeDB, waypointsDB), nil
}

// Cancel условно отменяет ещё активный маршрут.
func (r *Repository) Cancel(ctx context.Context, routeID string, notes string) (*entities.Route, error) {
	query := `
		UPDATE routes
		SET status = 'cancelled',
			notes = $2,
			updated_at = NOW()
		WHERE route_id = $1 AND status IN ('planned', 'in-progress', 'paused')
		RETURNING ` + routeColumns

	routeDB, err := scanRoute(r.querier.QueryRow(ctx, query, routeID, notes))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, routeID, routelifecycle.ErrRouteNotActive)
		}
		return nil, fmt.Errorf("unexpected route repository cancel error: %w", err)
	}

	waypointsDB, err := r.loadWaypoints(ctx, routeDB.ID)
	if err != nil {
		return nil, err
	}

	return ToDomain(routeDB, waypointsDB), nil
}

func (r *Repository) UpdateWaypoint(ctx context.Context, routeID string, index int, update entities.WaypointUpdate) (*entities.Waypoint, error) {
	builder := qb.
		Update("route_waypoints")

	// опциональные поля
	if update.Completed != nil {
		builder = builder.Set("completed", *update.Completed)
	}
	if update.ActualArrival != nil {
		builder = builder.Set("actual_arrival", *update.ActualArrival)
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Expr("route_id = (SELECT id FROM routes WHERE route_id = ?)", routeID)).
		Where(sq.Eq{"position": index}).
		Suffix("RETURNING order_id, location, estimated_arrival, actual_arrival, completed, notes")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository update waypoint error: %w", err)
	}

	var waypointDB WaypointDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&waypointDB.OrderID,
			&waypointDB.Location,
			&waypointDB.EstimatedArrival,
			&waypointDB.ActualArrival,
			&waypointDB.Completed,
			&waypointDB.Notes,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, routelifecycle.ErrWaypointNotFound
		}
		return nil, fmt.Errorf("unexpected route repository update waypoint error: %w", err)
	}

	waypoint := ToWaypointDomain(&waypointDB)
	return &waypoint, nil
}

func (r *Repository) loadWaypoints(ctx context.Context, routeID int64) ([]WaypointDB, error) {
	query := `
		SELECT order_id, location, estimated_arrival, actual_arrival, completed, notes
		FROM route_waypoints
		WHERE route_id = $1
		ORDER BY position
	`

	rows, err := r.querier.Query(ctx, query, routeID)
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load waypoints error: %w", err)
	}
	defer rows.Close()

	waypointsDB := make([]WaypointDB, 0, 8)
	for rows.Next() {
		var waypointDB WaypointDB
		err := rows.Scan(
			&waypointDB.OrderID,
			&waypointDB.Location,
			&waypointDB.EstimatedArrival,
			&waypointDB.ActualArrival,
			&waypointDB.Completed,
			&waypointDB.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected route repository load waypoints error: %w", err)
		}
		waypointsDB = append(waypointsDB, waypointDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected route repository load waypoints error: %w", err)
	}

	return waypointsDB, nil
}

// classifyMiss различает "маршрута нет" и "маршрут не в том статусе"
// после условного UPDATE, не вернувшего строк.
func (r *Repository) classifyMiss(ctx context.Context, routeID string, wrongStatusErr error) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM routes WHERE route_id = $1)`, routeID).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected route repository classify error: %w", err)
	}

	if !exists {
		return routelifecycle.ErrRouteNotFound
	}
	return wrongStatusErr
}

func scanRoute(row pgx.Row) (*RouteDB, error) {
	var routeDB RouteDB
	err := row.Scan(
		&routeDB.ID,
		&routeDB.RouteID,
		&routeDB.Status,
		&routeDB.AssignedDriver,
		&routeDB.AssignedVehicle,
		&routeDB.StartLocation,
		&routeDB.EstimatedDurationMinutes,
		&routeDB.EstimatedDistanceKm,
		&routeDB.ActualStartTime,
		&routeDB.ActualEndTime,
		&routeDB.ActualDurationMinutes,
		&routeDB.Notes,
		&routeDB.CreatedAt,
		&routeDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &routeDB, nil
}
