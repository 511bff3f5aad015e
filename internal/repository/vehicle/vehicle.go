package vehicle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/assignment"
	"fleet/internal/service/fleet"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectVehicles = `
	SELECT v.id, v.vehicle_id, v.name, v.vehicle_type, v.available,
		COALESCE(ARRAY_AGG(o.order_id ORDER BY o.id) FILTER (WHERE o.order_id IS NOT NULL), '{}'),
		v.created_at, v.updated_at
	FROM vehicles v
	LEFT JOIN orders o
		ON o.assigned_vehicle = v.vehicle_id
		AND o.status IN ('assigned', 'in-transit')`

const returningVehicle = `id, vehicle_id, name, vehicle_type, available,
		(SELECT COALESCE(ARRAY_AGG(o.order_id ORDER BY o.id), '{}')
			FROM orders o
			WHERE o.assigned_vehicle = vehicles.vehicle_id
			AND o.status IN ('assigned', 'in-transit')),
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyDB := FromDomainModify(&vehicleModify)

	query := `
		INSERT INTO vehicles (vehicle_id, name, vehicle_type, available)
		VALUES ($1, $2, COALESCE($3, 'van'), COALESCE($4, TRUE))
		RETURNING ` + returningVehicle

	vehicleDB, err := scanVehicle(r.querier.QueryRow(
		ctx,
		query,
		vehicleModifyDB.VehicleID,
		vehicleModifyDB.Name,
		vehicleModifyDB.VehicleType,
		vehicleModifyDB.Available,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fleet.ErrConflict
		}
		return nil, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return ToDomain(vehicleDB), nil
}

func (r *Repository) Update(ctx context.Context, vehicleModify entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyDB := FromDomainModify(&vehicleModify)

	builder := qb.
		Update("vehicles")

	// опциональные поля
	if vehicleModifyDB.Name != nil {
		builder = builder.Set("name", vehicleModifyDB.Name)
	}
	if vehicleModifyDB.VehicleType != nil {
		builder = builder.Set("vehicle_type", vehicleModifyDB.VehicleType)
	}
	if vehicleModifyDB.Available != nil {
		builder = builder.Set("available", vehicleModifyDB.Available)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"vehicle_id": vehicleModifyDB.VehicleID}).
		Suffix("RETURNING " + returningVehicle)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	vehicleDB, err := scanVehicle(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	return ToDomain(vehicleDB), nil
}

func (r *Repository) GetByID(ctx context.Context, vehicleID string) (*entities.Vehicle, error) {
	query := selectVehicles + `
	WHERE v.vehicle_id = $1
	GROUP BY v.id`

	vehicleDB, err := scanVehicle(r.querier.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(vehicleDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Vehicle, error) {
	query := selectVehicles + `
	GROUP BY v.id
	ORDER BY v.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}
	defer rows.Close()

	vehiclesDB, err := collectVehicles(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getall error: %w", err)
	}

	return ToDomainList(vehiclesDB), nil
}

func (r *Repository) GetAvailable(ctx context.Context) ([]entities.Vehicle, error) {
	query := selectVehicles + `
	WHERE v.available
	GROUP BY v.id
	ORDER BY v.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getavailable error: %w", err)
	}
	defer rows.Close()

	vehiclesDB, err := collectVehicles(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getavailable error: %w", err)
	}

	return ToDomainList(vehiclesDB), nil
}

func (r *Repository) SetAvailability(ctx context.Context, vehicleID string, available bool) (*entities.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET available = $2,
			updated_at = NOW()
		WHERE vehicle_id = $1
		RETURNING ` + returningVehicle

	vehicleDB, err := scanVehicle(r.querier.QueryRow(ctx, query, vehicleID, available))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("unexpected vehicle repository setavailability error: %w", err)
	}

	return ToDomain(vehicleDB), nil
}

// Claim атомарно занимает машину, условие available держит
// инвариант под конкурентными назначениями.
func (r *Repository) Claim(ctx context.Context, vehicleID string) (*entities.Vehicle, error) {
	query := `
		UPDATE vehicles
		SET available = FALSE,
			updated_at = NOW()
		WHERE vehicle_id = $1 AND available
		RETURNING ` + returningVehicle

	vehicleDB, err := scanVehicle(r.querier.QueryRow(ctx, query, vehicleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM vehicles WHERE vehicle_id = $1)`, vehicleID).
				Scan(&exists)
			if err != nil {
				return nil, fmt.Errorf("unexpected vehicle repository claim error: %w", err)
			}
			if !exists {
				return nil, assignment.ErrVehicleNotFound
			}
			return nil, assignment.ErrVehicleNotAvailable
		}
		return nil, fmt.Errorf("unexpected vehicle repository claim error: %w", err)
	}

	return ToDomain(vehicleDB), nil
}

// ReleaseIfIdle возвращает машину в парк, если активных заказов
// за ней не осталось.
func (r *Repository) ReleaseIfIdle(ctx context.Context, vehicleID string) (bool, error) {
	query := `
		UPDATE vehicles
		SET available = TRUE,
			updated_at = NOW()
		WHERE vehicle_id = $1
		AND NOT available
		AND NOT EXISTS (
			SELECT 1
			FROM orders o
			WHERE o.assigned_vehicle = vehicles.vehicle_id
			AND o.status IN ('assigned', 'in-transit')
		)
	`

	result, err := r.querier.Exec(ctx, query, vehicleID)
	if err != nil {
		return false, fmt.Errorf("unexpected vehicle repository releaseifidle error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseIdleUnavailable — массовая сверка для фоновой задачи.
func (r *Repository) ReleaseIdleUnavailable(ctx context.Context) (int64, error) {
	query := `
		UPDATE vehicles
		SET available = TRUE,
			updated_at = NOW()
		WHERE NOT available
		AND NOT EXISTS (
			SELECT 1
			FROM orders o
			WHERE o.assigned_vehicle = vehicles.vehicle_id
			AND o.status IN ('assigned', 'in-transit')
		)
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected vehicle repository release idle unavailable error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanVehicle(row pgx.Row) (*VehicleDB, error) {
	var vehicleDB VehicleDB
	err := row.Scan(
		&vehicleDB.ID,
		&vehicleDB.VehicleID,
		&vehicleDB.Name,
		&vehicleDB.VehicleType,
		&vehicleDB.Available,
		&vehicleDB.AssignedOrders,
		&vehicleDB.CreatedAt,
		&vehicleDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicleDB, nil
}

func collectVehicles(rows pgx.Rows) ([]VehicleDB, error) {
	vehiclesDB := make([]VehicleDB, 0, 8)
	for rows.Next() {
		vehicleDB, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		vehiclesDB = append(vehiclesDB, *vehicleDB)
	}
	return vehiclesDB, rows.Err()
}
