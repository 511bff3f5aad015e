package driver

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

// активные заказы водителя собираются из orders, своего счётчика у drivers нет
const selectDrivers = `
	SELECT d.id, d.driver_id, d.name, d.phone, d.status,
		COALESCE(ARRAY_AGG(o.order_id ORDER BY o.id) FILTER (WHERE o.order_id IS NOT NULL), '{}'),
		d.created_at, d.updated_at
	FROM drivers d
	LEFT JOIN orders o
		ON o.assigned_driver = d.driver_id
		AND o.status IN ('assigned', 'in-transit')`

const returningDriver = `id, driver_id, name, phone, status,
		(SELECT COALESCE(ARRAY_AGG(o.order_id ORDER BY o.id), '{}')
			FROM orders o
			WHERE o.assigned_driver = drivers.driver_id
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

func (r *Repository) Create(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	driverModifyDB := FromDomainModify(&driverModify)

	query := `
		INSERT INTO drivers (driver_id, name, phone, status)
		VALUES ($1, $2, COALESCE($3, ''), COALESCE($4, 'available'))
		RETURNING ` + returningDriver

	driverDB, err := scanDriver(r.querier.QueryRow(
		ctx,
		query,
		driverModifyDB.DriverID,
		driverModifyDB.Name,
		driverModifyDB.Phone,
		driverModifyDB.Status,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, fleet.ErrConflict
		}
		return nil, fmt.Errorf("unexpected driver repository create error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) Update(ctx context.Context, driverModify entities.DriverModify) (*entities.Driver, error) {
	driverModifyDB := FromDomainModify(&driverModify)

	builder := qb.
		Update("drivers")

	// опциональные поля
	if driverModifyDB.Name != nil {
		builder = builder.Set("name", driverModifyDB.Name)
	}
	if driverModifyDB.Phone != nil {
		builder = builder.Set("phone", driverModifyDB.Phone)
	}
	if driverModifyDB.Status != nil {
		builder = builder.Set("status", driverModifyDB.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"driver_id": driverModifyDB.DriverID}).
		Suffix("RETURNING " + returningDriver)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository update error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) GetByID(ctx context.Context, driverID string) (*entities.Driver, error) {
	query := selectDrivers + `
	WHERE d.driver_id = $1
	GROUP BY d.id`

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository getbyid error: %w", err)
	}

	return ToDomain(driverDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Driver, error) {
	query := selectDrivers + `
	GROUP BY d.id
	ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}
	defer rows.Close()

	driversDB, err := collectDrivers(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getall error: %w", err)
	}

	return ToDomainList(driversDB), nil
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.DriverStatusType) ([]entities.Driver, error) {
	query := selectDrivers + `
	WHERE d.status = $1
	GROUP BY d.id
	ORDER BY d.id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbystatus error: %w", err)
	}
	defer rows.Close()

	driversDB, err := collectDrivers(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected driver repository getbystatus error: %w", err)
	}

	return ToDomainList(driversDB), nil
}

func (r *Repository) SetStatus(ctx context.Context, driverID string, status entities.DriverStatusType) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET status = $2,
			updated_at = NOW()
		WHERE driver_id = $1
		RETURNING ` + returningDriver

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, driverID, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fleet.ErrDriverNotFound
		}
		return nil, fmt.Errorf("unexpected driver repository setstatus error: %w", err)
	}

	return ToDomain(driverDB), nil
}

// Claim атомарно занимает водителя: условие status = 'available'
// не даёт двум назначениям забрать его одновременно.
func (r *Repository) Claim(ctx context.Context, driverID string) (*entities.Driver, error) {
	query := `
		UPDATE drivers
		SET status = 'busy',
			updated_at = NOW()
		WHERE driver_id = $1 AND status = 'available'
		RETURNING ` + returningDriver

	driverDB, err := scanDriver(r.querier.QueryRow(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			var exists bool
			err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM drivers WHERE driver_id = $1)`, driverID).
				Scan(&exists)
			if err != nil {
				return nil, fmt.Errorf("unexpected driver repository claim error: %w", err)
			}
			if !exists {
				return nil, assignment.ErrDriverNotFound
			}
			return nil, assignment.ErrDriverNotAvailable
		}
		return nil, fmt.Errorf("unexpected driver repository claim error: %w", err)
	}

	return ToDomain(driverDB), nil
}

// ReleaseIfIdle возвращает busy-водителя в available, если активных
// заказов за ним не осталось. Правило симметрично для всех путей снятия.
func (r *Repository) ReleaseIfIdle(ctx context.Context, driverID string) (bool, error) {
	query := `
		UPDATE drivers
		SET status = 'available',
			updated_at = NOW()
		WHERE driver_id = $1
		AND status = 'busy'
		AND NOT EXISTS (
			SELECT 1
			FROM orders o
			WHERE o.assigned_driver = drivers.driver_id
			AND o.status IN ('assigned', 'in-transit')
		)
	`

	result, err := r.querier.Exec(ctx, query, driverID)
	if err != nil {
		return false, fmt.Errorf("unexpected driver repository releaseifidle error: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ReleaseIdleBusy — массовая сверка для фоновой задачи.
func (r *Repository) ReleaseIdleBusy(ctx context.Context) (int64, error) {
	query := `
		UPDATE drivers
		SET status = 'available',
			updated_at = NOW()
		WHERE status = 'busy'
		AND NOT EXISTS (
			SELECT 1
			FROM orders o
			WHERE o.assigned_driver = drivers.driver_id
			AND o.status IN ('assigned', 'in-transit')
		)
	`

	result, err := r.querier.Exec(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("unexpected driver repository release idle busy error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanDriver(row pgx.Row) (*DriverDB, error) {
	var driverDB DriverDB
	err := row.Scan(
		&driverDB.ID,
		&driverDB.DriverID,
		&driverDB.Name,
		&driverDB.Phone,
		&driverDB.Status,
		&driverDB.AssignedOrders,
		&driverDB.CreatedAt,
		&driverDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &driverDB, nil
}

func collectDrivers(rows pgx.Rows) ([]DriverDB, error) {
	driversDB := make([]DriverDB, 0, 8)
	for rows.Next() {
		driverDB, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		driversDB = append(driversDB, *driverDB)
	}
	return driversDB, rows.Err()
}
