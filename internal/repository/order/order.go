package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"fleet/internal/entities"
	"fleet/internal/repository"
	"fleet/internal/service/assignment"
	serviceorder "fleet/internal/service/order"
)

const orderColumns = `id, order_id, status, priority, service_type, packages, total_amount, location,
		assigned_driver, assigned_vehicle, assigned_route, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModify)

	query := `
		INSERT INTO orders (order_id, status, priority, service_type, packages, total_amount, location)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 0), $7)
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyDB.OrderID,
		orderModifyDB.Status,
		orderModifyDB.Priority,
		orderModifyDB.ServiceType,
		orderModifyDB.Packages,
		orderModifyDB.TotalAmount,
		orderModifyDB.Location,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, serviceorder.ErrOrderAlreadyExists
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = $1`

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) GetByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbystatus error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

// GetOpenByIDs отдаёт только open-заказы из списка, в порядке входного списка.
func (r *Repository) GetOpenByIDs(ctx context.Context, orderIDs []string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE order_id = ANY($1) AND status = 'open'
		ORDER BY array_position($1, order_id)`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getopenbyids error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getopenbyids error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

// ListActiveByDriver: активные заказы — это assigned и in-transit.
func (r *Repository) ListActiveByDriver(ctx context.Context, driverID string) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE assigned_driver = $1 AND status IN ('assigned', 'in-transit')
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listactivebydriver error: %w", err)
	}
	defer rows.Close()

	ordersDB, err := collectOrders(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository listactivebydriver error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = $2,
			updated_at = NOW()
		WHERE order_id = $1
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, serviceorder.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository updatestatus error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// Claim атомарно забирает open-заказ: условие status = 'open' держит
// инвариант и под конкурентными назначениями.
func (r *Repository) Claim(ctx context.Context, orderID, driverID, vehicleID string, routeID *string) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = 'assigned',
			assigned_driver = $2,
			assigned_vehicle = $3,
			assigned_route = $4,
			updated_at = NOW()
		WHERE order_id = $1 AND status = 'open'
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, driverID, vehicleID, routeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, orderID, assignment.ErrOrderNotOpen)
		}
		return nil, fmt.Errorf("unexpected order repository claim error: %w", err)
	}

	return ToDomain(orderDB), nil
}

// Release возвращает заказ в open и срезает поля назначения. Delivered
// попадает в условие из-за отмены маршрута: она сбрасывает и уже
// доставленные заказы.
func (r *Repository) Release(ctx context.Context, orderID string) (*entities.Order, error) {
	query := `
		UPDATE orders
		SET status = 'open',
			assigned_driver = NULL,
			assigned_vehicle = NULL,
			assigned_route = NULL,
			updated_at = NOW()
		WHERE order_id = $1 AND status IN ('assigned', 'in-transit', 'delivered')
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMiss(ctx, orderID, assignment.ErrOrderNotAssigned)
		}
		return nil, fmt.Errorf("unexpected order repository release error: %w", err)
	}

	return ToDomain(orderDB), nil
}

func (r *Repository) AppendStatusHistory(ctx context.Context, orderID string, event entities.OrderStatusEvent) error {
	query := `
		INSERT INTO order_status_history (order_id, status, notes, created_at)
		SELECT id, $2, $3, $4
		FROM orders
		WHERE order_id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, event.Status.String(), event.Notes, event.Timestamp)
	if err != nil {
		return fmt.Errorf("unexpected order repository append history error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return serviceorder.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) GetStatusHistory(ctx context.Context, orderID string) ([]entities.OrderStatusEvent, error) {
	query := `
		SELECT h.status, h.notes, h.created_at
		FROM order_status_history h
		JOIN orders o ON o.id = h.order_id
		WHERE o.order_id = $1
		ORDER BY h.created_at, h.id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.OrderStatusEvent, 0, 8)
	for rows.Next() {
		var eventDB StatusEventDB
		err := rows.Scan(&eventDB.Status, &eventDB.Notes, &eventDB.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
		}
		events = append(events, ToEventDomain(&eventDB))
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}

	return events, nil
}

// classifyMiss различает "заказа нет" и "заказ не в том статусе"
// после условного UPDATE, не вернувшего строк.
func (r *Repository) classifyMiss(ctx context.Context, orderID string, wrongStatusErr error) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE order_id = $1)`, orderID).
		Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected order repository classify error: %w", err)
	}

	if !exists {
		return assignment.ErrOrderNotFound
	}
	return wrongStatusErr
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.OrderID,
		&orderDB.Status,
		&orderDB.Priority,
		&orderDB.ServiceType,
		&orderDB.Packages,
		&orderDB.TotalAmount,
		&orderDB.Location,
		&orderDB.AssignedDriver,
		&orderDB.AssignedVehicle,
		&orderDB.AssignedRoute,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

func collectOrders(rows pgx.Rows) ([]OrderDB, error) {
	ordersDB := make([]OrderDB, 0, 8)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		ordersDB = append(ordersDB, *orderDB)
	}
	return ordersDB, rows.Err()
}
