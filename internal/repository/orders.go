package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

const orderSelect = `SELECT o.id, o.customer_id, u.name, o.service_type, o.quantity, o.unit,
	o.price_cents, o.status, o.pickup_date, o.delivery_date, o.notes
	FROM laundry_orders o JOIN users u ON u.id = o.customer_id`

func scanOrder(row scanner) (*model.LaundryOrder, error) {
	var (
		o                    model.LaundryOrder
		priceCents           int64
		status               string
		pickup, deliveryDate *time.Time
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.ServiceType, &o.Quantity, &o.Unit,
		&priceCents, &status, &pickup, &deliveryDate, &o.Notes)
	if err != nil {
		return nil, err
	}
	o.Price = fromCents(priceCents)
	o.Status = model.OrderStatus(status)
	o.PickupDate = dateFrom(pickup)
	o.DeliveryDate = dateFrom(deliveryDate)
	return &o, nil
}

// CreateOrder сохраняет заказ и возвращает его вместе с именем клиента.
func (r *PostgresRepository) CreateOrder(ctx context.Context, o model.LaundryOrder) (*model.LaundryOrder, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO laundry_orders
		 (customer_id, service_type, quantity, unit, price_cents, status, pickup_date, delivery_date, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		o.CustomerID, o.ServiceType, o.Quantity, o.Unit, toCents(o.Price), string(o.Status),
		dateArg(o.PickupDate), dateArg(o.DeliveryDate), o.Notes,
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return r.GetOrder(ctx, id)
}

// GetOrder возвращает заказ по идентификатору.
func (r *PostgresRepository) GetOrder(ctx context.Context, id int64) (*model.LaundryOrder, error) {
	var o *model.LaundryOrder
	err := r.withRetry(ctx, func() error {
		var err error
		o, err = scanOrder(r.pool.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return o, nil
}

// ListOrders возвращает все заказы.
func (r *PostgresRepository) ListOrders(ctx context.Context) ([]model.LaundryOrder, error) {
	return r.queryOrders(ctx, orderSelect+` ORDER BY o.id`)
}

// ListOrdersByCustomer возвращает заказы одного клиента.
func (r *PostgresRepository) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]model.LaundryOrder, error) {
	return r.queryOrders(ctx, orderSelect+` WHERE o.customer_id = $1 ORDER BY o.id`, customerID)
}

func (r *PostgresRepository) queryOrders(ctx context.Context, sql string, args ...any) ([]model.LaundryOrder, error) {
	var orders []model.LaundryOrder
	err := r.withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		orders = orders[:0]
		for rows.Next() {
			o, err := scanOrder(rows)
			if err != nil {
				return fmt.Errorf("scan order: %w", err)
			}
			orders = append(orders, *o)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("select orders: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus меняет статус заказа.
func (r *PostgresRepository) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.LaundryOrder, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE laundry_orders SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrOrderNotFound
	}
	return r.GetOrder(ctx, id)
}

// DeleteOrder удаляет заказ. Заказ с платежами удалить нельзя.
func (r *PostgresRepository) DeleteOrder(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM laundry_orders WHERE id = $1`, id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("%w: order %d", ErrReferenced, id)
		}
		return fmt.Errorf("delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}
