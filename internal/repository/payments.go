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

const paymentSelect = `SELECT p.id, p.order_id, o.service_type, p.amount_cents, p.method, p.status, p.paid_at
	FROM payments p JOIN laundry_orders o ON o.id = p.order_id`

func scanPayment(row scanner) (*model.Payment, error) {
	var (
		p           model.Payment
		amountCents int64
		status      string
		paidAt      *time.Time
	)
	if err := row.Scan(&p.ID, &p.OrderID, &p.OrderServiceType, &amountCents, &p.Method, &status, &paidAt); err != nil {
		return nil, err
	}
	p.Amount = fromCents(amountCents)
	p.Status = model.PaymentStatus(status)
	p.PaidAt = dateTimeFrom(paidAt)
	return &p, nil
}

// CreatePayment сохраняет платёж по заказу. Время оплаты записывается как передано.
func (r *PostgresRepository) CreatePayment(ctx context.Context, p model.Payment) (*model.Payment, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO payments (order_id, amount_cents, method, status, paid_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		p.OrderID, toCents(p.Amount), p.Method, string(p.Status), dateTimeArg(p.PaidAt),
	).Scan(&id)
	if err != nil {
		if pgErrorCode(err) == pgerrcode.ForeignKeyViolation {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return r.GetPayment(ctx, id)
}

// GetPayment возвращает платёж по идентификатору.
func (r *PostgresRepository) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	var p *model.Payment
	err := r.withRetry(ctx, func() error {
		var err error
		p, err = scanPayment(r.pool.QueryRow(ctx, paymentSelect+` WHERE p.id = $1`, id))
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// ListPayments возвращает все платежи.
func (r *PostgresRepository) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return r.queryPayments(ctx, paymentSelect+` ORDER BY p.id`)
}

// ListPaymentsByStatus возвращает платежи в указанном статусе.
func (r *PostgresRepository) ListPaymentsByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	return r.queryPayments(ctx, paymentSelect+` WHERE p.status = $1 ORDER BY p.id`, string(status))
}

func (r *PostgresRepository) queryPayments(ctx context.Context, sql string, args ...any) ([]model.Payment, error) {
	var payments []model.Payment
	err := r.withRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, sql, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		payments = payments[:0]
		for rows.Next() {
			p, err := scanPayment(rows)
			if err != nil {
				return fmt.Errorf("scan payment: %w", err)
			}
			payments = append(payments, *p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("select payments: %w", err)
	}
	return payments, nil
}

// UpdatePaymentStatus меняет статус платежа. Время оплаты не трогает.
func (r *PostgresRepository) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Payment, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE payments SET status = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, ErrPaymentNotFound
	}
	return r.GetPayment(ctx, id)
}

// DeletePayment удаляет платёж.
func (r *PostgresRepository) DeletePayment(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
