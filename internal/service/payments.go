package service

import (
	"context"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

// NewPayment содержит данные для создания платежа.
type NewPayment struct {
	OrderID int64
	Amount  float64
	Method  string
	Status  *string
	PaidAt  *model.LocalDateTime
}

// CreatePayment сохраняет платёж по существующему заказу.
// PaidAt записывается как передан, даже для статуса COMPLETED время не проставляется автоматически.
func (s *Service) CreatePayment(ctx context.Context, in NewPayment) (*model.Payment, error) {
	if _, err := s.repo.GetOrder(ctx, in.OrderID); err != nil {
		return nil, err
	}

	status := model.PaymentStatusPending
	if in.Status != nil {
		st, ok := model.ParsePaymentStatus(*in.Status)
		if !ok {
			return nil, ErrInvalidPaymentStatus
		}
		status = st
	}

	return s.repo.CreatePayment(ctx, model.Payment{
		OrderID: in.OrderID,
		Amount:  in.Amount,
		Method:  in.Method,
		Status:  status,
		PaidAt:  in.PaidAt,
	})
}

// ListPayments возвращает платежи, при необходимости только в указанном статусе.
func (s *Service) ListPayments(ctx context.Context, status *string) ([]model.Payment, error) {
	if status == nil {
		return s.repo.ListPayments(ctx)
	}
	st, ok := model.ParsePaymentStatus(*status)
	if !ok {
		return nil, ErrInvalidPaymentStatus
	}
	return s.repo.ListPaymentsByStatus(ctx, st)
}

// UpdatePaymentStatus переводит платёж в указанный статус.
func (s *Service) UpdatePaymentStatus(ctx context.Context, id int64, value string) (*model.Payment, error) {
	if _, err := s.repo.GetPayment(ctx, id); err != nil {
		return nil, err
	}

	status, ok := model.ParsePaymentStatus(value)
	if !ok {
		return nil, ErrInvalidPaymentStatus
	}

	return s.repo.UpdatePaymentStatus(ctx, id, status)
}

// DeletePayment удаляет платёж.
func (s *Service) DeletePayment(ctx context.Context, id int64) error {
	return s.repo.DeletePayment(ctx, id)
}
