package service

import (
	"context"
	"errors"

	"github.com/mmeshcher/smartfold-lms/internal/catalog"
	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
)

// NewOrder содержит данные для создания заказа. Пустой Status означает статус по умолчанию.
type NewOrder struct {
	CustomerID   int64
	ServiceType  string
	Quantity     float64
	Unit         string
	Price        float64
	PickupDate   *model.Date
	DeliveryDate *model.Date
	Notes        string
	Status       *string
}

// CreateOrder проверяет справочники, клиента и статус, затем сохраняет заказ.
func (s *Service) CreateOrder(ctx context.Context, in NewOrder) (*model.LaundryOrder, error) {
	if !catalog.IsValidService(in.ServiceType) {
		return nil, ErrInvalidService
	}
	if !catalog.IsValidUnit(in.Unit) {
		return nil, ErrInvalidUnit
	}

	if _, err := s.repo.GetUserByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}

	status := model.OrderStatusPending
	if in.Status != nil {
		st, ok := model.ParseOrderStatus(*in.Status)
		if !ok {
			return nil, ErrInvalidOrderStatus
		}
		status = st
	}

	o, err := s.repo.CreateOrder(ctx, model.LaundryOrder{
		CustomerID:   in.CustomerID,
		ServiceType:  in.ServiceType,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Price:        in.Price,
		Status:       status,
		PickupDate:   in.PickupDate,
		DeliveryDate: in.DeliveryDate,
		Notes:        in.Notes,
	})
	if err != nil {
		// клиент удалён между проверкой и вставкой
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return o, nil
}

// ListOrders возвращает заказы клиента или все заказы, если клиент не указан.
func (s *Service) ListOrders(ctx context.Context, customerID *int64) ([]model.LaundryOrder, error) {
	if customerID != nil {
		return s.repo.ListOrdersByCustomer(ctx, *customerID)
	}
	return s.repo.ListOrders(ctx)
}

// UpdateOrderStatus переводит заказ в любой статус. Таблица переходов не применяется.
func (s *Service) UpdateOrderStatus(ctx context.Context, id int64, value string) (*model.LaundryOrder, error) {
	if _, err := s.repo.GetOrder(ctx, id); err != nil {
		return nil, err
	}

	status, ok := model.ParseOrderStatus(value)
	if !ok {
		return nil, ErrInvalidOrderStatus
	}

	return s.repo.UpdateOrderStatus(ctx, id, status)
}

// DeleteOrder удаляет заказ.
func (s *Service) DeleteOrder(ctx context.Context, id int64) error {
	return s.repo.DeleteOrder(ctx, id)
}
