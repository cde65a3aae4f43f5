package handler

import "github.com/mmeshcher/smartfold-lms/internal/model"

type userResponse struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Role  model.Role `json:"role"`
}

func newUserResponse(u *model.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

type orderResponse struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customerId"`
	CustomerName string            `json:"customerName"`
	ServiceType  string            `json:"serviceType"`
	Quantity     float64           `json:"quantity"`
	Unit         string            `json:"unit"`
	Price        float64           `json:"price"`
	Status       model.OrderStatus `json:"status"`
	PickupDate   *model.Date       `json:"pickupDate"`
	DeliveryDate *model.Date       `json:"deliveryDate"`
	Notes        string            `json:"notes"`
}

func newOrderResponse(o *model.LaundryOrder) orderResponse {
	return orderResponse{
		ID:           o.ID,
		CustomerID:   o.CustomerID,
		CustomerName: o.CustomerName,
		ServiceType:  o.ServiceType,
		Quantity:     o.Quantity,
		Unit:         o.Unit,
		Price:        o.Price,
		Status:       o.Status,
		PickupDate:   o.PickupDate,
		DeliveryDate: o.DeliveryDate,
		Notes:        o.Notes,
	}
}

type taskResponse struct {
	ID         int64            `json:"id"`
	Title      string           `json:"title"`
	AssignedTo string           `json:"assignedTo"`
	DueDate    *model.Date      `json:"dueDate"`
	Price      float64          `json:"price"`
	Status     model.TaskStatus `json:"status"`
	Notes      string           `json:"notes"`
}

func newTaskResponse(t *model.Task) taskResponse {
	return taskResponse{
		ID:         t.ID,
		Title:      t.Title,
		AssignedTo: t.AssignedTo,
		DueDate:    t.DueDate,
		Price:      t.Price,
		Status:     t.Status,
		Notes:      t.Notes,
	}
}

type paymentResponse struct {
	ID               int64                `json:"id"`
	OrderID          int64                `json:"orderId"`
	OrderServiceType string               `json:"orderServiceType"`
	Amount           float64              `json:"amount"`
	Method           string               `json:"method"`
	Status           model.PaymentStatus  `json:"status"`
	PaidAt           *model.LocalDateTime `json:"paidAt"`
}

func newPaymentResponse(p *model.Payment) paymentResponse {
	return paymentResponse{
		ID:               p.ID,
		OrderID:          p.OrderID,
		OrderServiceType: p.OrderServiceType,
		Amount:           p.Amount,
		Method:           p.Method,
		Status:           p.Status,
		PaidAt:           p.PaidAt,
	}
}

type messageResponse struct {
	ID         int64               `json:"id"`
	FromUserID int64               `json:"fromUserId"`
	ToUserID   int64               `json:"toUserId"`
	Body       string              `json:"body"`
	Timestamp  model.LocalDateTime `json:"timestamp"`
}

func newMessageResponse(m *model.Message) messageResponse {
	return messageResponse{
		ID:         m.ID,
		FromUserID: m.FromUserID,
		ToUserID:   m.ToUserID,
		Body:       m.Body,
		Timestamp:  m.Timestamp,
	}
}

// mapSlice преобразует список сущностей в список ответов; пустой список сериализуется как [].
func mapSlice[T, R any](items []T, fn func(*T) R) []R {
	res := make([]R, 0, len(items))
	for i := range items {
		res = append(res, fn(&items[i]))
	}
	return res
}
