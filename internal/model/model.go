// Package model содержит доменные сущности back-office прачечной.
package model

import "time"

// Role определяет уровень доступа учётной записи.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole сопоставляет строку с ролью. Сравнение регистрозависимое.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleUser:
		return Role(s), true
	}
	return "", false
}

// User представляет учётную запись клиента или администратора.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// OrderStatus описывает этап обработки заказа.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusReady      OrderStatus = "READY"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// OrderStatuses возвращает все статусы заказа в порядке объявления.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusInProgress,
		OrderStatusReady,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// ParseOrderStatus сопоставляет строку со статусом заказа.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// LaundryOrder описывает заказ клиента на услугу прачечной.
type LaundryOrder struct {
	ID           int64
	CustomerID   int64
	CustomerName string
	ServiceType  string
	Quantity     float64
	Unit         string
	Price        float64
	Status       OrderStatus
	PickupDate   *Date
	DeliveryDate *Date
	Notes        string
}

// TaskStatus описывает этап выполнения внутренней задачи персонала.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "PENDING"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
	TaskStatusCancelled  TaskStatus = "CANCELLED"
)

// TaskStatuses возвращает все статусы задачи в порядке объявления.
func TaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusCompleted,
		TaskStatusCancelled,
	}
}

// ParseTaskStatus сопоставляет строку со статусом задачи.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	for _, st := range TaskStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Task — внутренняя задача персонала. Не связана с заказами и пользователями.
type Task struct {
	ID         int64
	Title      string
	AssignedTo string
	DueDate    *Date
	Price      float64
	Status     TaskStatus
	Notes      string
}

// PaymentStatus описывает состояние платежа.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// PaymentStatuses возвращает все статусы платежа в порядке объявления.
func PaymentStatuses() []PaymentStatus {
	return []PaymentStatus{
		PaymentStatusPending,
		PaymentStatusCompleted,
		PaymentStatusFailed,
		PaymentStatusRefunded,
	}
}

// ParsePaymentStatus сопоставляет строку со статусом платежа.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	for _, st := range PaymentStatuses() {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Payment описывает оплату по заказу.
type Payment struct {
	ID               int64
	OrderID          int64
	OrderServiceType string
	Amount           float64
	Method           string
	Status           PaymentStatus
	PaidAt           *LocalDateTime
}

// Message — сообщение от одного пользователя другому.
type Message struct {
	ID         int64
	FromUserID int64
	ToUserID   int64
	Body       string
	Timestamp  LocalDateTime
}
