// Package service реализует бизнес-логику back-office прачечной.
package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidRole возвращается, если строка не соответствует ни одной роли.
	ErrInvalidRole = errors.New("invalid role")
	// ErrInvalidService возвращается, если услуги нет в справочнике.
	ErrInvalidService = errors.New("invalid service type")
	// ErrInvalidUnit возвращается, если единицы измерения нет в справочнике.
	ErrInvalidUnit = errors.New("invalid unit")
	// ErrCustomerNotFound возвращается, если клиент заказа не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrInvalidOrderStatus возвращается при неизвестном статусе заказа.
	ErrInvalidOrderStatus = errors.New("invalid order status")
	// ErrInvalidTaskStatus возвращается при неизвестном статусе задачи.
	ErrInvalidTaskStatus = errors.New("invalid task status")
	// ErrInvalidPaymentStatus возвращается при неизвестном статусе платежа.
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	// ErrBlankBody возвращается при попытке отправить пустое сообщение.
	ErrBlankBody = errors.New("message body is required")
)

// Repository описывает контракт доступа к данным, используемый сервисом.
type Repository interface {
	Close() error
	Ping(ctx context.Context) error

	CreateUser(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	GetUserByID(ctx context.Context, id int64) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	CountUsers(ctx context.Context) (int64, error)
	UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, o model.LaundryOrder) (*model.LaundryOrder, error)
	GetOrder(ctx context.Context, id int64) (*model.LaundryOrder, error)
	ListOrders(ctx context.Context) ([]model.LaundryOrder, error)
	ListOrdersByCustomer(ctx context.Context, customerID int64) ([]model.LaundryOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.LaundryOrder, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateTask(ctx context.Context, t model.Task) (*model.Task, error)
	GetTask(ctx context.Context, id int64) (*model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	ListTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	CreatePayment(ctx context.Context, p model.Payment) (*model.Payment, error)
	GetPayment(ctx context.Context, id int64) (*model.Payment, error)
	ListPayments(ctx context.Context) ([]model.Payment, error)
	ListPaymentsByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Payment, error)
	DeletePayment(ctx context.Context, id int64) error

	CreateMessage(ctx context.Context, fromUserID, toUserID int64, body string, at time.Time) (*model.Message, error)
	GetConversation(ctx context.Context, userA, userB int64) ([]model.Message, error)
	GetMessagesByUser(ctx context.Context, userID int64) ([]model.Message, error)
}

// Service содержит бизнес-логику back-office прачечной.
type Service struct {
	repo       Repository
	bcryptCost int
	now        func() time.Time
}

// NewService создаёт сервис поверх репозитория. Нулевая стоимость bcrypt заменяется значением по умолчанию.
func NewService(repo Repository, bcryptCost int) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		now:        time.Now,
	}
}

// Ping проверяет доступность хранилища.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Close закрывает ресурсы сервиса.
func (s *Service) Close() error {
	if s.repo != nil {
		return s.repo.Close()
	}
	return nil
}
