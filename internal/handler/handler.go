// Package handler содержит HTTP-обработчики REST API back-office прачечной.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/service"
	"github.com/mmeshcher/smartfold-lms/internal/validation"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	Ping(ctx context.Context) error

	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	SetUserRole(ctx context.Context, id int64, value string) (*model.User, error)
	DeleteUser(ctx context.Context, id int64) error

	CreateOrder(ctx context.Context, in service.NewOrder) (*model.LaundryOrder, error)
	ListOrders(ctx context.Context, customerID *int64) ([]model.LaundryOrder, error)
	UpdateOrderStatus(ctx context.Context, id int64, value string) (*model.LaundryOrder, error)
	DeleteOrder(ctx context.Context, id int64) error

	CreateTask(ctx context.Context, in service.NewTask) (*model.Task, error)
	ListTasks(ctx context.Context, status *string) ([]model.Task, error)
	UpdateTaskStatus(ctx context.Context, id int64, value string) (*model.Task, error)
	DeleteTask(ctx context.Context, id int64) error

	CreatePayment(ctx context.Context, in service.NewPayment) (*model.Payment, error)
	ListPayments(ctx context.Context, status *string) ([]model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id int64, value string) (*model.Payment, error)
	DeletePayment(ctx context.Context, id int64) error

	SendMessage(ctx context.Context, fromUserID, toUserID int64, body string) (*model.Message, error)
	GetThread(ctx context.Context, withUserID int64, currentUserID *int64) ([]model.Message, error)
}

// Handler реализует HTTP-обработчики API.
type Handler struct {
	service Service
	logger  *zap.Logger
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: s,
		logger:  logger,
	}
}

var (
	errMalformedBody = errors.New("malformed request body")
	errInvalidID     = errors.New("invalid path id")
	errMissingValue  = errors.New("missing value parameter")
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

func writeMessage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Error: msg})
}

// decodeRequest читает JSON-тело и проверяет его по тегам validate.
func decodeRequest(r *http.Request, v any) error {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		return errMalformedBody
	}
	return validation.Struct(v)
}

// pathID разбирает числовой идентификатор из параметра маршрута.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// requiredValue возвращает обязательный параметр value запросов смены статуса или роли.
func requiredValue(r *http.Request) (string, error) {
	v := r.URL.Query().Get("value")
	if v == "" {
		return "", errMissingValue
	}
	return v, nil
}

// queryID разбирает необязательный числовой параметр запроса.
func queryID(r *http.Request, name string) (*int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

// queryString возвращает необязательный строковый параметр запроса.
func queryString(r *http.Request, name string) *string {
	if !r.URL.Query().Has(name) {
		return nil
	}
	v := r.URL.Query().Get(name)
	return &v
}
