package handler

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/repository"
	"github.com/mmeshcher/smartfold-lms/internal/service"
	"github.com/mmeshcher/smartfold-lms/internal/validation"
)

type errorMapping struct {
	err    error
	status int
	msg    string
}

var errorMappings = []errorMapping{
	{errMalformedBody, http.StatusBadRequest, "Invalid request body"},
	{errInvalidID, http.StatusBadRequest, "Invalid id"},
	{errMissingValue, http.StatusBadRequest, "value is required"},
	{repository.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{repository.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrInvalidRole, http.StatusBadRequest, "Invalid role"},
	{service.ErrInvalidService, http.StatusBadRequest, "Invalid service type"},
	{service.ErrInvalidUnit, http.StatusBadRequest, "Invalid unit"},
	{service.ErrCustomerNotFound, http.StatusNotFound, "Customer not found"},
	{service.ErrInvalidOrderStatus, http.StatusBadRequest, "Invalid order status"},
	{repository.ErrOrderNotFound, http.StatusNotFound, "Order not found"},
	{service.ErrInvalidTaskStatus, http.StatusBadRequest, "Invalid task status"},
	{repository.ErrTaskNotFound, http.StatusNotFound, "Task not found"},
	{service.ErrInvalidPaymentStatus, http.StatusBadRequest, "Invalid payment status"},
	{repository.ErrPaymentNotFound, http.StatusNotFound, "Payment not found"},
	{service.ErrBlankBody, http.StatusBadRequest, "body is required"},
}

// writeError преобразует ошибку слоя сервиса в HTTP-ответ {"error": msg}.
// entity используется в сообщении о конфликте при удалении.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		writeMessage(w, r, http.StatusBadRequest, vErr.Error())
		return
	}

	if errors.Is(err, repository.ErrReferenced) {
		writeMessage(w, r, http.StatusConflict, entity+" is still referenced")
		return
	}

	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			writeMessage(w, r, m.status, m.msg)
			return
		}
	}

	h.logger.Error("request failed",
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	writeMessage(w, r, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
