package handler

import (
	"net/http"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

type paymentRequest struct {
	OrderID *int64               `json:"orderId" validate:"required"`
	Amount  *float64             `json:"amount" validate:"required,gte=0"`
	Method  string               `json:"method"`
	Status  *string              `json:"status"`
	PaidAt  *model.LocalDateTime `json:"paidAt"`
}

// ListPayments возвращает платежи; параметр status фильтрует по статусу.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context(), queryString(r, "status"))
	if err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}
	writeJSON(w, r, http.StatusOK, mapSlice(payments, newPaymentResponse))
}

// CreatePayment регистрирует платёж по заказу.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}

	p, err := h.service.CreatePayment(r.Context(), service.NewPayment{
		OrderID: *req.OrderID,
		Amount:  *req.Amount,
		Method:  req.Method,
		Status:  req.Status,
		PaidAt:  req.PaidAt,
	})
	if err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}
	writeJSON(w, r, http.StatusCreated, newPaymentResponse(p))
}

// UpdatePaymentStatus переводит платёж в статус из параметра value.
func (h *Handler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Payment")
		return
	}

	value, err := requiredValue(r)
	if err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}

	p, err := h.service.UpdatePaymentStatus(r.Context(), id, value)
	if err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}
	writeJSON(w, r, http.StatusOK, newPaymentResponse(p))
}

// DeletePayment удаляет платёж.
func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Payment")
		return
	}

	if err := h.service.DeletePayment(r.Context(), id); err != nil {
		h.writeError(w, r, err, "Payment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
