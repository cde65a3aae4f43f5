package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

type orderRequest struct {
	CustomerID   *int64      `json:"customerId" validate:"required"`
	ServiceType  string      `json:"serviceType" validate:"notblank"`
	Quantity     *float64    `json:"quantity" validate:"required"`
	Unit         string      `json:"unit" validate:"notblank"`
	Price        *float64    `json:"price" validate:"required,gte=0"`
	PickupDate   *model.Date `json:"pickupDate"`
	DeliveryDate *model.Date `json:"deliveryDate"`
	Notes        string      `json:"notes"`
	Status       *string     `json:"status"`
}

// ListOrders возвращает заказы; параметр userId ограничивает выборку одним клиентом.
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := queryID(r, "userId")
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "Invalid userId")
		return
	}

	orders, err := h.service.ListOrders(r.Context(), customerID)
	if err != nil {
		h.writeError(w, r, err, "Order")
		return
	}
	writeJSON(w, r, http.StatusOK, mapSlice(orders, newOrderResponse))
}

// CreateOrder создаёт заказ клиента.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "Order")
		return
	}

	o, err := h.service.CreateOrder(r.Context(), service.NewOrder{
		CustomerID:   *req.CustomerID,
		ServiceType:  req.ServiceType,
		Quantity:     *req.Quantity,
		Unit:         req.Unit,
		Price:        *req.Price,
		PickupDate:   req.PickupDate,
		DeliveryDate: req.DeliveryDate,
		Notes:        req.Notes,
		Status:       req.Status,
	})
	if err != nil {
		h.writeError(w, r, err, "Order")
		return
	}

	h.logger.Debug("order created", zap.Int64("orderID", o.ID), zap.Int64("customerID", o.CustomerID))
	writeJSON(w, r, http.StatusCreated, newOrderResponse(o))
}

// UpdateOrderStatus переводит заказ в статус из параметра value.
func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Order")
		return
	}

	value, err := requiredValue(r)
	if err != nil {
		h.writeError(w, r, err, "Order")
		return
	}

	o, err := h.service.UpdateOrderStatus(r.Context(), id, value)
	if err != nil {
		h.writeError(w, r, err, "Order")
		return
	}
	writeJSON(w, r, http.StatusOK, newOrderResponse(o))
}

// DeleteOrder удаляет заказ.
func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Order")
		return
	}

	if err := h.service.DeleteOrder(r.Context(), id); err != nil {
		h.writeError(w, r, err, "Order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
