package handler

import (
	"net/http"
)

type messageRequest struct {
	FromUserID *int64 `json:"fromUserId" validate:"required"`
	ToUserID   *int64 `json:"toUserId" validate:"required"`
	Body       string `json:"body" validate:"notblank"`
}

// GetMessages возвращает переписку с пользователем withUserId.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	withUserID, ok := queryID(r, "withUserId")
	if !ok || withUserID == nil {
		writeMessage(w, r, http.StatusBadRequest, "withUserId is required")
		return
	}
	currentUserID, ok := queryID(r, "currentUserId")
	if !ok {
		writeMessage(w, r, http.StatusBadRequest, "Invalid currentUserId")
		return
	}

	msgs, err := h.service.GetThread(r.Context(), *withUserID, currentUserID)
	if err != nil {
		h.writeError(w, r, err, "Message")
		return
	}
	writeJSON(w, r, http.StatusOK, mapSlice(msgs, newMessageResponse))
}

// SendMessage сохраняет новое сообщение.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "Message")
		return
	}

	m, err := h.service.SendMessage(r.Context(), *req.FromUserID, *req.ToUserID, req.Body)
	if err != nil {
		h.writeError(w, r, err, "Message")
		return
	}
	writeJSON(w, r, http.StatusCreated, newMessageResponse(m))
}
