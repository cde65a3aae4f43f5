package handler

import (
	"net/http"
)

// ListUsers возвращает все учётные записи.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		h.writeError(w, r, err, "User")
		return
	}
	writeJSON(w, r, http.StatusOK, mapSlice(users, newUserResponse))
}

// SetUserRole меняет роль пользователя на значение из параметра value.
func (h *Handler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "User")
		return
	}

	value, err := requiredValue(r)
	if err != nil {
		h.writeError(w, r, err, "User")
		return
	}

	u, err := h.service.SetUserRole(r.Context(), id, value)
	if err != nil {
		h.writeError(w, r, err, "User")
		return
	}
	writeJSON(w, r, http.StatusOK, newUserResponse(u))
}

// DeleteUser удаляет учётную запись.
func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "User")
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		h.writeError(w, r, err, "User")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
