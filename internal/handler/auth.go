package handler

import (
	"net/http"
)

type registerRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// Register обрабатывает регистрацию нового клиента.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "")
		return
	}

	u, err := h.service.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	writeJSON(w, r, http.StatusCreated, newUserResponse(u))
}

// Login проверяет учётные данные и возвращает профиль пользователя.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "")
		return
	}

	u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(w, r, err, "")
		return
	}

	writeJSON(w, r, http.StatusOK, newUserResponse(u))
}
