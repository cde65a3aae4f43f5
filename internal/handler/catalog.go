package handler

import (
	"net/http"

	"github.com/mmeshcher/smartfold-lms/internal/catalog"
)

// ListServices возвращает справочник услуг.
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalog.Services())
}

// ListUnits возвращает справочник единиц измерения.
func (h *Handler) ListUnits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, catalog.Units())
}
