package handler

import (
	"net/http"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

type taskRequest struct {
	Title      string      `json:"title" validate:"notblank"`
	AssignedTo string      `json:"assignedTo"`
	DueDate    *model.Date `json:"dueDate"`
	Price      *float64    `json:"price" validate:"omitempty,gte=0"`
	Notes      string      `json:"notes"`
	Status     *string     `json:"status"`
}

// ListTasks возвращает задачи; параметр status фильтрует по статусу.
func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.ListTasks(r.Context(), queryString(r, "status"))
	if err != nil {
		h.writeError(w, r, err, "Task")
		return
	}
	writeJSON(w, r, http.StatusOK, mapSlice(tasks, newTaskResponse))
}

// CreateTask создаёт задачу персонала.
func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeRequest(r, &req); err != nil {
		h.writeError(w, r, err, "Task")
		return
	}

	in := service.NewTask{
		Title:      req.Title,
		AssignedTo: req.AssignedTo,
		DueDate:    req.DueDate,
		Notes:      req.Notes,
		Status:     req.Status,
	}
	if req.Price != nil {
		in.Price = *req.Price
	}

	t, err := h.service.CreateTask(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err, "Task")
		return
	}
	writeJSON(w, r, http.StatusCreated, newTaskResponse(t))
}

// UpdateTaskStatus переводит задачу в статус из параметра value.
func (h *Handler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Task")
		return
	}

	value, err := requiredValue(r)
	if err != nil {
		h.writeError(w, r, err, "Task")
		return
	}

	t, err := h.service.UpdateTaskStatus(r.Context(), id, value)
	if err != nil {
		h.writeError(w, r, err, "Task")
		return
	}
	writeJSON(w, r, http.StatusOK, newTaskResponse(t))
}

// DeleteTask удаляет задачу.
func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, errInvalidID, "Task")
		return
	}

	if err := h.service.DeleteTask(r.Context(), id); err != nil {
		h.writeError(w, r, err, "Task")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
