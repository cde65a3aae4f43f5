package service

import (
	"context"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

// NewTask содержит данные для создания задачи персонала.
type NewTask struct {
	Title      string
	AssignedTo string
	DueDate    *model.Date
	Price      float64
	Notes      string
	Status     *string
}

// CreateTask сохраняет задачу. Исполнитель — свободная строка и не проверяется.
func (s *Service) CreateTask(ctx context.Context, in NewTask) (*model.Task, error) {
	status := model.TaskStatusPending
	if in.Status != nil {
		st, ok := model.ParseTaskStatus(*in.Status)
		if !ok {
			return nil, ErrInvalidTaskStatus
		}
		status = st
	}

	return s.repo.CreateTask(ctx, model.Task{
		Title:      in.Title,
		AssignedTo: in.AssignedTo,
		DueDate:    in.DueDate,
		Price:      in.Price,
		Status:     status,
		Notes:      in.Notes,
	})
}

// ListTasks возвращает задачи, при необходимости только в указанном статусе.
func (s *Service) ListTasks(ctx context.Context, status *string) ([]model.Task, error) {
	if status == nil {
		return s.repo.ListTasks(ctx)
	}
	st, ok := model.ParseTaskStatus(*status)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}
	return s.repo.ListTasksByStatus(ctx, st)
}

// UpdateTaskStatus переводит задачу в указанный статус.
func (s *Service) UpdateTaskStatus(ctx context.Context, id int64, value string) (*model.Task, error) {
	if _, err := s.repo.GetTask(ctx, id); err != nil {
		return nil, err
	}

	status, ok := model.ParseTaskStatus(value)
	if !ok {
		return nil, ErrInvalidTaskStatus
	}

	return s.repo.UpdateTaskStatus(ctx, id, status)
}

// DeleteTask удаляет задачу.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	return s.repo.DeleteTask(ctx, id)
}
