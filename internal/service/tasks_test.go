package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
)

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	due, err := model.ParseDate("2025-11-01")
	require.NoError(t, err)

	task, err := svc.CreateTask(ctx, NewTask{Title: "Sort bedding", AssignedTo: "Saman", DueDate: &due, Price: 250})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusPending, task.Status)
	assert.Equal(t, "2025-11-01", task.DueDate.String())

	_, err = svc.CreateTask(ctx, NewTask{Title: "Iron shirts", AssignedTo: "Ishara", Status: strPtr("DONE")})
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestListTasksByStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	for _, st := range []string{"PENDING", "COMPLETED", "COMPLETED", "CANCELLED"} {
		_, err := svc.CreateTask(ctx, NewTask{Title: "t", AssignedTo: "Dilani", Status: strPtr(st)})
		require.NoError(t, err)
	}

	all, err := svc.ListTasks(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	completed, err := svc.ListTasks(ctx, strPtr("COMPLETED"))
	require.NoError(t, err)
	assert.Len(t, completed, 2)

	_, err = svc.ListTasks(ctx, strPtr("completed"))
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
}

func TestUpdateAndDeleteTask(t *testing.T) {
	ctx := context.Background()
	svc, repo := newTestService()

	task, err := svc.CreateTask(ctx, NewTask{Title: "Fold towels", AssignedTo: "Pasan"})
	require.NoError(t, err)

	_, err = svc.UpdateTaskStatus(ctx, 404, "COMPLETED")
	assert.ErrorIs(t, err, repository.ErrTaskNotFound)

	_, err = svc.UpdateTaskStatus(ctx, task.ID, "FINISHED")
	assert.ErrorIs(t, err, ErrInvalidTaskStatus)
	assert.Equal(t, model.TaskStatusPending, repo.tasks[task.ID].Status)

	updated, err := svc.UpdateTaskStatus(ctx, task.ID, "COMPLETED")
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusCompleted, updated.Status)

	require.NoError(t, svc.DeleteTask(ctx, task.ID))
	assert.ErrorIs(t, svc.DeleteTask(ctx, task.ID), repository.ErrTaskNotFound)
}
