package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mmeshcher/smartfold-lms/internal/model"
)

func newTestRepository(t *testing.T) *PostgresRepository {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()

	ctr, err := postgres.Run(ctx, "postgres:17-alpine",
		postgres.WithDatabase("lms"),
		postgres.WithUsername("lms"),
		postgres.WithPassword("lms"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "start postgres container")

	t.Cleanup(func() {
		if err := ctr.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	repo, err := NewPostgresRepository(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	return repo
}

func TestPostgresRepository(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	version, err := repo.SchemaVersion(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, version)

	alice, err := repo.CreateUser(ctx, "Alice", "a@x.com", "hash-a", model.RoleUser)
	require.NoError(t, err)
	bob, err := repo.CreateUser(ctx, "Bob", "b@x.com", "hash-b", model.RoleAdmin)
	require.NoError(t, err)

	t.Run("users", func(t *testing.T) {
		_, err := repo.CreateUser(ctx, "Again", "a@x.com", "h", model.RoleUser)
		require.ErrorIs(t, err, ErrEmailTaken)

		got, err := repo.GetUserByEmail(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)

		_, err = repo.GetUserByEmail(ctx, "A@x.com")
		require.ErrorIs(t, err, ErrUserNotFound)

		updated, err := repo.UpdateUserRole(ctx, alice.ID, model.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, updated.Role)

		_, err = repo.UpdateUserRole(ctx, 9999, model.RoleAdmin)
		require.ErrorIs(t, err, ErrUserNotFound)

		users, err := repo.ListUsers(ctx)
		require.NoError(t, err)
		assert.Len(t, users, 2)

		n, err := repo.CountUsers(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
	})

	var order *model.LaundryOrder
	t.Run("orders", func(t *testing.T) {
		pickup, err := model.ParseDate("2025-10-23")
		require.NoError(t, err)

		order, err = repo.CreateOrder(ctx, model.LaundryOrder{
			CustomerID:  alice.ID,
			ServiceType: "Ironing",
			Quantity:    2,
			Unit:        "Items",
			Price:       500,
			Status:      model.OrderStatusPending,
			PickupDate:  &pickup,
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice", order.CustomerName)
		assert.Equal(t, 500.0, order.Price)
		require.NotNil(t, order.PickupDate)
		assert.Equal(t, "2025-10-23", order.PickupDate.String())
		assert.Nil(t, order.DeliveryDate)

		_, err = repo.CreateOrder(ctx, model.LaundryOrder{CustomerID: 9999, ServiceType: "Ironing", Unit: "Kg", Status: model.OrderStatusPending})
		require.ErrorIs(t, err, ErrUserNotFound)

		updated, err := repo.UpdateOrderStatus(ctx, order.ID, model.OrderStatusReady)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusReady, updated.Status)

		mine, err := repo.ListOrdersByCustomer(ctx, alice.ID)
		require.NoError(t, err)
		assert.Len(t, mine, 1)

		none, err := repo.ListOrdersByCustomer(ctx, bob.ID)
		require.NoError(t, err)
		assert.Empty(t, none)

		require.ErrorIs(t, repo.DeleteOrder(ctx, 9999), ErrOrderNotFound)
	})

	t.Run("payments", func(t *testing.T) {
		paidAt, err := model.ParseLocalDateTime("2025-10-20T10:15:30.123456")
		require.NoError(t, err)

		p, err := repo.CreatePayment(ctx, model.Payment{
			OrderID: order.ID,
			Amount:  500,
			Method:  "Card",
			Status:  model.PaymentStatusCompleted,
			PaidAt:  &paidAt,
		})
		require.NoError(t, err)
		assert.Equal(t, "Ironing", p.OrderServiceType)
		require.NotNil(t, p.PaidAt)
		assert.Equal(t, "2025-10-20T10:15:30.123456", p.PaidAt.String())

		require.ErrorIs(t, repo.DeleteOrder(ctx, order.ID), ErrReferenced)
		require.ErrorIs(t, repo.DeleteUser(ctx, alice.ID), ErrReferenced)

		completed, err := repo.ListPaymentsByStatus(ctx, model.PaymentStatusCompleted)
		require.NoError(t, err)
		assert.Len(t, completed, 1)

		require.NoError(t, repo.DeletePayment(ctx, p.ID))
		require.ErrorIs(t, repo.DeletePayment(ctx, p.ID), ErrPaymentNotFound)
		require.NoError(t, repo.DeleteOrder(ctx, order.ID))
	})

	t.Run("tasks", func(t *testing.T) {
		task, err := repo.CreateTask(ctx, model.Task{Title: "Sort linen", AssignedTo: "Saman", Price: 250, Status: model.TaskStatusPending})
		require.NoError(t, err)

		_, err = repo.UpdateTaskStatus(ctx, task.ID, model.TaskStatusCompleted)
		require.NoError(t, err)

		done, err := repo.ListTasksByStatus(ctx, model.TaskStatusCompleted)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, "Saman", done[0].AssignedTo)

		require.NoError(t, repo.DeleteTask(ctx, task.ID))
		_, err = repo.GetTask(ctx, task.ID)
		require.ErrorIs(t, err, ErrTaskNotFound)
	})

	t.Run("messages", func(t *testing.T) {
		base := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
		first, err := repo.CreateMessage(ctx, alice.ID, bob.ID, "hello", base)
		require.NoError(t, err)
		// часы "ушли назад", метка всё равно не меньше предыдущей
		second, err := repo.CreateMessage(ctx, bob.ID, alice.ID, "hi", base.Add(-time.Hour))
		require.NoError(t, err)
		assert.False(t, second.Timestamp.Before(first.Timestamp.Time))

		ab, err := repo.GetConversation(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		ba, err := repo.GetConversation(ctx, bob.ID, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)
		require.Len(t, ab, 2)
		assert.Equal(t, first.ID, ab[0].ID)

		_, err = repo.CreateMessage(ctx, alice.ID, 9999, "lost", base)
		require.ErrorIs(t, err, ErrUserNotFound)

		touching, err := repo.GetMessagesByUser(ctx, bob.ID)
		require.NoError(t, err)
		assert.Len(t, touching, 2)
	})
}
