package seed

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/catalog"
	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

type recordingService struct {
	nextID   int64
	users    []model.User
	orders   []service.NewOrder
	tasks    []service.NewTask
	payments []service.NewPayment
	messages []model.Message
}

func (s *recordingService) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *recordingService) HasUsers(ctx context.Context) (bool, error) {
	return len(s.users) > 0, nil
}

func (s *recordingService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users, nil
}

func (s *recordingService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return nil, repository.ErrEmailTaken
		}
	}
	u := model.User{ID: s.id(), Name: name, Email: email, PasswordHash: password, Role: model.RoleUser}
	s.users = append(s.users, u)
	return &u, nil
}

func (s *recordingService) SetUserRole(ctx context.Context, id int64, value string) (*model.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Role = model.Role(value)
			return &s.users[i], nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *recordingService) CreateOrder(ctx context.Context, in service.NewOrder) (*model.LaundryOrder, error) {
	s.orders = append(s.orders, in)
	return &model.LaundryOrder{ID: s.id(), CustomerID: in.CustomerID, Price: in.Price, ServiceType: in.ServiceType}, nil
}

func (s *recordingService) CreateTask(ctx context.Context, in service.NewTask) (*model.Task, error) {
	s.tasks = append(s.tasks, in)
	return &model.Task{ID: s.id(), Title: in.Title}, nil
}

func (s *recordingService) CreatePayment(ctx context.Context, in service.NewPayment) (*model.Payment, error) {
	s.payments = append(s.payments, in)
	return &model.Payment{ID: s.id(), OrderID: in.OrderID, Amount: in.Amount}, nil
}

func (s *recordingService) SendMessage(ctx context.Context, fromUserID, toUserID int64, body string) (*model.Message, error) {
	m := model.Message{ID: s.id(), FromUserID: fromUserID, ToUserID: toUserID, Body: body}
	s.messages = append(s.messages, m)
	return &m, nil
}

func newTestGenerator(svc Service) *Generator {
	g := NewGenerator(svc, rand.New(rand.NewPCG(1, 2)), zap.NewNop())
	g.now = func() time.Time { return time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC) }
	return g
}

func TestRunCreatesDemoData(t *testing.T) {
	svc := &recordingService{}
	g := newTestGenerator(svc)

	res, err := g.Run(context.Background(), false)
	require.NoError(t, err)

	assert.Equal(t, Result{Users: 4, Orders: 10, Tasks: 12, Payments: 8, Messages: 30}, res)

	require.Len(t, svc.users, 4)
	assert.Equal(t, "admin@smartfold.lk", svc.users[0].Email)
	assert.Equal(t, model.RoleAdmin, svc.users[0].Role)
	for _, u := range svc.users[1:] {
		assert.Equal(t, model.RoleUser, u.Role)
		assert.Equal(t, DefaultPassword, u.PasswordHash)
	}

	for _, o := range svc.orders {
		assert.True(t, catalog.IsValidService(o.ServiceType), o.ServiceType)
		assert.True(t, catalog.IsValidUnit(o.Unit), o.Unit)
		assert.GreaterOrEqual(t, o.Price, 500.0)
		assert.Less(t, o.Price, 3500.0)
		require.NotNil(t, o.Status)
		_, ok := model.ParseOrderStatus(*o.Status)
		assert.True(t, ok)
		assert.False(t, o.DeliveryDate.Before(o.PickupDate.Time))
	}

	for _, tk := range svc.tasks {
		assert.Contains(t, team, tk.AssignedTo)
	}
	assert.Equal(t, "Task #1", svc.tasks[0].Title)
	assert.Equal(t, "Task #12", svc.tasks[11].Title)

	for _, p := range svc.payments {
		assert.Contains(t, []string{"Cash", "Card"}, p.Method)
		require.NotNil(t, p.Status)
		if *p.Status == string(model.PaymentStatusCompleted) {
			assert.NotNil(t, p.PaidAt)
		} else {
			assert.Nil(t, p.PaidAt)
		}
	}

	admin := svc.users[0]
	for i, m := range svc.messages {
		if i%2 == 0 {
			assert.Equal(t, admin.ID, m.ToUserID)
		} else {
			assert.Equal(t, admin.ID, m.FromUserID)
		}
	}
	assert.Equal(t, "Hello team, checking on order update #1", svc.messages[0].Body)
	assert.Regexp(t, `^Hi Nimali, your order is [a-z ]+\.$`, svc.messages[1].Body)
}

func TestRunStampsPaidAtInUTC(t *testing.T) {
	svc := &recordingService{}
	g := newTestGenerator(svc)
	colombo := time.FixedZone("LKT", 5*3600+1800)
	g.now = func() time.Time { return time.Date(2025, 10, 20, 3, 0, 0, 0, colombo) }

	_, err := g.Run(context.Background(), false)
	require.NoError(t, err)

	for _, p := range svc.payments {
		if p.PaidAt == nil {
			continue
		}
		assert.Equal(t, 21, p.PaidAt.Hour())
		assert.Equal(t, 30, p.PaidAt.Minute())
		assert.False(t, p.PaidAt.After(time.Date(2025, 10, 19, 21, 30, 0, 0, time.UTC)))
	}
}

func TestRunSkipsWhenUsersExist(t *testing.T) {
	svc := &recordingService{}
	_, err := svc.Register(context.Background(), "Someone", "someone@example.com", "x")
	require.NoError(t, err)

	res, err := newTestGenerator(svc).Run(context.Background(), false)
	require.NoError(t, err)

	assert.True(t, res.Skipped)
	assert.Len(t, svc.users, 1)
	assert.Empty(t, svc.orders)
}

func TestRunForceReusesAccounts(t *testing.T) {
	svc := &recordingService{}
	g := newTestGenerator(svc)

	_, err := g.Run(context.Background(), false)
	require.NoError(t, err)

	res, err := g.Run(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Users)
	assert.Equal(t, 10, res.Orders)
	assert.Len(t, svc.users, 4)
	assert.Len(t, svc.orders, 20)
}

func TestHumanStatus(t *testing.T) {
	assert.Equal(t, "in progress", humanStatus(model.OrderStatusInProgress))
	assert.Equal(t, "ready", humanStatus(model.OrderStatusReady))
}
