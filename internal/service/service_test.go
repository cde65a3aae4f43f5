package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
)

// memRepo — хранилище в памяти с теми же ошибками, что и PostgresRepository.
type memRepo struct {
	mu sync.Mutex

	nextID   int64
	users    map[int64]model.User
	orders   map[int64]model.LaundryOrder
	tasks    map[int64]model.Task
	payments map[int64]model.Payment
	messages []model.Message

	pingErr error
}

func newMemRepo() *memRepo {
	return &memRepo{
		users:    map[int64]model.User{},
		orders:   map[int64]model.LaundryOrder{},
		tasks:    map[int64]model.Task{},
		payments: map[int64]model.Payment{},
	}
}

func (m *memRepo) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memRepo) Close() error                 { return nil }
func (m *memRepo) Ping(ctx context.Context) error { return m.pingErr }

func (m *memRepo) CreateUser(ctx context.Context, name, email, passwordHash string, role model.Role) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return nil, repository.ErrEmailTaken
		}
	}
	u := model.User{ID: m.id(), Name: name, Email: email, PasswordHash: passwordHash, Role: role, CreatedAt: time.Now()}
	m.users[u.ID] = u
	return &u, nil
}

func (m *memRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *memRepo) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *memRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	res := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		res = append(res, u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (m *memRepo) CountUsers(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memRepo) UpdateUserRole(ctx context.Context, id int64, role model.Role) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	u.Role = role
	m.users[id] = u
	return &u, nil
}

func (m *memRepo) DeleteUser(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	for _, o := range m.orders {
		if o.CustomerID == id {
			return repository.ErrReferenced
		}
	}
	for _, msg := range m.messages {
		if msg.FromUserID == id || msg.ToUserID == id {
			return repository.ErrReferenced
		}
	}
	delete(m.users, id)
	return nil
}

func (m *memRepo) CreateOrder(ctx context.Context, o model.LaundryOrder) (*model.LaundryOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[o.CustomerID]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	o.ID = m.id()
	o.CustomerName = u.Name
	m.orders[o.ID] = o
	return &o, nil
}

func (m *memRepo) GetOrder(ctx context.Context, id int64) (*model.LaundryOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	return &o, nil
}

func (m *memRepo) listOrders(keep func(model.LaundryOrder) bool) []model.LaundryOrder {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.LaundryOrder
	for _, o := range m.orders {
		if keep(o) {
			res = append(res, o)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (m *memRepo) ListOrders(ctx context.Context) ([]model.LaundryOrder, error) {
	return m.listOrders(func(model.LaundryOrder) bool { return true }), nil
}

func (m *memRepo) ListOrdersByCustomer(ctx context.Context, customerID int64) ([]model.LaundryOrder, error) {
	return m.listOrders(func(o model.LaundryOrder) bool { return o.CustomerID == customerID }), nil
}

func (m *memRepo) UpdateOrderStatus(ctx context.Context, id int64, status model.OrderStatus) (*model.LaundryOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	o.Status = status
	m.orders[id] = o
	return &o, nil
}

func (m *memRepo) DeleteOrder(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.orders[id]; !ok {
		return repository.ErrOrderNotFound
	}
	for _, p := range m.payments {
		if p.OrderID == id {
			return repository.ErrReferenced
		}
	}
	delete(m.orders, id)
	return nil
}

func (m *memRepo) CreateTask(ctx context.Context, t model.Task) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.ID = m.id()
	m.tasks[t.ID] = t
	return &t, nil
}

func (m *memRepo) GetTask(ctx context.Context, id int64) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	return &t, nil
}

func (m *memRepo) listTasks(keep func(model.Task) bool) []model.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Task
	for _, t := range m.tasks {
		if keep(t) {
			res = append(res, t)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (m *memRepo) ListTasks(ctx context.Context) ([]model.Task, error) {
	return m.listTasks(func(model.Task) bool { return true }), nil
}

func (m *memRepo) ListTasksByStatus(ctx context.Context, status model.TaskStatus) ([]model.Task, error) {
	return m.listTasks(func(t model.Task) bool { return t.Status == status }), nil
}

func (m *memRepo) UpdateTaskStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.tasks[id]
	if !ok {
		return nil, repository.ErrTaskNotFound
	}
	t.Status = status
	m.tasks[id] = t
	return &t, nil
}

func (m *memRepo) DeleteTask(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(m.tasks, id)
	return nil
}

func (m *memRepo) CreatePayment(ctx context.Context, p model.Payment) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[p.OrderID]
	if !ok {
		return nil, repository.ErrOrderNotFound
	}
	p.ID = m.id()
	p.OrderServiceType = o.ServiceType
	m.payments[p.ID] = p
	return &p, nil
}

func (m *memRepo) GetPayment(ctx context.Context, id int64) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	return &p, nil
}

func (m *memRepo) listPayments(keep func(model.Payment) bool) []model.Payment {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Payment
	for _, p := range m.payments {
		if keep(p) {
			res = append(res, p)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}

func (m *memRepo) ListPayments(ctx context.Context) ([]model.Payment, error) {
	return m.listPayments(func(model.Payment) bool { return true }), nil
}

func (m *memRepo) ListPaymentsByStatus(ctx context.Context, status model.PaymentStatus) ([]model.Payment, error) {
	return m.listPayments(func(p model.Payment) bool { return p.Status == status }), nil
}

func (m *memRepo) UpdatePaymentStatus(ctx context.Context, id int64, status model.PaymentStatus) (*model.Payment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.payments[id]
	if !ok {
		return nil, repository.ErrPaymentNotFound
	}
	p.Status = status
	m.payments[id] = p
	return &p, nil
}

func (m *memRepo) DeletePayment(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return repository.ErrPaymentNotFound
	}
	delete(m.payments, id)
	return nil
}

func (m *memRepo) CreateMessage(ctx context.Context, fromUserID, toUserID int64, body string, at time.Time) (*model.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[fromUserID]; !ok {
		return nil, repository.ErrUserNotFound
	}
	if _, ok := m.users[toUserID]; !ok {
		return nil, repository.ErrUserNotFound
	}
	msg := model.Message{
		ID:         m.id(),
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Body:       body,
		Timestamp:  model.NewLocalDateTime(at),
	}
	m.messages = append(m.messages, msg)
	return &msg, nil
}

func (m *memRepo) filterMessages(keep func(model.Message) bool) []model.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var res []model.Message
	for _, msg := range m.messages {
		if keep(msg) {
			res = append(res, msg)
		}
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].Timestamp.Before(res[j].Timestamp.Time) })
	return res
}

func (m *memRepo) GetConversation(ctx context.Context, userA, userB int64) ([]model.Message, error) {
	return m.filterMessages(func(msg model.Message) bool {
		return (msg.FromUserID == userA && msg.ToUserID == userB) ||
			(msg.FromUserID == userB && msg.ToUserID == userA)
	}), nil
}

func (m *memRepo) GetMessagesByUser(ctx context.Context, userID int64) ([]model.Message, error) {
	return m.filterMessages(func(msg model.Message) bool {
		return msg.FromUserID == userID || msg.ToUserID == userID
	}), nil
}
