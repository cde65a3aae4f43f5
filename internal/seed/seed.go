// Package seed наполняет пустую базу демонстрационными данными.
package seed

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mmeshcher/smartfold-lms/internal/catalog"
	"github.com/mmeshcher/smartfold-lms/internal/model"
	"github.com/mmeshcher/smartfold-lms/internal/repository"
	"github.com/mmeshcher/smartfold-lms/internal/service"
)

// DefaultPassword — пароль всех демонстрационных учётных записей.
const DefaultPassword = "1234"

const (
	orderCount        = 10
	taskCount         = 12
	paymentCount      = 8
	messageRoundTrips = 5
	demoOrderNotes    = "Auto-generated demo order"
	demoTaskNotes     = "Demo task generated for showcase"
)

var team = []string{"Saman", "Ishara", "Dilani", "Pasan"}

type account struct {
	name  string
	email string
}

var (
	adminAccount = account{"Admin", "admin@smartfold.lk"}

	customerAccounts = []account{
		{"Nimali Jayasinghe", "nimali@smartfold.lk"},
		{"Ruwan Perera", "ruwan@smartfold.lk"},
		{"Kamal Fernando", "kamal@smartfold.lk"},
	}
)

// Service — операции сервиса, через которые создаются демонстрационные данные.
type Service interface {
	HasUsers(ctx context.Context) (bool, error)
	ListUsers(ctx context.Context) ([]model.User, error)
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	SetUserRole(ctx context.Context, id int64, value string) (*model.User, error)
	CreateOrder(ctx context.Context, in service.NewOrder) (*model.LaundryOrder, error)
	CreateTask(ctx context.Context, in service.NewTask) (*model.Task, error)
	CreatePayment(ctx context.Context, in service.NewPayment) (*model.Payment, error)
	SendMessage(ctx context.Context, fromUserID, toUserID int64, body string) (*model.Message, error)
}

// Result содержит количество созданных записей.
type Result struct {
	Skipped  bool
	Users    int
	Orders   int
	Tasks    int
	Payments int
	Messages int
}

// Generator создаёт демонстрационные данные.
type Generator struct {
	svc    Service
	rnd    *rand.Rand
	logger *zap.Logger
	now    func() time.Time
}

// NewGenerator создаёт генератор. При rnd == nil используется случайный источник.
func NewGenerator(svc Service, rnd *rand.Rand, logger *zap.Logger) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{
		svc:    svc,
		rnd:    rnd,
		logger: logger,
		now:    time.Now,
	}
}

// Run наполняет базу. Если пользователи уже есть и force не задан, ничего не делает.
func (g *Generator) Run(ctx context.Context, force bool) (Result, error) {
	var res Result

	has, err := g.svc.HasUsers(ctx)
	if err != nil {
		return res, fmt.Errorf("check users: %w", err)
	}
	if has && !force {
		g.logger.Info("database already contains users, seeding skipped")
		res.Skipped = true
		return res, nil
	}

	admin, err := g.ensureUser(ctx, adminAccount, &res)
	if err != nil {
		return res, err
	}
	if _, err := g.svc.SetUserRole(ctx, admin.ID, string(model.RoleAdmin)); err != nil {
		return res, fmt.Errorf("promote admin: %w", err)
	}

	customers := make([]*model.User, 0, len(customerAccounts))
	for _, acc := range customerAccounts {
		u, err := g.ensureUser(ctx, acc, &res)
		if err != nil {
			return res, err
		}
		customers = append(customers, u)
	}

	orders, err := g.seedOrders(ctx, customers, &res)
	if err != nil {
		return res, err
	}
	if err := g.seedTasks(ctx, &res); err != nil {
		return res, err
	}
	if err := g.seedPayments(ctx, orders, &res); err != nil {
		return res, err
	}
	if err := g.seedMessages(ctx, admin, customers, &res); err != nil {
		return res, err
	}

	g.logger.Info("demo data created",
		zap.Int("users", res.Users),
		zap.Int("orders", res.Orders),
		zap.Int("tasks", res.Tasks),
		zap.Int("payments", res.Payments),
		zap.Int("messages", res.Messages),
	)
	return res, nil
}

// ensureUser регистрирует учётную запись или возвращает уже существующую с тем же email.
func (g *Generator) ensureUser(ctx context.Context, acc account, res *Result) (*model.User, error) {
	u, err := g.svc.Register(ctx, acc.name, acc.email, DefaultPassword)
	if err == nil {
		res.Users++
		return u, nil
	}
	if !errors.Is(err, repository.ErrEmailTaken) {
		return nil, fmt.Errorf("register %s: %w", acc.email, err)
	}

	users, err := g.svc.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range users {
		if users[i].Email == acc.email {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user %s reported as taken but not found", acc.email)
}

func (g *Generator) pick(items []string) string {
	return items[g.rnd.IntN(len(items))]
}

func (g *Generator) seedOrders(ctx context.Context, customers []*model.User, res *Result) ([]*model.LaundryOrder, error) {
	services := catalog.Services()
	units := catalog.Units()
	statuses := model.OrderStatuses()
	today := g.now()

	orders := make([]*model.LaundryOrder, 0, orderCount)
	for range orderCount {
		customer := customers[g.rnd.IntN(len(customers))]
		pickup := model.NewDate(today.AddDate(0, 0, -g.rnd.IntN(5)))
		delivery := model.NewDate(today.AddDate(0, 0, g.rnd.IntN(5)+1))
		status := string(statuses[g.rnd.IntN(len(statuses))])

		o, err := g.svc.CreateOrder(ctx, service.NewOrder{
			CustomerID:   customer.ID,
			ServiceType:  g.pick(services),
			Quantity:     float64(1 + g.rnd.IntN(5)),
			Unit:         g.pick(units),
			Price:        float64(500 + g.rnd.IntN(3000)),
			PickupDate:   &pickup,
			DeliveryDate: &delivery,
			Notes:        demoOrderNotes,
			Status:       &status,
		})
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		orders = append(orders, o)
		res.Orders++
	}
	return orders, nil
}

func (g *Generator) seedTasks(ctx context.Context, res *Result) error {
	statuses := model.TaskStatuses()
	today := g.now()

	for i := range taskCount {
		due := model.NewDate(today.AddDate(0, 0, g.rnd.IntN(7)))
		status := string(statuses[g.rnd.IntN(len(statuses))])

		if _, err := g.svc.CreateTask(ctx, service.NewTask{
			Title:      fmt.Sprintf("Task #%d", i+1),
			AssignedTo: g.pick(team),
			DueDate:    &due,
			Price:      float64(200 + g.rnd.IntN(1500)),
			Notes:      demoTaskNotes,
			Status:     &status,
		}); err != nil {
			return fmt.Errorf("create task: %w", err)
		}
		res.Tasks++
	}
	return nil
}

func (g *Generator) seedPayments(ctx context.Context, orders []*model.LaundryOrder, res *Result) error {
	statuses := model.PaymentStatuses()

	for range paymentCount {
		order := orders[g.rnd.IntN(len(orders))]
		method := "Card"
		if g.rnd.IntN(2) == 0 {
			method = "Cash"
		}
		status := statuses[g.rnd.IntN(len(statuses))]

		in := service.NewPayment{
			OrderID: order.ID,
			Amount:  order.Price,
			Method:  method,
		}
		st := string(status)
		in.Status = &st
		if status == model.PaymentStatusCompleted {
			paidAt := model.NewLocalDateTime(g.now().UTC().AddDate(0, 0, -g.rnd.IntN(3)))
			in.PaidAt = &paidAt
		}

		if _, err := g.svc.CreatePayment(ctx, in); err != nil {
			return fmt.Errorf("create payment: %w", err)
		}
		res.Payments++
	}
	return nil
}

func (g *Generator) seedMessages(ctx context.Context, admin *model.User, customers []*model.User, res *Result) error {
	statuses := model.OrderStatuses()

	for _, customer := range customers {
		firstName := strings.Fields(customer.Name)[0]
		for i := range messageRoundTrips {
			question := fmt.Sprintf("Hello team, checking on order update #%d", i+1)
			if _, err := g.svc.SendMessage(ctx, customer.ID, admin.ID, question); err != nil {
				return fmt.Errorf("send message: %w", err)
			}

			status := statuses[g.rnd.IntN(len(statuses))]
			answer := fmt.Sprintf("Hi %s, your order is %s.", firstName, humanStatus(status))
			if _, err := g.svc.SendMessage(ctx, admin.ID, customer.ID, answer); err != nil {
				return fmt.Errorf("send message: %w", err)
			}
			res.Messages += 2
		}
	}
	return nil
}

// humanStatus превращает IN_PROGRESS в "in progress".
func humanStatus(st model.OrderStatus) string {
	return strings.ToLower(strings.ReplaceAll(string(st), "_", " "))
}
