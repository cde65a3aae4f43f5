package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	custommiddleware "github.com/mmeshcher/smartfold-lms/internal/middleware"
)

// RouterOptions задаёт параметры middleware, зависящие от конфигурации.
type RouterOptions struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
}

// SetupRouter настраивает HTTP-маршруты и middleware сервиса.
func (h *Handler) SetupRouter(opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommiddleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(custommiddleware.Logger(h.logger))
	r.Use(custommiddleware.Metrics)
	r.Use(custommiddleware.GzipMiddleware)
	r.Use(custommiddleware.CORS(opts.AllowedOrigins))
	if opts.RateLimit > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimit, opts.RateWindow))
	}

	r.Get("/healthz", h.Healthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Route("/admin/users", func(r chi.Router) {
			r.Get("/", h.ListUsers)
			r.Patch("/{id}/role", h.SetUserRole)
			r.Delete("/{id}", h.DeleteUser)
		})

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/services", h.ListServices)
			r.Get("/units", h.ListUnits)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Post("/", h.CreateOrder)
			r.Patch("/{id}/status", h.UpdateOrderStatus)
			r.Delete("/{id}", h.DeleteOrder)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.ListTasks)
			r.Post("/", h.CreateTask)
			r.Patch("/{id}/status", h.UpdateTaskStatus)
			r.Delete("/{id}", h.DeleteTask)
		})

		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.ListPayments)
			r.Post("/", h.CreatePayment)
			r.Patch("/{id}/status", h.UpdatePaymentStatus)
			r.Delete("/{id}", h.DeletePayment)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.GetMessages)
			r.Post("/", h.SendMessage)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	return r
}
