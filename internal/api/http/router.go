package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/tablekeep/tablekeep/internal/api/service"
	"github.com/tablekeep/tablekeep/internal/api/store"
	"github.com/tablekeep/tablekeep/pkg/httpx"
	"github.com/tablekeep/tablekeep/pkg/jwtx"
	"github.com/tablekeep/tablekeep/pkg/slogx"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store           store.Store
	TokenService    *service.TokenService
	CustomerService *service.CustomerService
	OrderService    *service.OrderService
	MenuService     *service.MenuService
	PaymentService  *service.PaymentService
	EmployeeService *service.EmployeeService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.MetricsMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerLogin()
	r.registerCustomers()
	r.registerOrders()
	r.registerMenu()
	r.registerPayments()
	r.registerEmployees()
	r.registerSystem()
}

// ServeHTTP implements http.Handler for Router and applies the global
// middleware chain.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// secured wraps a handler behind the token authentication gate.
func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, httpx.AuthnMiddleware(r.verifier))
}

func (r *Router) registerLogin() {
	r.Mux.Handle("POST /login", &LoginHandler{TokenService: r.TokenService})
}

func (r *Router) registerCustomers() {
	h := &CustomersHandler{CustomerService: r.CustomerService}

	r.Mux.Handle("GET /customers/search", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /customers", r.secured(h.HandleList))
	r.Mux.Handle("POST /customers", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /customers/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /customers/{id}", r.secured(h.HandleDelete))
	r.Mux.Handle("GET /customers/{id}/orders", r.secured(h.HandleOrders))
}

func (r *Router) registerOrders() {
	h := &OrdersHandler{OrderService: r.OrderService}

	r.Mux.Handle("GET /orders/search", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /orders", r.secured(h.HandleList))
	r.Mux.Handle("POST /orders", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /orders/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /orders/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerMenu() {
	h := &MenuHandler{MenuService: r.MenuService}

	r.Mux.Handle("GET /menu/search", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /menu", r.secured(h.HandleList))
	r.Mux.Handle("POST /menu", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /menu/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /menu/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerPayments() {
	h := &PaymentsHandler{PaymentService: r.PaymentService}

	r.Mux.Handle("GET /payments/search", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /payments", r.secured(h.HandleList))
	r.Mux.Handle("POST /payments", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /payments/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /payments/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerEmployees() {
	h := &EmployeesHandler{EmployeeService: r.EmployeeService}

	r.Mux.Handle("GET /employees/search", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /employees", r.secured(h.HandleList))
	r.Mux.Handle("POST /employees", r.secured(h.HandleCreate))
	r.Mux.Handle("PUT /employees/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /employees/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}", RootHandler())
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
	r.Mux.Handle("GET /metrics", promhttp.Handler())
}
