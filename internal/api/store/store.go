package store

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

var ErrNotFound = errors.New("store: not found")

// Store is the root data access interface. Concrete drivers (sqlite today,
// possibly others later) implement this. It exposes sub-repositories to keep
// concerns tidy and testable.
//
// Every operation is a single statement under autocommit; the API has no
// multi-statement flows, so there is deliberately no transaction surface.
type Store interface {
	Customers() Customers
	Orders() Orders
	Menu() Menu
	Payments() Payments
	Employees() Employees

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Customers interface {
	// GetCustomerByID is a point lookup; returns ErrNotFound on a miss.
	GetCustomerByID(ctx context.Context, id int64) (domain.Customer, error)

	// ListCustomers returns every row, in the store's default scan order.
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// CreateCustomer inserts one row and returns the assigned CustomerID.
	CreateCustomer(ctx context.Context, c domain.Customer) (int64, error)

	// UpdateCustomer updates all fields for c.CustomerID. Updating an id
	// with no row affects zero rows and is not an error.
	UpdateCustomer(ctx context.Context, c domain.Customer) error

	// DeleteCustomer removes the row if it exists.
	DeleteCustomer(ctx context.Context, id int64) error
}

type Orders interface {
	GetOrderByID(ctx context.Context, id int64) (domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o domain.Order) (int64, error)
	UpdateOrder(ctx context.Context, o domain.Order) error
	DeleteOrder(ctx context.Context, id int64) error

	// ListCustomerOrders joins Customers and Orders for one customer. An
	// unknown customer yields an empty slice, not ErrNotFound.
	ListCustomerOrders(ctx context.Context, customerID int64) ([]domain.CustomerOrder, error)
}

type Menu interface {
	GetMenuItemByID(ctx context.Context, id int64) (domain.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, m domain.MenuItem) (int64, error)
	UpdateMenuItem(ctx context.Context, m domain.MenuItem) error
	DeleteMenuItem(ctx context.Context, id int64) error
}

type Payments interface {
	GetPaymentByID(ctx context.Context, id int64) (domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	CreatePayment(ctx context.Context, p domain.Payment) (int64, error)
	UpdatePayment(ctx context.Context, p domain.Payment) error
	DeletePayment(ctx context.Context, id int64) error
}

type Employees interface {
	GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error)
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	CreateEmployee(ctx context.Context, e domain.Employee) (int64, error)
	UpdateEmployee(ctx context.Context, e domain.Employee) error
	DeleteEmployee(ctx context.Context, id int64) error
}
