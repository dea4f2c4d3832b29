package sqlite

import (
	"context"
	"database/sql"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

type ordersRepo struct {
	db *sql.DB
}

func (r *ordersRepo) GetOrderByID(ctx context.Context, id int64) (domain.Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT OrderID, CustomerID, OrderDate, TotalAmount
		FROM Orders WHERE OrderID = ?`, id)

	var o domain.Order
	err := row.Scan(&o.OrderID, &o.CustomerID, &o.OrderDate, &o.TotalAmount)
	if err != nil {
		return domain.Order{}, mapNotFound(err)
	}
	return o, nil
}

func (r *ordersRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT OrderID, CustomerID, OrderDate, TotalAmount
		FROM Orders`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &o.OrderDate, &o.TotalAmount); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *ordersRepo) CreateOrder(ctx context.Context, o domain.Order) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO Orders (CustomerID, OrderDate, TotalAmount)
		VALUES (?, ?, ?)`,
		o.CustomerID, o.OrderDate, o.TotalAmount)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ordersRepo) UpdateOrder(ctx context.Context, o domain.Order) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Orders
		SET CustomerID = ?, OrderDate = ?, TotalAmount = ?
		WHERE OrderID = ?`,
		o.CustomerID, o.OrderDate, o.TotalAmount, o.OrderID)
	return err
}

func (r *ordersRepo) DeleteOrder(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Orders WHERE OrderID = ?`, id)
	return err
}

func (r *ordersRepo) ListCustomerOrders(ctx context.Context, customerID int64) ([]domain.CustomerOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT Customers.FirstName, Customers.LastName, Orders.OrderDate, Orders.TotalAmount
		FROM Customers
		INNER JOIN Orders ON Customers.CustomerID = Orders.CustomerID
		WHERE Customers.CustomerID = ?`, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.CustomerOrder{}
	for rows.Next() {
		var o domain.CustomerOrder
		if err := rows.Scan(&o.FirstName, &o.LastName, &o.OrderDate, &o.TotalAmount); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
