package sqlite

import (
	"context"
	"database/sql"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

type customersRepo struct {
	db *sql.DB
}

func (r *customersRepo) GetCustomerByID(ctx context.Context, id int64) (domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT CustomerID, FirstName, LastName, PhoneNumber, Email, MembershipStatus
		FROM Customers WHERE CustomerID = ?`, id)

	var c domain.Customer
	err := row.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &c.MembershipStatus)
	if err != nil {
		return domain.Customer{}, mapNotFound(err)
	}
	return c, nil
}

func (r *customersRepo) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT CustomerID, FirstName, LastName, PhoneNumber, Email, MembershipStatus
		FROM Customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.CustomerID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &c.MembershipStatus); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customersRepo) CreateCustomer(ctx context.Context, c domain.Customer) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO Customers (FirstName, LastName, PhoneNumber, Email, MembershipStatus)
		VALUES (?, ?, ?, ?, ?)`,
		c.FirstName, c.LastName, c.PhoneNumber, c.Email, c.MembershipStatus)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *customersRepo) UpdateCustomer(ctx context.Context, c domain.Customer) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Customers
		SET FirstName = ?, LastName = ?, PhoneNumber = ?, Email = ?, MembershipStatus = ?
		WHERE CustomerID = ?`,
		c.FirstName, c.LastName, c.PhoneNumber, c.Email, c.MembershipStatus, c.CustomerID)
	return err
}

func (r *customersRepo) DeleteCustomer(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Customers WHERE CustomerID = ?`, id)
	return err
}
