package sqlite

import (
	"context"
	"database/sql"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

type paymentsRepo struct {
	db *sql.DB
}

func (r *paymentsRepo) GetPaymentByID(ctx context.Context, id int64) (domain.Payment, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT PaymentID, OrderID, PaymentDate, Amount, PaymentMethod
		FROM Payments WHERE PaymentID = ?`, id)

	var p domain.Payment
	err := row.Scan(&p.PaymentID, &p.OrderID, &p.PaymentDate, &p.Amount, &p.PaymentMethod)
	if err != nil {
		return domain.Payment{}, mapNotFound(err)
	}
	return p, nil
}

func (r *paymentsRepo) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT PaymentID, OrderID, PaymentDate, Amount, PaymentMethod
		FROM Payments`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.PaymentID, &p.OrderID, &p.PaymentDate, &p.Amount, &p.PaymentMethod); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (r *paymentsRepo) CreatePayment(ctx context.Context, p domain.Payment) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO Payments (OrderID, PaymentDate, Amount, PaymentMethod)
		VALUES (?, ?, ?, ?)`,
		p.OrderID, p.PaymentDate, p.Amount, p.PaymentMethod)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *paymentsRepo) UpdatePayment(ctx context.Context, p domain.Payment) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Payments
		SET OrderID = ?, PaymentDate = ?, Amount = ?, PaymentMethod = ?
		WHERE PaymentID = ?`,
		p.OrderID, p.PaymentDate, p.Amount, p.PaymentMethod, p.PaymentID)
	return err
}

func (r *paymentsRepo) DeletePayment(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Payments WHERE PaymentID = ?`, id)
	return err
}
