package sqlite

import (
	"context"
	"database/sql"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

type employeesRepo struct {
	db *sql.DB
}

func (r *employeesRepo) GetEmployeeByID(ctx context.Context, id int64) (domain.Employee, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT EmployeeID, FirstName, LastName, Position, Salary
		FROM Employees WHERE EmployeeID = ?`, id)

	var e domain.Employee
	err := row.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Position, &e.Salary)
	if err != nil {
		return domain.Employee{}, mapNotFound(err)
	}
	return e, nil
}

func (r *employeesRepo) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT EmployeeID, FirstName, LastName, Position, Salary
		FROM Employees`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.Position, &e.Salary); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeesRepo) CreateEmployee(ctx context.Context, e domain.Employee) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO Employees (FirstName, LastName, Position, Salary)
		VALUES (?, ?, ?, ?)`,
		e.FirstName, e.LastName, e.Position, e.Salary)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *employeesRepo) UpdateEmployee(ctx context.Context, e domain.Employee) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Employees
		SET FirstName = ?, LastName = ?, Position = ?, Salary = ?
		WHERE EmployeeID = ?`,
		e.FirstName, e.LastName, e.Position, e.Salary, e.EmployeeID)
	return err
}

func (r *employeesRepo) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Employees WHERE EmployeeID = ?`, id)
	return err
}
