package service

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/store"
)

type EmployeeService struct {
	Store store.Store
}

func (s *EmployeeService) Search(ctx context.Context, id int64) (domain.Employee, error) {
	e, err := s.Store.Employees().GetEmployeeByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Employee{}, ErrNotFound
		}
		return domain.Employee{}, err
	}
	return e, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.Store.Employees().ListEmployees(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, e domain.Employee) (domain.Employee, error) {
	if err := validateEmployee(e); err != nil {
		return domain.Employee{}, err
	}

	id, err := s.Store.Employees().CreateEmployee(ctx, e)
	if err != nil {
		return domain.Employee{}, err
	}
	e.EmployeeID = id
	return e, nil
}

func (s *EmployeeService) Update(ctx context.Context, e domain.Employee) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	return s.Store.Employees().UpdateEmployee(ctx, e)
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	return s.Store.Employees().DeleteEmployee(ctx, id)
}

func validateEmployee(e domain.Employee) error {
	if e.FirstName == "" || e.LastName == "" || e.Position == "" || e.Salary == 0 {
		return ErrMissingFields
	}
	return nil
}
