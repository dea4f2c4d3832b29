package service

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/store"
)

type CustomerService struct {
	Store store.Store
}

func (s *CustomerService) Search(ctx context.Context, id int64) (domain.Customer, error) {
	c, err := s.Store.Customers().GetCustomerByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Customer{}, ErrNotFound
		}
		return domain.Customer{}, err
	}
	return c, nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.Store.Customers().ListCustomers(ctx)
}

// Create inserts the customer and returns it with the assigned CustomerID.
func (s *CustomerService) Create(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if err := validateCustomer(c); err != nil {
		return domain.Customer{}, err
	}

	id, err := s.Store.Customers().CreateCustomer(ctx, c)
	if err != nil {
		return domain.Customer{}, err
	}
	c.CustomerID = id
	return c, nil
}

// Update rewrites all fields for the given id. An id with no matching row
// affects zero rows and still succeeds; callers relying on existence must
// Search first.
func (s *CustomerService) Update(ctx context.Context, c domain.Customer) error {
	if err := validateCustomer(c); err != nil {
		return err
	}
	return s.Store.Customers().UpdateCustomer(ctx, c)
}

func (s *CustomerService) Delete(ctx context.Context, id int64) error {
	return s.Store.Customers().DeleteCustomer(ctx, id)
}

// Orders lists the Customers x Orders join for one customer.
func (s *CustomerService) Orders(ctx context.Context, id int64) ([]domain.CustomerOrder, error) {
	return s.Store.Orders().ListCustomerOrders(ctx, id)
}

func validateCustomer(c domain.Customer) error {
	if c.FirstName == "" || c.LastName == "" || c.PhoneNumber == "" ||
		c.Email == "" || c.MembershipStatus == "" {
		return ErrMissingFields
	}
	return nil
}
