package service

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/store"
)

type OrderService struct {
	Store store.Store
}

func (s *OrderService) Search(ctx context.Context, id int64) (domain.Order, error) {
	o, err := s.Store.Orders().GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Order{}, ErrNotFound
		}
		return domain.Order{}, err
	}
	return o, nil
}

func (s *OrderService) List(ctx context.Context) ([]domain.Order, error) {
	return s.Store.Orders().ListOrders(ctx)
}

func (s *OrderService) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	if err := validateOrder(o); err != nil {
		return domain.Order{}, err
	}

	id, err := s.Store.Orders().CreateOrder(ctx, o)
	if err != nil {
		return domain.Order{}, err
	}
	o.OrderID = id
	return o, nil
}

func (s *OrderService) Update(ctx context.Context, o domain.Order) error {
	if err := validateOrder(o); err != nil {
		return err
	}
	return s.Store.Orders().UpdateOrder(ctx, o)
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	return s.Store.Orders().DeleteOrder(ctx, id)
}

// validateOrder treats zero values as absent, so a zero-amount order is
// rejected the same way an omitted amount is.
func validateOrder(o domain.Order) error {
	if o.CustomerID == 0 || o.OrderDate == "" || o.TotalAmount == 0 {
		return ErrMissingFields
	}
	return nil
}
