package service

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/store"
)

type PaymentService struct {
	Store store.Store
}

func (s *PaymentService) Search(ctx context.Context, id int64) (domain.Payment, error) {
	p, err := s.Store.Payments().GetPaymentByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Payment{}, ErrNotFound
		}
		return domain.Payment{}, err
	}
	return p, nil
}

func (s *PaymentService) List(ctx context.Context) ([]domain.Payment, error) {
	return s.Store.Payments().ListPayments(ctx)
}

func (s *PaymentService) Create(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	if err := validatePayment(p); err != nil {
		return domain.Payment{}, err
	}

	id, err := s.Store.Payments().CreatePayment(ctx, p)
	if err != nil {
		return domain.Payment{}, err
	}
	p.PaymentID = id
	return p, nil
}

func (s *PaymentService) Update(ctx context.Context, p domain.Payment) error {
	if err := validatePayment(p); err != nil {
		return err
	}
	return s.Store.Payments().UpdatePayment(ctx, p)
}

func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	return s.Store.Payments().DeletePayment(ctx, id)
}

func validatePayment(p domain.Payment) error {
	if p.OrderID == 0 || p.PaymentDate == "" || p.Amount == 0 || p.PaymentMethod == "" {
		return ErrMissingFields
	}
	return nil
}
