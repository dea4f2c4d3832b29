package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/service"
	"github.com/tablekeep/tablekeep/internal/api/store/drivers/sqlite"
)

func newCustomerService(t *testing.T) *service.CustomerService {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	return &service.CustomerService{Store: st}
}

func validCustomer() domain.Customer {
	return domain.Customer{
		FirstName:        "John",
		LastName:         "Doe",
		PhoneNumber:      "1234567890",
		Email:            "john.doe@example.com",
		MembershipStatus: "Gold",
	}
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()
	svc := newCustomerService(t)

	t.Run("all fields present inserts exactly one row", func(t *testing.T) {
		created, err := svc.Create(ctx, validCustomer())
		require.NoError(t, err)
		require.Positive(t, created.CustomerID)

		// The assigned id resolves via Search.
		got, err := svc.Search(ctx, created.CustomerID)
		require.NoError(t, err)
		require.Equal(t, created, got)
	})

	t.Run("missing field performs no insert", func(t *testing.T) {
		before, err := svc.List(ctx)
		require.NoError(t, err)

		c := validCustomer()
		c.Email = ""
		_, err = svc.Create(ctx, c)
		require.ErrorIs(t, err, service.ErrMissingFields)

		after, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before), "row count must be unchanged")
	})
}

func TestCustomerSearchNotFound(t *testing.T) {
	svc := newCustomerService(t)

	_, err := svc.Search(context.Background(), 99999)
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestCustomerUpdateMissingIDStillSucceeds(t *testing.T) {
	ctx := context.Background()
	svc := newCustomerService(t)

	c := validCustomer()
	c.CustomerID = 99999
	require.NoError(t, svc.Update(ctx, c), "zero rows affected is reported as success")
}

func TestCustomerDeleteMissingIDStillSucceeds(t *testing.T) {
	svc := newCustomerService(t)
	require.NoError(t, svc.Delete(context.Background(), 99999))
}

func TestCustomerOrdersJoin(t *testing.T) {
	ctx := context.Background()
	svc := newCustomerService(t)

	created, err := svc.Create(ctx, validCustomer())
	require.NoError(t, err)

	orderSvc := &service.OrderService{Store: svc.Store}
	_, err = orderSvc.Create(ctx, domain.Order{
		CustomerID: created.CustomerID, OrderDate: "2024-05-01", TotalAmount: 42.50,
	})
	require.NoError(t, err)

	orders, err := svc.Orders(ctx, created.CustomerID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	require.Equal(t, "John", orders[0].FirstName)
	require.InDelta(t, 42.50, orders[0].TotalAmount, 0.001)
}

func TestOrderCreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := newCustomerService(t)
	orderSvc := &service.OrderService{Store: svc.Store}

	t.Run("missing customer id", func(t *testing.T) {
		_, err := orderSvc.Create(ctx, domain.Order{OrderDate: "2024-05-01", TotalAmount: 10})
		require.ErrorIs(t, err, service.ErrMissingFields)
	})

	t.Run("zero amount treated as absent", func(t *testing.T) {
		_, err := orderSvc.Create(ctx, domain.Order{CustomerID: 1, OrderDate: "2024-05-01"})
		require.ErrorIs(t, err, service.ErrMissingFields)
	})
}
