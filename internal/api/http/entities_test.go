package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

func TestMenuEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := loginToken(t, r)

	rec := doJSON(t, r, http.MethodPost, "/menu", token, domain.MenuItem{
		Name:     "Pad Thai",
		Category: "Mains",
		Price:    18.90,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	require.Equal(t, "Menu item added successfully", body["message"])
	id := int64(body["menu_item"].(map[string]any)["MenuItemID"].(float64))

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/menu/search?id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Pad Thai", decodeJSON(t, rec)["Name"])

	rec = doJSON(t, r, http.MethodPut, fmt.Sprintf("/menu/%d", id), token, domain.MenuItem{
		Name:     "Pad Thai",
		Category: "Mains",
		Price:    19.90,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Menu item updated successfully", decodeJSON(t, rec)["message"])

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/menu/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Menu item deleted successfully", decodeJSON(t, rec)["message"])

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/menu/search?id=%d", id), token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "Menu item not found", decodeJSON(t, rec)["message"])
}

func TestOrdersEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := loginToken(t, r)

	customerID := createCustomer(t, r, token, domain.Customer{
		FirstName:        "Dan",
		LastName:         "Lee",
		PhoneNumber:      "0400333444",
		Email:            "dan@example.com",
		MembershipStatus: "Bronze",
	})

	rec := doJSON(t, r, http.MethodPost, "/orders", token, domain.Order{
		CustomerID:  customerID,
		OrderDate:   "2026-08-30",
		TotalAmount: 12.00,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	require.Equal(t, "Order added successfully", body["message"])
	orderID := int64(body["order"].(map[string]any)["OrderID"].(float64))

	t.Run("search", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodGet, fmt.Sprintf("/orders/search?id=%d", orderID), token, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, 12.00, decodeJSON(t, rec)["TotalAmount"])
	})

	t.Run("create without a customer reference is rejected", func(t *testing.T) {
		rec := doJSON(t, r, http.MethodPost, "/orders", token, domain.Order{
			OrderDate:   "2026-08-30",
			TotalAmount: 5.00,
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing required fields", decodeJSON(t, rec)["message"])
	})
}

func TestPaymentsEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := loginToken(t, r)

	customerID := createCustomer(t, r, token, domain.Customer{
		FirstName:        "Eve",
		LastName:         "Park",
		PhoneNumber:      "0400555666",
		Email:            "eve@example.com",
		MembershipStatus: "Gold",
	})

	rec := doJSON(t, r, http.MethodPost, "/orders", token, domain.Order{
		CustomerID:  customerID,
		OrderDate:   "2026-08-30",
		TotalAmount: 30.00,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	orderID := int64(decodeJSON(t, rec)["order"].(map[string]any)["OrderID"].(float64))

	rec = doJSON(t, r, http.MethodPost, "/payments", token, domain.Payment{
		OrderID:       orderID,
		PaymentDate:   "2026-08-30",
		Amount:        30.00,
		PaymentMethod: "card",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	require.Equal(t, "Payment added successfully", body["message"])
	paymentID := int64(body["payment"].(map[string]any)["PaymentID"].(float64))

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/payments/search?id=%d", paymentID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "card", decodeJSON(t, rec)["PaymentMethod"])

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/payments/%d", paymentID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Payment deleted successfully", decodeJSON(t, rec)["message"])
}

func TestEmployeesEndpoints(t *testing.T) {
	r := newTestRouter(t)
	token := loginToken(t, r)

	rec := doJSON(t, r, http.MethodPost, "/employees", token, domain.Employee{
		FirstName: "Frank",
		LastName:  "Ocean",
		Position:  "Chef",
		Salary:    82000,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeJSON(t, rec)
	require.Equal(t, "Employee added successfully", body["message"])
	id := int64(body["employee"].(map[string]any)["EmployeeID"].(float64))

	rec = doJSON(t, r, http.MethodGet, fmt.Sprintf("/employees/search?id=%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Chef", decodeJSON(t, rec)["Position"])

	rec = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/employees/%d", id), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Employee item deleted successfully", decodeJSON(t, rec)["message"])
}
