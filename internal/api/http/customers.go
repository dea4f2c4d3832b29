package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/service"
	"github.com/tablekeep/tablekeep/pkg/httpx"
	"github.com/tablekeep/tablekeep/pkg/slogx"
)

// CustomersHandler owns every /customers route.
type CustomersHandler struct {
	CustomerService *service.CustomerService
}

func (h *CustomersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := queryID(r)
	if errors.Is(err, errMissingID) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	if err != nil {
		// A non-numeric id can never match a row.
		httpx.WriteMessage(w, http.StatusNotFound, "Customer not found")
		return
	}

	c, err := h.CustomerService.Search(ctx, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Customer not found")
	case err != nil:
		log.Error("customer search failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, c)
	}
}

func (h *CustomersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	customers, err := h.CustomerService.List(ctx)
	if err != nil {
		log.Error("customer list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, customers)
}

func (h *CustomersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	c.CustomerID = 0 // the store assigns the id

	created, err := h.CustomerService.Create(ctx, c)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("customer create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message":  "Customer added successfully",
			"customer": created,
		})
	}
}

func (h *CustomersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	var c domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	c.CustomerID = id

	err = h.CustomerService.Update(ctx, c)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("customer update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Customer updated successfully")
	}
}

func (h *CustomersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.CustomerService.Delete(ctx, id); err != nil {
		log.Error("customer delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Customer deleted successfully")
}

// HandleOrders lists the orders of one customer via the Customers x Orders
// join. An unknown customer is reported as zero orders, not as NotFound.
func (h *CustomersHandler) HandleOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	orders, err := h.CustomerService.Orders(ctx, id)
	if err != nil {
		log.Error("customer orders failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"CustomerID": id,
		"count":      len(orders),
		"orders":     orders,
	})
}
