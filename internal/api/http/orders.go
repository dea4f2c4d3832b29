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

type OrdersHandler struct {
	OrderService *service.OrderService
}

func (h *OrdersHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := queryID(r)
	if errors.Is(err, errMissingID) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	o, err := h.OrderService.Search(ctx, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Order not found")
	case err != nil:
		log.Error("order search failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, o)
	}
}

func (h *OrdersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	orders, err := h.OrderService.List(ctx)
	if err != nil {
		log.Error("order list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrdersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var o domain.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	o.OrderID = 0

	created, err := h.OrderService.Create(ctx, o)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("order create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Order added successfully",
			"order":   created,
		})
	}
}

func (h *OrdersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	var o domain.Order
	if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	o.OrderID = id

	err = h.OrderService.Update(ctx, o)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("order update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Order updated successfully")
	}
}

func (h *OrdersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.OrderService.Delete(ctx, id); err != nil {
		log.Error("order delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Order deleted successfully")
}
