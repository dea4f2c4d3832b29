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

type PaymentsHandler struct {
	PaymentService *service.PaymentService
}

func (h *PaymentsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := queryID(r)
	if errors.Is(err, errMissingID) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Payment not found")
		return
	}

	p, err := h.PaymentService.Search(ctx, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Payment not found")
	case err != nil:
		log.Error("payment search failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, p)
	}
}

func (h *PaymentsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	payments, err := h.PaymentService.List(ctx)
	if err != nil {
		log.Error("payment list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, payments)
}

func (h *PaymentsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var p domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	p.PaymentID = 0

	created, err := h.PaymentService.Create(ctx, p)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("payment create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message": "Payment added successfully",
			"payment": created,
		})
	}
}

func (h *PaymentsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	var p domain.Payment
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	p.PaymentID = id

	err = h.PaymentService.Update(ctx, p)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("payment update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Payment updated successfully")
	}
}

func (h *PaymentsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.PaymentService.Delete(ctx, id); err != nil {
		log.Error("payment delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Payment deleted successfully")
}
