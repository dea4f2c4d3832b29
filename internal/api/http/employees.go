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

type EmployeesHandler struct {
	EmployeeService *service.EmployeeService
}

func (h *EmployeesHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := queryID(r)
	if errors.Is(err, errMissingID) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Employee not found")
		return
	}

	e, err := h.EmployeeService.Search(ctx, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Employee not found")
	case err != nil:
		log.Error("employee search failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, e)
	}
}

func (h *EmployeesHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	employees, err := h.EmployeeService.List(ctx)
	if err != nil {
		log.Error("employee list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, employees)
}

func (h *EmployeesHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var e domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	e.EmployeeID = 0

	created, err := h.EmployeeService.Create(ctx, e)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("employee create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message":  "Employee added successfully",
			"employee": created,
		})
	}
}

func (h *EmployeesHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	var e domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&e); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	e.EmployeeID = id

	err = h.EmployeeService.Update(ctx, e)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("employee update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Employee updated successfully")
	}
}

func (h *EmployeesHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.EmployeeService.Delete(ctx, id); err != nil {
		log.Error("employee delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	// Message kept for wire compatibility with existing clients.
	httpx.WriteMessage(w, http.StatusOK, "Employee item deleted successfully")
}
