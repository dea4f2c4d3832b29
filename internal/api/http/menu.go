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

type MenuHandler struct {
	MenuService *service.MenuService
}

func (h *MenuHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := queryID(r)
	if errors.Is(err, errMissingID) {
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing id parameter")
		return
	}
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Menu item not found")
		return
	}

	m, err := h.MenuService.Search(ctx, id)
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteMessage(w, http.StatusNotFound, "Menu item not found")
	case err != nil:
		log.Error("menu search failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

func (h *MenuHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	items, err := h.MenuService.List(ctx)
	if err != nil {
		log.Error("menu list failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var m domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	m.MenuItemID = 0

	created, err := h.MenuService.Create(ctx, m)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("menu create failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteJSON(w, http.StatusCreated, map[string]any{
			"message":   "Menu item added successfully",
			"menu_item": created,
		})
	}
}

func (h *MenuHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	var m domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	m.MenuItemID = id

	err = h.MenuService.Update(ctx, m)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httpx.WriteMessage(w, http.StatusBadRequest, "Missing required fields")
	case err != nil:
		log.Error("menu update failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
	default:
		httpx.WriteMessage(w, http.StatusOK, "Menu item updated successfully")
	}
}

func (h *MenuHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := pathID(r)
	if err != nil {
		httpx.WriteMessage(w, http.StatusNotFound, "Not found")
		return
	}

	if err := h.MenuService.Delete(ctx, id); err != nil {
		log.Error("menu delete failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	httpx.WriteMessage(w, http.StatusOK, "Menu item deleted successfully")
}
