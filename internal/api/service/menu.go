package service

import (
	"context"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/domain"
	"github.com/tablekeep/tablekeep/internal/api/store"
)

type MenuService struct {
	Store store.Store
}

func (s *MenuService) Search(ctx context.Context, id int64) (domain.MenuItem, error) {
	m, err := s.Store.Menu().GetMenuItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.MenuItem{}, ErrNotFound
		}
		return domain.MenuItem{}, err
	}
	return m, nil
}

func (s *MenuService) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.Store.Menu().ListMenuItems(ctx)
}

func (s *MenuService) Create(ctx context.Context, m domain.MenuItem) (domain.MenuItem, error) {
	if err := validateMenuItem(m); err != nil {
		return domain.MenuItem{}, err
	}

	id, err := s.Store.Menu().CreateMenuItem(ctx, m)
	if err != nil {
		return domain.MenuItem{}, err
	}
	m.MenuItemID = id
	return m, nil
}

func (s *MenuService) Update(ctx context.Context, m domain.MenuItem) error {
	if err := validateMenuItem(m); err != nil {
		return err
	}
	return s.Store.Menu().UpdateMenuItem(ctx, m)
}

func (s *MenuService) Delete(ctx context.Context, id int64) error {
	return s.Store.Menu().DeleteMenuItem(ctx, id)
}

func validateMenuItem(m domain.MenuItem) error {
	if m.Name == "" || m.Category == "" || m.Price == 0 {
		return ErrMissingFields
	}
	return nil
}
