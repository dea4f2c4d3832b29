package sqlite

import (
	"context"
	"database/sql"

	"github.com/tablekeep/tablekeep/internal/api/domain"
)

type menuRepo struct {
	db *sql.DB
}

func (r *menuRepo) GetMenuItemByID(ctx context.Context, id int64) (domain.MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT MenuItemID, Name, Category, Price
		FROM Menu WHERE MenuItemID = ?`, id)

	var m domain.MenuItem
	err := row.Scan(&m.MenuItemID, &m.Name, &m.Category, &m.Price)
	if err != nil {
		return domain.MenuItem{}, mapNotFound(err)
	}
	return m, nil
}

func (r *menuRepo) ListMenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT MenuItemID, Name, Category, Price
		FROM Menu`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var m domain.MenuItem
		if err := rows.Scan(&m.MenuItemID, &m.Name, &m.Category, &m.Price); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *menuRepo) CreateMenuItem(ctx context.Context, m domain.MenuItem) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO Menu (Name, Category, Price)
		VALUES (?, ?, ?)`,
		m.Name, m.Category, m.Price)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *menuRepo) UpdateMenuItem(ctx context.Context, m domain.MenuItem) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE Menu
		SET Name = ?, Category = ?, Price = ?
		WHERE MenuItemID = ?`,
		m.Name, m.Category, m.Price, m.MenuItemID)
	return err
}

func (r *menuRepo) DeleteMenuItem(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM Menu WHERE MenuItemID = ?`, id)
	return err
}
