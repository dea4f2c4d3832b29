package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/tablekeep/tablekeep/internal/api/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single connection keeps the foreign_keys pragma in effect for every
	// statement and makes `:memory:` databases behave as one database.
	db.SetMaxOpenConns(1)

	// Enforce FKs
	if _, err := db.ExecContext(context.Background(), `PRAGMA foreign_keys = ON;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Customers() store.Customers { return &customersRepo{db: s.db} }
func (s *Store) Orders() store.Orders       { return &ordersRepo{db: s.db} }
func (s *Store) Menu() store.Menu           { return &menuRepo{db: s.db} }
func (s *Store) Payments() store.Payments   { return &paymentsRepo{db: s.db} }
func (s *Store) Employees() store.Employees { return &employeesRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
