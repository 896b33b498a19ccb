package store

import (
	"database/sql"

	"github.com/dukerupert/jitter/internal/model"
)

// Store is the data access the tracker needs. Lookups by id return (nil, nil)
// when the row does not exist.
type Store interface {
	ListBrands() ([]model.Brand, error)
	GetBrand(id int64) (*model.Brand, error)
	CreateBrand(name string) (*model.Brand, error)

	ListDrinks() ([]model.Drink, error)
	GetDrink(id int64) (*model.Drink, error)
	CreateDrink(d model.Drink) (*model.Drink, error)

	// ListRecentConsumptions returns at most limit consumptions, newest first.
	ListRecentConsumptions(limit int) ([]model.Consumption, error)
	CreateConsumption(drinkID int64, pricePaid float64) (*model.Consumption, error)
	// ListConsumptionRecords returns every consumption joined with its drink
	// and brand, oldest first.
	ListConsumptionRecords() ([]model.ConsumptionRecord, error)

	Ping() error
	Close() error
}

// SQLiteStore implements Store on a migrated SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Ping() error {
	return s.db.Ping()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
