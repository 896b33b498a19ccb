package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/jitter/internal/model"
)

const drinkCols = `id, brand_id, flavour, size_ml, caffeine_mg`

func scanDrink(scanner interface{ Scan(...any) error }) (*model.Drink, error) {
	var d model.Drink
	if err := scanner.Scan(&d.ID, &d.BrandID, &d.Flavour, &d.SizeMl, &d.CaffeineMg); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *SQLiteStore) CreateDrink(d model.Drink) (*model.Drink, error) {
	result, err := s.db.Exec(
		`INSERT INTO drinks (brand_id, flavour, size_ml, caffeine_mg) VALUES (?, ?, ?, ?)`,
		d.BrandID, d.Flavour, d.SizeMl, d.CaffeineMg,
	)
	if err != nil {
		return nil, fmt.Errorf("insert drink: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetDrink(id)
}

func (s *SQLiteStore) GetDrink(id int64) (*model.Drink, error) {
	row := s.db.QueryRow(`SELECT `+drinkCols+` FROM drinks WHERE id = ?`, id)
	d, err := scanDrink(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get drink: %w", err)
	}
	return d, nil
}

func (s *SQLiteStore) ListDrinks() ([]model.Drink, error) {
	rows, err := s.db.Query(`SELECT ` + drinkCols + ` FROM drinks ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}
	defer rows.Close()

	var drinks []model.Drink
	for rows.Next() {
		d, err := scanDrink(rows)
		if err != nil {
			return nil, fmt.Errorf("scan drink: %w", err)
		}
		drinks = append(drinks, *d)
	}
	return drinks, rows.Err()
}
