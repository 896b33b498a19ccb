package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/jitter/internal/model"
)

const brandCols = `id, name, created_at`

func scanBrand(scanner interface{ Scan(...any) error }) (*model.Brand, error) {
	var b model.Brand
	if err := scanner.Scan(&b.ID, &b.Name, &b.CreatedAt); err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *SQLiteStore) CreateBrand(name string) (*model.Brand, error) {
	result, err := s.db.Exec(`INSERT INTO brands (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetBrand(id)
}

func (s *SQLiteStore) GetBrand(id int64) (*model.Brand, error) {
	row := s.db.QueryRow(`SELECT `+brandCols+` FROM brands WHERE id = ?`, id)
	b, err := scanBrand(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	return b, nil
}

// ListBrands returns all brands ordered by name.
func (s *SQLiteStore) ListBrands() ([]model.Brand, error) {
	rows, err := s.db.Query(`SELECT ` + brandCols + ` FROM brands ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var brands []model.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, *b)
	}
	return brands, rows.Err()
}
