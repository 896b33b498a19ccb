package store

import (
	"database/sql"
	"fmt"

	"github.com/dukerupert/jitter/internal/model"
)

const consumptionCols = `id, drink_id, consumed_at, price_paid`

func scanConsumption(scanner interface{ Scan(...any) error }) (*model.Consumption, error) {
	var c model.Consumption
	var price sql.NullFloat64

	if err := scanner.Scan(&c.ID, &c.DrinkID, &c.ConsumedAt, &price); err != nil {
		return nil, err
	}
	if price.Valid {
		c.PricePaid = &price.Float64
	}
	return &c, nil
}

func (s *SQLiteStore) CreateConsumption(drinkID int64, pricePaid float64) (*model.Consumption, error) {
	result, err := s.db.Exec(
		`INSERT INTO consumptions (drink_id, price_paid) VALUES (?, ?)`,
		drinkID, pricePaid,
	)
	if err != nil {
		return nil, fmt.Errorf("insert consumption: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	row := s.db.QueryRow(`SELECT `+consumptionCols+` FROM consumptions WHERE id = ?`, id)
	c, err := scanConsumption(row)
	if err != nil {
		return nil, fmt.Errorf("get consumption: %w", err)
	}
	return c, nil
}

func (s *SQLiteStore) ListRecentConsumptions(limit int) ([]model.Consumption, error) {
	rows, err := s.db.Query(
		`SELECT `+consumptionCols+` FROM consumptions ORDER BY consumed_at DESC, id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list recent consumptions: %w", err)
	}
	defer rows.Close()

	var consumptions []model.Consumption
	for rows.Next() {
		c, err := scanConsumption(rows)
		if err != nil {
			return nil, fmt.Errorf("scan consumption: %w", err)
		}
		consumptions = append(consumptions, *c)
	}
	return consumptions, rows.Err()
}

// ListConsumptionRecords left-joins drinks and brands so that a dangling
// reference comes back as a nil Drink or Brand instead of a missing row.
func (s *SQLiteStore) ListConsumptionRecords() ([]model.ConsumptionRecord, error) {
	rows, err := s.db.Query(`
		SELECT c.consumed_at, c.price_paid,
		       d.id, d.flavour, d.size_ml, d.caffeine_mg,
		       b.id, b.name
		FROM consumptions c
		LEFT JOIN drinks d ON d.id = c.drink_id
		LEFT JOIN brands b ON b.id = d.brand_id
		ORDER BY c.consumed_at ASC, c.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list consumption records: %w", err)
	}
	defer rows.Close()

	var records []model.ConsumptionRecord
	for rows.Next() {
		var (
			r          model.ConsumptionRecord
			price      sql.NullFloat64
			drinkID    sql.NullInt64
			flavour    sql.NullString
			sizeMl     sql.NullInt64
			caffeineMg sql.NullInt64
			brandID    sql.NullInt64
			brandName  sql.NullString
		)
		if err := rows.Scan(&r.ConsumedAt, &price, &drinkID, &flavour, &sizeMl, &caffeineMg, &brandID, &brandName); err != nil {
			return nil, fmt.Errorf("scan consumption record: %w", err)
		}
		if price.Valid {
			r.PricePaid = &price.Float64
		}
		if drinkID.Valid {
			r.Drink = &model.RecordDrink{
				Flavour:    flavour.String,
				SizeMl:     int(sizeMl.Int64),
				CaffeineMg: int(caffeineMg.Int64),
			}
			if brandID.Valid {
				r.Drink.Brand = &model.RecordBrand{Name: brandName.String}
			}
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
