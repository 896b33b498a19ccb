// Package supabase implements store.Store against a hosted Supabase project
// through its PostgREST endpoint. Joins are resolved server-side by resource
// embedding, so a dangling foreign key comes back as a null nested object.
package supabase

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dukerupert/jitter/internal/model"
	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"
)

const (
	tableBrands       = "brands"
	tableDrinks       = "drinks"
	tableConsumptions = "consumptions"

	recordSelect = "consumed_at, price_paid, drinks(flavour, size_ml, caffeine_mg, brands(name))"
)

// querier is satisfied by both *supabase.Client and *postgrest.Client.
type querier interface {
	From(table string) *postgrest.QueryBuilder
}

// Store reads and writes the tracker tables over PostgREST.
type Store struct {
	client querier
}

// New connects to the Supabase project at url with the given API key.
func New(url, key string) (*Store, error) {
	client, err := supa.NewClient(url, key, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return &Store{client: client}, nil
}

// NewWithREST wraps an already configured PostgREST client.
func NewWithREST(client *postgrest.Client) *Store {
	return &Store{client: client}
}

type brandRow struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

func (r brandRow) model() (model.Brand, error) {
	createdAt, err := parseTimestamp(r.CreatedAt)
	if err != nil {
		return model.Brand{}, fmt.Errorf("brand %d created_at: %w", r.ID, err)
	}
	return model.Brand{ID: r.ID, Name: r.Name, CreatedAt: createdAt}, nil
}

type drinkRow struct {
	ID         int64  `json:"id,omitempty"`
	BrandID    int64  `json:"brand_id"`
	Flavour    string `json:"flavour"`
	SizeMl     int    `json:"size_ml"`
	CaffeineMg int    `json:"caffeine_mg"`
}

func (r drinkRow) model() model.Drink {
	return model.Drink{ID: r.ID, BrandID: r.BrandID, Flavour: r.Flavour, SizeMl: r.SizeMl, CaffeineMg: r.CaffeineMg}
}

type consumptionRow struct {
	ID         int64    `json:"id"`
	DrinkID    int64    `json:"drink_id"`
	ConsumedAt string   `json:"consumed_at"`
	PricePaid  *float64 `json:"price_paid"`
}

func (r consumptionRow) model() (model.Consumption, error) {
	consumedAt, err := parseTimestamp(r.ConsumedAt)
	if err != nil {
		return model.Consumption{}, fmt.Errorf("consumption %d consumed_at: %w", r.ID, err)
	}
	return model.Consumption{ID: r.ID, DrinkID: r.DrinkID, ConsumedAt: consumedAt, PricePaid: r.PricePaid}, nil
}

type recordRow struct {
	ConsumedAt string   `json:"consumed_at"`
	PricePaid  *float64 `json:"price_paid"`
	Drinks     *struct {
		Flavour    string `json:"flavour"`
		SizeMl     int    `json:"size_ml"`
		CaffeineMg int    `json:"caffeine_mg"`
		Brands     *struct {
			Name string `json:"name"`
		} `json:"brands"`
	} `json:"drinks"`
}

// timestampLayouts covers timestamptz and timestamp columns as PostgREST renders them.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999-07:00",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

func (s *Store) ListBrands() ([]model.Brand, error) {
	var rows []brandRow
	_, err := s.client.From(tableBrands).
		Select("id, name, created_at", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}

	brands := make([]model.Brand, 0, len(rows))
	for _, r := range rows {
		b, err := r.model()
		if err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, nil
}

func (s *Store) GetBrand(id int64) (*model.Brand, error) {
	var rows []brandRow
	_, err := s.client.From(tableBrands).
		Select("id, name, created_at", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	b, err := rows[0].model()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) CreateBrand(name string) (*model.Brand, error) {
	var rows []brandRow
	_, err := s.client.From(tableBrands).
		Insert(map[string]string{"name": name}, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert brand: no row returned")
	}
	b, err := rows[0].model()
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (s *Store) ListDrinks() ([]model.Drink, error) {
	var rows []drinkRow
	_, err := s.client.From(tableDrinks).
		Select("id, brand_id, flavour, size_ml, caffeine_mg", "", false).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list drinks: %w", err)
	}

	drinks := make([]model.Drink, 0, len(rows))
	for _, r := range rows {
		drinks = append(drinks, r.model())
	}
	return drinks, nil
}

func (s *Store) GetDrink(id int64) (*model.Drink, error) {
	var rows []drinkRow
	_, err := s.client.From(tableDrinks).
		Select("id, brand_id, flavour, size_ml, caffeine_mg", "", false).
		Eq("id", strconv.FormatInt(id, 10)).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("get drink: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	d := rows[0].model()
	return &d, nil
}

func (s *Store) CreateDrink(d model.Drink) (*model.Drink, error) {
	in := drinkRow{BrandID: d.BrandID, Flavour: d.Flavour, SizeMl: d.SizeMl, CaffeineMg: d.CaffeineMg}

	var rows []drinkRow
	_, err := s.client.From(tableDrinks).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert drink: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert drink: no row returned")
	}
	created := rows[0].model()
	return &created, nil
}

func (s *Store) ListRecentConsumptions(limit int) ([]model.Consumption, error) {
	var rows []consumptionRow
	_, err := s.client.From(tableConsumptions).
		Select("id, drink_id, consumed_at, price_paid", "", false).
		Order("consumed_at", &postgrest.OrderOpts{Ascending: false}).
		Order("id", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list recent consumptions: %w", err)
	}

	consumptions := make([]model.Consumption, 0, len(rows))
	for _, r := range rows {
		c, err := r.model()
		if err != nil {
			return nil, err
		}
		consumptions = append(consumptions, c)
	}
	return consumptions, nil
}

func (s *Store) CreateConsumption(drinkID int64, pricePaid float64) (*model.Consumption, error) {
	in := map[string]any{"drink_id": drinkID, "price_paid": pricePaid}

	var rows []consumptionRow
	_, err := s.client.From(tableConsumptions).
		Insert(in, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("insert consumption: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("insert consumption: no row returned")
	}
	c, err := rows[0].model()
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) ListConsumptionRecords() ([]model.ConsumptionRecord, error) {
	var rows []recordRow
	_, err := s.client.From(tableConsumptions).
		Select(recordSelect, "", false).
		Order("consumed_at", &postgrest.OrderOpts{Ascending: true}).
		Order("id", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("list consumption records: %w", err)
	}

	records := make([]model.ConsumptionRecord, 0, len(rows))
	for _, r := range rows {
		consumedAt, err := parseTimestamp(r.ConsumedAt)
		if err != nil {
			return nil, fmt.Errorf("consumption record consumed_at: %w", err)
		}
		rec := model.ConsumptionRecord{ConsumedAt: consumedAt, PricePaid: r.PricePaid}
		if r.Drinks != nil {
			rec.Drink = &model.RecordDrink{
				Flavour:    r.Drinks.Flavour,
				SizeMl:     r.Drinks.SizeMl,
				CaffeineMg: r.Drinks.CaffeineMg,
			}
			if r.Drinks.Brands != nil {
				rec.Drink.Brand = &model.RecordBrand{Name: r.Drinks.Brands.Name}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// Ping issues a one-row read against brands to confirm the project is reachable.
func (s *Store) Ping() error {
	var rows []brandRow
	_, err := s.client.From(tableBrands).
		Select("id", "", false).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return fmt.Errorf("ping supabase: %w", err)
	}
	return nil
}

// Close is a no-op; the PostgREST client holds no pooled resources of its own.
func (s *Store) Close() error {
	return nil
}
