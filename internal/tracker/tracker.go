// Package tracker turns stored brands, drinks and consumptions into the views
// and aggregates the API serves.
package tracker

import (
	"fmt"
	"strings"

	"github.com/dukerupert/jitter/internal/caffeine"
	"github.com/dukerupert/jitter/internal/model"
	"github.com/dukerupert/jitter/internal/store"
)

// DefaultRecentLimit caps the recent-consumption listing.
const DefaultRecentLimit = 50

type Service struct {
	store       store.Store
	recentLimit int
}

func New(s store.Store, recentLimit int) *Service {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Service{store: s, recentLimit: recentLimit}
}

// RecentLimit is the most consumptions RecentConsumptions will return.
func (s *Service) RecentLimit() int {
	return s.recentLimit
}

// Ping reports whether the backing store is reachable.
func (s *Service) Ping() error {
	return s.store.Ping()
}

func brandView(b model.Brand) model.BrandView {
	return model.BrandView{Brand: b, Color: caffeine.BrandColor(b.Name)}
}

func drinkView(d model.Drink, brandName string) model.DrinkView {
	return model.DrinkView{
		Drink:            d,
		BrandName:        brandName,
		DisplayName:      caffeine.DisplayName(brandName, d.Flavour, d.SizeMl),
		CaffeinePer100ml: caffeine.Per100ml(d.CaffeineMg, d.SizeMl),
	}
}

// --- Brands ---

func (s *Service) ListBrands() ([]model.BrandView, error) {
	brands, err := s.store.ListBrands()
	if err != nil {
		return nil, err
	}
	views := make([]model.BrandView, 0, len(brands))
	for _, b := range brands {
		views = append(views, brandView(b))
	}
	return views, nil
}

func (s *Service) GetBrand(id int64) (*model.BrandView, error) {
	b, err := s.store.GetBrand(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("brand %d: %w", id, ErrNotFound)
	}
	v := brandView(*b)
	return &v, nil
}

func (s *Service) CreateBrand(name string) (*model.BrandView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	b, err := s.store.CreateBrand(name)
	if err != nil {
		return nil, err
	}
	v := brandView(*b)
	return &v, nil
}

// --- Drinks ---

// ListDrinks resolves brand names client-side; a drink whose brand is gone is
// listed under caffeine.UnknownBrand rather than failing the whole listing.
func (s *Service) ListDrinks() ([]model.DrinkView, error) {
	brands, err := s.store.ListBrands()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(brands))
	for _, b := range brands {
		names[b.ID] = b.Name
	}

	drinks, err := s.store.ListDrinks()
	if err != nil {
		return nil, err
	}
	views := make([]model.DrinkView, 0, len(drinks))
	for _, d := range drinks {
		name, ok := names[d.BrandID]
		if !ok {
			name = caffeine.UnknownBrand
		}
		views = append(views, drinkView(d, name))
	}
	return views, nil
}

func (s *Service) GetDrink(id int64) (*model.DrinkView, error) {
	d, err := s.store.GetDrink(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("drink %d: %w", id, ErrNotFound)
	}
	name := caffeine.UnknownBrand
	b, err := s.store.GetBrand(d.BrandID)
	if err != nil {
		return nil, err
	}
	if b != nil {
		name = b.Name
	}
	v := drinkView(*d, name)
	return &v, nil
}

type NewDrink struct {
	BrandID          int64
	Flavour          string
	SizeMl           int
	CaffeinePer100ml float64
}

// CreateDrink stores a drink with its caffeine content derived from the
// per-100ml rate. The brand must exist.
func (s *Service) CreateDrink(in NewDrink) (*model.DrinkView, error) {
	in.Flavour = strings.TrimSpace(in.Flavour)
	switch {
	case in.BrandID <= 0:
		return nil, invalid("brand_id", "must be positive")
	case in.Flavour == "":
		return nil, invalid("flavour", "is required")
	case in.SizeMl <= 0:
		return nil, invalid("size_ml", "must be greater than 0")
	case in.CaffeinePer100ml < 0:
		return nil, invalid("caffeine_per_100ml", "must be >= 0")
	case !caffeine.ServingInRange(in.CaffeinePer100ml, in.SizeMl):
		return nil, invalid("caffeine_per_100ml", fmt.Sprintf("yields more than %d mg per serving", caffeine.MaxServingMg))
	}

	b, err := s.store.GetBrand(in.BrandID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("brand %d: %w", in.BrandID, ErrNotFound)
	}

	d, err := s.store.CreateDrink(model.Drink{
		BrandID:    in.BrandID,
		Flavour:    in.Flavour,
		SizeMl:     in.SizeMl,
		CaffeineMg: caffeine.CaffeineMg(in.CaffeinePer100ml, in.SizeMl),
	})
	if err != nil {
		return nil, err
	}
	v := drinkView(*d, b.Name)
	return &v, nil
}

// --- Consumptions ---

// LogConsumption records one drink. Both the drink and its brand must resolve
// since the response carries the drink's display name.
func (s *Service) LogConsumption(drinkID int64, pricePaid *float64) (*model.ConsumptionView, error) {
	if drinkID <= 0 {
		return nil, invalid("drink_id", "must be positive")
	}
	var price float64
	if pricePaid != nil {
		price = *pricePaid
	}
	if price < 0 {
		return nil, invalid("price_paid", "must be >= 0")
	}

	d, err := s.store.GetDrink(drinkID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, fmt.Errorf("drink %d: %w", drinkID, ErrNotFound)
	}
	b, err := s.store.GetBrand(d.BrandID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("brand %d of drink %d: %w", d.BrandID, drinkID, ErrNotFound)
	}

	c, err := s.store.CreateConsumption(drinkID, price)
	if err != nil {
		return nil, err
	}
	return &model.ConsumptionView{
		Consumption:      *c,
		DrinkDisplayName: caffeine.DisplayName(b.Name, d.Flavour, d.SizeMl),
	}, nil
}

// RecentConsumptions lists the newest consumptions, at most limit and never
// more than the configured cap. Display names fall back to UnknownBrand like
// the drink listing.
func (s *Service) RecentConsumptions(limit int) ([]model.ConsumptionView, error) {
	if limit <= 0 || limit > s.recentLimit {
		limit = s.recentLimit
	}
	consumptions, err := s.store.ListRecentConsumptions(limit)
	if err != nil {
		return nil, err
	}
	drinks, err := s.ListDrinks()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(drinks))
	for _, d := range drinks {
		names[d.ID] = d.DisplayName
	}

	views := make([]model.ConsumptionView, 0, len(consumptions))
	for _, c := range consumptions {
		name, ok := names[c.DrinkID]
		if !ok {
			name = caffeine.UnknownBrand
		}
		views = append(views, model.ConsumptionView{Consumption: c, DrinkDisplayName: name})
	}
	return views, nil
}

// --- Aggregates ---

func (s *Service) AllTimeStats() (model.AllTimeStats, error) {
	records, err := s.store.ListConsumptionRecords()
	if err != nil {
		return model.AllTimeStats{}, err
	}
	inputs := make([]caffeine.StatsInput, 0, len(records))
	for i, r := range records {
		if r.Drink == nil {
			return model.AllTimeStats{}, fmt.Errorf("consumption record %d drink: %w", i, ErrNotFound)
		}
		inputs = append(inputs, caffeine.StatsInput{
			SizeMl:     r.Drink.SizeMl,
			CaffeineMg: r.Drink.CaffeineMg,
			PricePaid:  r.PricePaid,
		})
	}
	return caffeine.AggregateAllTimeStats(inputs), nil
}

func (s *Service) StackedChart() ([]model.StackedChartRow, error) {
	records, err := s.store.ListConsumptionRecords()
	if err != nil {
		return nil, err
	}
	inputs := make([]caffeine.ChartInput, 0, len(records))
	for i, r := range records {
		if r.Drink == nil || r.Drink.Brand == nil {
			return nil, fmt.Errorf("consumption record %d drink brand: %w", i, ErrNotFound)
		}
		inputs = append(inputs, caffeine.ChartInput{
			ConsumedAt: r.ConsumedAt,
			PricePaid:  r.PricePaid,
			Brand:      r.Drink.Brand.Name,
			Flavour:    r.Drink.Flavour,
		})
	}
	return caffeine.BuildStackedChart(inputs), nil
}
