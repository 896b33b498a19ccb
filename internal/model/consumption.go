package model

import "time"

type Consumption struct {
	ID         int64     `json:"id"`
	DrinkID    int64     `json:"drink_id"`
	ConsumedAt time.Time `json:"consumed_at"`
	PricePaid  *float64  `json:"price_paid"`
}

type ConsumptionView struct {
	Consumption
	DrinkDisplayName string `json:"drink_display_name"`
}

// ConsumptionRecord is a consumption joined with its drink and the drink's
// brand. Drink (or Drink.Brand) is nil when the reference did not resolve.
type ConsumptionRecord struct {
	ConsumedAt time.Time
	PricePaid  *float64
	Drink      *RecordDrink
}

type RecordDrink struct {
	Flavour    string
	SizeMl     int
	CaffeineMg int
	Brand      *RecordBrand
}

type RecordBrand struct {
	Name string
}
