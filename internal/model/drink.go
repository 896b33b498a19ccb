package model

// Drink is a brand+flavour+size SKU. CaffeineMg is the stored source of truth;
// the per-100ml rate is derived on read.
type Drink struct {
	ID         int64  `json:"id"`
	BrandID    int64  `json:"brand_id"`
	Flavour    string `json:"flavour"`
	SizeMl     int    `json:"size_ml"`
	CaffeineMg int    `json:"caffeine_mg"`
}

type DrinkView struct {
	Drink
	BrandName        string  `json:"brand_name"`
	DisplayName      string  `json:"display_name"`
	CaffeinePer100ml float64 `json:"caffeine_per_100ml"`
}
