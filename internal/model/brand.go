package model

import "time"

type Brand struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// BrandView is a Brand as served to the dashboard.
type BrandView struct {
	Brand
	Color string `json:"color"`
}
