package model

import (
	"encoding/json"
	"fmt"
)

type AllTimeStats struct {
	TotalMl       int     `json:"total_ml"`
	TotalCaffeine int     `json:"total_caffeine"`
	DrinkCount    int     `json:"drink_count"`
	TotalSpent    float64 `json:"total_spent"`
}

// StackedChartRow is one day of per-drink spend. It marshals to a flat object:
// {"date": "2023-10-27", "Red Bull Original": 1.5, ...}.
type StackedChartRow struct {
	Date   string
	Drinks map[string]float64
}

func (r StackedChartRow) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Drinks)+1)
	for k, v := range r.Drinks {
		m[k] = v
	}
	m["date"] = r.Date
	return json.Marshal(m)
}

func (r *StackedChartRow) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	r.Drinks = make(map[string]float64, len(raw))
	for k, v := range raw {
		if k == "date" {
			if err := json.Unmarshal(v, &r.Date); err != nil {
				return fmt.Errorf("decode date: %w", err)
			}
			continue
		}
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return fmt.Errorf("decode %q: %w", k, err)
		}
		r.Drinks[k] = f
	}
	return nil
}
