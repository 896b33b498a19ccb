package caffeine

import (
	"time"

	"github.com/dukerupert/jitter/internal/model"
)

const dateLayout = "2006-01-02"

// ChartInput is one consumption as needed by the stacked spend chart.
type ChartInput struct {
	ConsumedAt time.Time
	PricePaid  *float64
	Brand      string
	Flavour    string
}

// DrinkKey identifies a chart series: brand and flavour, size ignored.
func DrinkKey(brand, flavour string) string {
	return brand + " " + flavour
}

// BuildStackedChart pivots consumptions into one row per calendar day with the
// summed price paid per drink. Every row carries a column for every drink seen
// anywhere in the input, zero when that drink was not bought that day.
//
// Days are taken from ConsumedAt in its own location and emitted in the order
// they are first seen, so time-ordered input yields chronological rows.
func BuildStackedChart(records []ChartInput) []model.StackedChartRow {
	var dates []string
	grouped := make(map[string]map[string]float64)
	seen := make(map[string]struct{})

	for _, r := range records {
		date := r.ConsumedAt.Format(dateLayout)
		key := DrinkKey(r.Brand, r.Flavour)

		day, ok := grouped[date]
		if !ok {
			day = make(map[string]float64)
			grouped[date] = day
			dates = append(dates, date)
		}

		var price float64
		if r.PricePaid != nil {
			price = *r.PricePaid
		}
		day[key] += price
		seen[key] = struct{}{}
	}

	rows := make([]model.StackedChartRow, 0, len(dates))
	for _, date := range dates {
		day := grouped[date]
		drinks := make(map[string]float64, len(seen))
		for key := range seen {
			drinks[key] = day[key]
		}
		rows = append(rows, model.StackedChartRow{Date: date, Drinks: drinks})
	}
	return rows
}
