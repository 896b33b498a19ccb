package caffeine

import "github.com/dukerupert/jitter/internal/model"

// StatsInput is one logged consumption paired with its drink's serving figures.
type StatsInput struct {
	SizeMl     int
	CaffeineMg int
	PricePaid  *float64
}

// AggregateAllTimeStats folds every logged consumption into lifetime totals.
// A nil price contributes nothing to TotalSpent.
func AggregateAllTimeStats(records []StatsInput) model.AllTimeStats {
	var stats model.AllTimeStats
	for _, r := range records {
		stats.TotalMl += r.SizeMl
		stats.TotalCaffeine += r.CaffeineMg
		stats.DrinkCount++
		if r.PricePaid != nil {
			stats.TotalSpent += *r.PricePaid
		}
	}
	return stats
}
