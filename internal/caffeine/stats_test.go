package caffeine

import (
	"testing"

	"github.com/dukerupert/jitter/internal/model"
)

func price(v float64) *float64 { return &v }

func TestAggregateAllTimeStatsEmpty(t *testing.T) {
	got := AggregateAllTimeStats(nil)
	if got != (model.AllTimeStats{}) {
		t.Errorf("empty aggregate = %+v, want zero value", got)
	}
}

func TestAggregateAllTimeStats(t *testing.T) {
	got := AggregateAllTimeStats([]StatsInput{
		{SizeMl: 250, CaffeineMg: 80, PricePaid: price(1.5)},
		{SizeMl: 500, CaffeineMg: 160, PricePaid: nil},
	})
	want := model.AllTimeStats{TotalMl: 750, TotalCaffeine: 240, DrinkCount: 2, TotalSpent: 1.5}
	if got != want {
		t.Errorf("aggregate = %+v, want %+v", got, want)
	}
}

func TestAggregateAllTimeStatsZeroPrice(t *testing.T) {
	got := AggregateAllTimeStats([]StatsInput{
		{SizeMl: 330, CaffeineMg: 100, PricePaid: price(0)},
	})
	if got.DrinkCount != 1 {
		t.Errorf("drink_count = %d, want 1", got.DrinkCount)
	}
	if got.TotalSpent != 0 {
		t.Errorf("total_spent = %v, want 0", got.TotalSpent)
	}
}
